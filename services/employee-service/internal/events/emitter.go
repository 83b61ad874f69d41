package events

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Publisher is satisfied by mq.Publisher.
type Publisher interface {
	PublishJSON(ctx context.Context, exchange, key string, v any) error
}

const publishTimeout = 5 * time.Second

type outbound struct {
	exchange string
	key      string
	payload  any
}

// Emitter decouples event delivery from the mutating request: Emit never
// blocks, a single goroutine drains the buffer in FIFO order (so events
// for one entity keep mutation order within the process), and a full
// buffer drops the event with a log line instead of growing unbounded.
// Delivery failures are logged and never retried.
type Emitter struct {
	pub          Publisher
	log          *zap.Logger
	employeeEx   string
	departmentEx string

	ch   chan outbound
	done chan struct{}
}

func NewEmitter(pub Publisher, log *zap.Logger, employeeEx, departmentEx string, buffer int) *Emitter {
	if buffer <= 0 {
		buffer = 256
	}
	e := &Emitter{
		pub:          pub,
		log:          log,
		employeeEx:   employeeEx,
		departmentEx: departmentEx,
		ch:           make(chan outbound, buffer),
		done:         make(chan struct{}),
	}
	go e.deliver()
	return e
}

// EmitEmployee queues an employee event, keyed by the employee's business
// code so consumers can partition per entity.
func (e *Emitter) EmitEmployee(ev EmployeeEvent) {
	e.enqueue(outbound{exchange: e.employeeEx, key: ev.EmployeeCode, payload: ev})
}

func (e *Emitter) EmitDepartment(ev DepartmentEvent) {
	e.enqueue(outbound{exchange: e.departmentEx, key: ev.Name, payload: ev})
}

func (e *Emitter) enqueue(o outbound) {
	select {
	case e.ch <- o:
	default:
		e.log.Warn("event buffer full, dropping event",
			zap.String("exchange", o.exchange), zap.String("key", o.key))
	}
}

func (e *Emitter) deliver() {
	defer close(e.done)
	for o := range e.ch {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := e.pub.PublishJSON(ctx, o.exchange, o.key, o.payload); err != nil {
			e.log.Error("event publish failed",
				zap.String("exchange", o.exchange), zap.String("key", o.key), zap.Error(err))
		}
		cancel()
	}
}

// Close stops intake and waits for queued events to be attempted once.
func (e *Emitter) Close() {
	close(e.ch)
	<-e.done
}
