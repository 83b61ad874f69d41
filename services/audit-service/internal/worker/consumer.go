package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/mq"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// record is the union of the employee and department event payloads; the
// event_type field tells them apart.
type record struct {
	ID           string    `json:"id"`
	EventType    string    `json:"event_type"`
	EmployeeID   uint      `json:"employee_id,omitempty"`
	EmployeeCode string    `json:"employee_code,omitempty"`
	DepartmentID uint      `json:"department_id,omitempty"`
	Name         string    `json:"name,omitempty"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Status       string    `json:"status,omitempty"`
	PerformedBy  string    `json:"performed_by"`
	Timestamp    time.Time `json:"timestamp"`
}

// Auditor drains domain events from both entity exchanges and writes one
// structured audit line per delivery. Malformed payloads are logged and
// acked; requeueing cannot fix them.
type Auditor struct {
	consumer *mq.Consumer
	log      *zap.Logger
}

func NewAuditor(consumer *mq.Consumer, log *zap.Logger) *Auditor {
	return &Auditor{consumer: consumer, log: log}
}

func (a *Auditor) Run(ctx context.Context) error {
	msgs, err := a.consumer.Deliveries(ctx, "audit-service")
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			a.handle(d)
			_ = d.Ack(false)
		}
	}
}

func (a *Auditor) handle(d amqp.Delivery) {
	var rec record
	if err := json.Unmarshal(d.Body, &rec); err != nil {
		a.log.Warn("undecodable event payload",
			zap.String("routing_key", d.RoutingKey), zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String("event_id", rec.ID),
		zap.String("event_type", rec.EventType),
		zap.String("performed_by", rec.PerformedBy),
		zap.Time("occurred_at", rec.Timestamp),
		zap.String("routing_key", d.RoutingKey),
	}
	switch {
	case rec.EmployeeCode != "":
		fields = append(fields,
			zap.Uint("employee_id", rec.EmployeeID),
			zap.String("employee_code", rec.EmployeeCode),
			zap.String("name", rec.FirstName+" "+rec.LastName),
			zap.String("status", rec.Status))
	case rec.Name != "":
		fields = append(fields,
			zap.Uint("department_id", rec.DepartmentID),
			zap.String("department", rec.Name))
	}
	a.log.Info("domain event", fields...)
}
