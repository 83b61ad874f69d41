package service

import (
	"context"
	"errors"
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/events"
)

// EmployeeStore is the persistence contract for employees.
type EmployeeStore interface {
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, e *domain.Employee) error
	ByID(ctx context.Context, id uint) (*domain.Employee, error)
	ByEmployeeID(ctx context.Context, code string) (*domain.Employee, error)
	All(ctx context.Context) ([]domain.Employee, error)
	ByDepartment(ctx context.Context, departmentID uint) ([]domain.Employee, error)
	ByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error)
	SearchByName(ctx context.Context, name string) ([]domain.Employee, error)
	ExistsByEmployeeID(ctx context.Context, code string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// DepartmentStore is the subset of department persistence the employee
// service needs to resolve references.
type DepartmentStore interface {
	Create(ctx context.Context, d *domain.Department) error
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, d *domain.Department) error
	ByID(ctx context.Context, id uint) (*domain.Department, error)
	All(ctx context.Context) ([]domain.Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountEmployees(ctx context.Context, departmentID uint) (int64, error)
}

// EventSink is satisfied by events.Emitter.
type EventSink interface {
	EmitEmployee(ev events.EmployeeEvent)
	EmitDepartment(ev events.DepartmentEvent)
}

type EmployeeInput struct {
	EmployeeID   string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	DepartmentID *uint
	Salary       float64
	Status       domain.EmployeeStatus
	HireDate     *time.Time
}

type EmployeeSvc struct {
	employees   EmployeeStore
	departments DepartmentStore
	sink        EventSink
}

func NewEmployeeSvc(employees EmployeeStore, departments DepartmentStore, sink EventSink) *EmployeeSvc {
	return &EmployeeSvc{employees: employees, departments: departments, sink: sink}
}

// resolveDepartment returns the referenced department or nil when no
// reference is given. A dangling reference is ErrDepartmentNotFound, which
// transports report as a bad request, not a 404: the department is not the
// primary resource of the call.
func (s *EmployeeSvc) resolveDepartment(ctx context.Context, id *uint) (*domain.Department, error) {
	if id == nil {
		return nil, nil
	}
	return s.departments.ByID(ctx, *id)
}

func (s *EmployeeSvc) Create(ctx context.Context, in EmployeeInput, actor string) (*domain.Employee, error) {
	if taken, err := s.employees.ExistsByEmployeeID(ctx, in.EmployeeID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmployeeID
	}
	if taken, err := s.employees.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	dept, err := s.resolveDepartment(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}

	e := &domain.Employee{
		EmployeeID:   in.EmployeeID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Position:     in.Position,
		DepartmentID: in.DepartmentID,
		Department:   dept,
		Salary:       in.Salary,
		Status:       in.Status,
		HireDate:     in.HireDate,
		CreatedBy:    actor,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, s.resolveConflict(ctx, err, in)
	}

	s.sink.EmitEmployee(events.NewEmployeeEvent(events.EmployeeCreated, e, actor))
	return e, nil
}

// resolveConflict names the field behind a unique-index violation raised
// after the pre-checks passed, i.e. a race lost to a concurrent writer.
func (s *EmployeeSvc) resolveConflict(ctx context.Context, err error, in EmployeeInput) error {
	if !errors.Is(err, ErrConflict) {
		return err
	}
	if taken, cerr := s.employees.ExistsByEmployeeID(ctx, in.EmployeeID); cerr == nil && taken {
		return ErrDuplicateEmployeeID
	}
	if taken, cerr := s.employees.ExistsByEmail(ctx, in.Email); cerr == nil && taken {
		return ErrDuplicateEmail
	}
	return err
}

func (s *EmployeeSvc) Update(ctx context.Context, id uint, in EmployeeInput, actor string) (*domain.Employee, error) {
	e, err := s.employees.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.Email != in.Email {
		if taken, err := s.employees.ExistsByEmail(ctx, in.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrDuplicateEmail
		}
	}

	dept, err := s.resolveDepartment(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}

	e.FirstName = in.FirstName
	e.LastName = in.LastName
	e.Email = in.Email
	e.Phone = in.Phone
	e.Position = in.Position
	e.DepartmentID = in.DepartmentID
	e.Department = dept
	e.Salary = in.Salary
	e.Status = in.Status
	e.HireDate = in.HireDate

	if err := s.employees.Update(ctx, e); err != nil {
		// Email is the only unique field an update can change.
		if errors.Is(err, ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.sink.EmitEmployee(events.NewEmployeeEvent(events.EmployeeUpdated, e, actor))
	return e, nil
}

func (s *EmployeeSvc) Delete(ctx context.Context, id uint, actor string) error {
	e, err := s.employees.ByID(ctx, id)
	if err != nil {
		return err
	}

	// Snapshot before removal so the event carries the final state.
	ev := events.NewEmployeeEvent(events.EmployeeDeleted, e, actor)

	if err := s.employees.Delete(ctx, e); err != nil {
		return err
	}
	s.sink.EmitEmployee(ev)
	return nil
}

func (s *EmployeeSvc) ByID(ctx context.Context, id uint) (*domain.Employee, error) {
	return s.employees.ByID(ctx, id)
}

func (s *EmployeeSvc) ByEmployeeID(ctx context.Context, code string) (*domain.Employee, error) {
	return s.employees.ByEmployeeID(ctx, code)
}

func (s *EmployeeSvc) All(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.All(ctx)
}

func (s *EmployeeSvc) ByDepartment(ctx context.Context, departmentID uint) ([]domain.Employee, error) {
	return s.employees.ByDepartment(ctx, departmentID)
}

func (s *EmployeeSvc) ByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	return s.employees.ByStatus(ctx, status)
}

func (s *EmployeeSvc) SearchByName(ctx context.Context, name string) ([]domain.Employee, error) {
	return s.employees.SearchByName(ctx, name)
}
