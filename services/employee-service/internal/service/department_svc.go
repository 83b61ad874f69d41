package service

import (
	"context"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/events"
)

type DepartmentInput struct {
	Name        string
	Description string
	ManagerName string
}

type DepartmentSvc struct {
	departments DepartmentStore
	sink        EventSink
}

func NewDepartmentSvc(departments DepartmentStore, sink EventSink) *DepartmentSvc {
	return &DepartmentSvc{departments: departments, sink: sink}
}

func (s *DepartmentSvc) Create(ctx context.Context, in DepartmentInput, actor string) (*domain.Department, error) {
	if taken, err := s.departments.ExistsByName(ctx, in.Name); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateDepartment
	}

	d := &domain.Department{
		Name:        in.Name,
		Description: in.Description,
		ManagerName: in.ManagerName,
	}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, err
	}

	s.sink.EmitDepartment(events.NewDepartmentEvent(events.DepartmentCreated, d, actor))
	return d, nil
}

func (s *DepartmentSvc) Update(ctx context.Context, id uint, in DepartmentInput, actor string) (*domain.Department, error) {
	d, err := s.departments.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Name != in.Name {
		if taken, err := s.departments.ExistsByName(ctx, in.Name); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrDuplicateDepartment
		}
	}

	d.Name = in.Name
	d.Description = in.Description
	d.ManagerName = in.ManagerName

	if err := s.departments.Update(ctx, d); err != nil {
		return nil, err
	}

	s.sink.EmitDepartment(events.NewDepartmentEvent(events.DepartmentUpdated, d, actor))
	return d, nil
}

// Delete refuses while any employee still references the department, so
// the reference check and the removal observe the same store state.
func (s *DepartmentSvc) Delete(ctx context.Context, id uint, actor string) error {
	d, err := s.departments.ByID(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.departments.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDepartmentNotEmpty
	}

	ev := events.NewDepartmentEvent(events.DepartmentDeleted, d, actor)
	if err := s.departments.Delete(ctx, d); err != nil {
		return err
	}
	s.sink.EmitDepartment(ev)
	return nil
}

func (s *DepartmentSvc) ByID(ctx context.Context, id uint) (*domain.Department, error) {
	return s.departments.ByID(ctx, id)
}

func (s *DepartmentSvc) All(ctx context.Context) ([]domain.Department, error) {
	return s.departments.All(ctx)
}

// EmployeeCount is exposed for response mapping.
func (s *DepartmentSvc) EmployeeCount(ctx context.Context, id uint) (int64, error) {
	return s.departments.CountEmployees(ctx, id)
}
