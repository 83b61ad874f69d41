package events

import (
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"

	"github.com/google/uuid"
)

type EventType string

const (
	EmployeeCreated EventType = "EMPLOYEE_CREATED"
	EmployeeUpdated EventType = "EMPLOYEE_UPDATED"
	EmployeeDeleted EventType = "EMPLOYEE_DELETED"

	DepartmentCreated EventType = "DEPARTMENT_CREATED"
	DepartmentUpdated EventType = "DEPARTMENT_UPDATED"
	DepartmentDeleted EventType = "DEPARTMENT_DELETED"
)

// EmployeeEvent is the immutable record published on every employee
// mutation. Fields are a snapshot taken at emission time; for deletes the
// snapshot is built before the row is removed.
type EmployeeEvent struct {
	ID             string                `json:"id"`
	EventType      EventType             `json:"event_type"`
	EmployeeID     uint                  `json:"employee_id"`
	EmployeeCode   string                `json:"employee_code"`
	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	Email          string                `json:"email"`
	Position       string                `json:"position"`
	DepartmentID   *uint                 `json:"department_id,omitempty"`
	DepartmentName string                `json:"department_name,omitempty"`
	Salary         float64               `json:"salary"`
	Status         domain.EmployeeStatus `json:"status"`
	PerformedBy    string                `json:"performed_by"`
	Timestamp      time.Time             `json:"timestamp"`
}

type DepartmentEvent struct {
	ID           string    `json:"id"`
	EventType    EventType `json:"event_type"`
	DepartmentID uint      `json:"department_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ManagerName  string    `json:"manager_name"`
	PerformedBy  string    `json:"performed_by"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewEmployeeEvent(t EventType, e *domain.Employee, performedBy string) EmployeeEvent {
	ev := EmployeeEvent{
		ID:           uuid.NewString(),
		EventType:    t,
		EmployeeID:   e.ID,
		EmployeeCode: e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
		Salary:       e.Salary,
		Status:       e.Status,
		PerformedBy:  performedBy,
		Timestamp:    time.Now().UTC(),
	}
	if e.Department != nil {
		ev.DepartmentName = e.Department.Name
	}
	return ev
}

func NewDepartmentEvent(t EventType, d *domain.Department, performedBy string) DepartmentEvent {
	return DepartmentEvent{
		ID:           uuid.NewString(),
		EventType:    t,
		DepartmentID: d.ID,
		Name:         d.Name,
		Description:  d.Description,
		ManagerName:  d.ManagerName,
		PerformedBy:  performedBy,
		Timestamp:    time.Now().UTC(),
	}
}
