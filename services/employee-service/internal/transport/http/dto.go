package http

import (
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/service"
)

type employeeRequest struct {
	EmployeeID   string     `json:"employee_id" binding:"required,max=20"`
	FirstName    string     `json:"first_name" binding:"required,max=50"`
	LastName     string     `json:"last_name" binding:"required,max=50"`
	Email        string     `json:"email" binding:"required,email"`
	Phone        string     `json:"phone" binding:"max=20"`
	Position     string     `json:"position" binding:"max=100"`
	DepartmentID *uint      `json:"department_id"`
	Salary       float64    `json:"salary" binding:"gte=0"`
	Status       string     `json:"status" binding:"required"`
	HireDate     *time.Time `json:"hire_date"`
}

func (r employeeRequest) toInput() service.EmployeeInput {
	return service.EmployeeInput{
		EmployeeID:   r.EmployeeID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Position:     r.Position,
		DepartmentID: r.DepartmentID,
		Salary:       r.Salary,
		Status:       domain.EmployeeStatus(r.Status),
		HireDate:     r.HireDate,
	}
}

type employeeResponse struct {
	ID             uint       `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Position       string     `json:"position,omitempty"`
	DepartmentID   *uint      `json:"department_id,omitempty"`
	DepartmentName string     `json:"department_name,omitempty"`
	Salary         float64    `json:"salary"`
	Status         string     `json:"status"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	CreatedBy      string     `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	out := employeeResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
		Salary:       e.Salary,
		Status:       string(e.Status),
		HireDate:     e.HireDate,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Department != nil {
		out.DepartmentName = e.Department.Name
	}
	return out
}

func toEmployeeResponses(es []domain.Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(es))
	for i := range es {
		out = append(out, toEmployeeResponse(&es[i]))
	}
	return out
}

type departmentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ManagerName string `json:"manager_name" binding:"max=100"`
}

func (r departmentRequest) toInput() service.DepartmentInput {
	return service.DepartmentInput{
		Name:        r.Name,
		Description: r.Description,
		ManagerName: r.ManagerName,
	}
}

type departmentResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ManagerName   string    `json:"manager_name,omitempty"`
	EmployeeCount int64     `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toDepartmentResponse(d *domain.Department, employeeCount int64) departmentResponse {
	return departmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		ManagerName:   d.ManagerName,
		EmployeeCount: employeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
