package domain

import "time"

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "ACTIVE"
	StatusInactive EmployeeStatus = "INACTIVE"
	StatusOnLeave  EmployeeStatus = "ON_LEAVE"
)

func ValidStatus(s string) bool {
	switch EmployeeStatus(s) {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

// Employee carries both a numeric primary key and the business employee id
// (the code printed on badges). Self-scoped reads compare the caller's
// subject against EmployeeID, not the numeric key.
type Employee struct {
	ID           uint   `gorm:"primaryKey"`
	EmployeeID   string `gorm:"uniqueIndex;size:20"`
	FirstName    string `gorm:"size:50"`
	LastName     string `gorm:"size:50"`
	Email        string `gorm:"uniqueIndex"`
	Phone        string `gorm:"size:20"`
	Position     string `gorm:"size:100"`
	DepartmentID *uint  `gorm:"index"`
	Department   *Department
	Salary       float64
	Status       EmployeeStatus `gorm:"index"`
	HireDate     *time.Time
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
