package service

import "errors"

var (
	// ErrConflict is a unique-index violation the store could not
	// attribute to a field; services resolve it to one of the specific
	// duplicate errors below where they can.
	ErrConflict            = errors.New("duplicate value")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateDepartment = errors.New("department name already exists")
	ErrDepartmentNotEmpty  = errors.New("department still has employees")
)
