package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
)

var (
	// ErrAlreadyAssigned is returned when assigning an employee that already
	// belongs to a project.
	ErrAlreadyAssigned = errors.New("employee is already assigned to a project")
	// ErrNotAssigned is returned when unassigning an employee from a project it
	// does not belong to.
	ErrNotAssigned         = errors.New("employee is not assigned to this project")
	ErrProjectHasEmployees = errors.New("project still has assigned employees")
)
