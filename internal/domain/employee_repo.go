package domain

import "context"

type EmployeeRepo interface {
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (Employee, error)
	CreateOrUpdateEmployee(ctx context.Context, e Employee) error
}

type Employee struct {
	ID     int64
	Name   string
	ChatID int64
	Role   string
}
