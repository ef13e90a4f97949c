package service

import (
	"context"

	"shift-wage-bot/internal/domain"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
}

func (s *EmployeeService) CreateOrUpdateEmployee(ctx context.Context, e domain.Employee) error {
	if e.Role == "" {
		e.Role = "employee"
	}
	return s.Repo.CreateOrUpdateEmployee(ctx, e)
}

func NewEmployeeService(repo domain.EmployeeRepo) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.Repo.GetAllEmployees(ctx)
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error) {
	return s.Repo.GetEmployeeByID(ctx, id)
}
