package service

import (
	"context"
	"strings"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/dto"
	"github.com/Kaithwasneha/HRMS-Lite/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		empRepo: empRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	emp := &domain.Employee{
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Department: strings.TrimSpace(req.Department),
	}

	// Проверку уникальности выполняет хранилище: ограничение первичного
	// ключа закрывает гонку между конкурирующими вставками
	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.GetAll(ctx)
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	return s.empRepo.Delete(ctx, employeeID)
}
