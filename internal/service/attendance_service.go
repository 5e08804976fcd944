package service

import (
	"context"
	"strings"
	"time"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/dto"
	"github.com/Kaithwasneha/HRMS-Lite/internal/repository"
)

// AttendanceService определяет интерфейс бизнес-логики для посещаемости
type AttendanceService interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*domain.Attendance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Attendance, error)
}

type attendanceService struct {
	attRepo repository.AttendanceRepository
	empRepo repository.EmployeeRepository
}

// NewAttendanceService создаёт новый экземпляр сервиса
func NewAttendanceService(attRepo repository.AttendanceRepository, empRepo repository.EmployeeRepository) AttendanceService {
	return &attendanceService{
		attRepo: attRepo,
		empRepo: empRepo,
	}
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*domain.Attendance, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)

	// Проверяем существование сотрудника
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	status := domain.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	att := &domain.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}

	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	return att, nil
}

func (s *attendanceService) GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Attendance, error) {
	// Проверяем существование сотрудника: для неизвестного id возвращаем
	// ошибку, а не пустой список
	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	return s.attRepo.GetByEmployeeID(ctx, employeeID)
}
