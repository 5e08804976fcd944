package service

import (
	"context"
	"time"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/repository"
)

// Количество последних отметок посещаемости на дашборде
const recentAttendanceLimit = 5

// DashboardService определяет интерфейс для агрегированной статистики
type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}

type dashboardService struct {
	empRepo repository.EmployeeRepository
	attRepo repository.AttendanceRepository
	now     func() time.Time
}

// NewDashboardService создаёт новый экземпляр сервиса
func NewDashboardService(empRepo repository.EmployeeRepository, attRepo repository.AttendanceRepository) DashboardService {
	return &dashboardService{
		empRepo: empRepo,
		attRepo: attRepo,
		now:     time.Now,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	totalEmployees, err := s.empRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalEmployees = totalEmployees

	totalAttendance, err := s.attRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalAttendance = totalAttendance

	today := s.now()

	presentToday, err := s.attRepo.CountByDateAndStatus(ctx, today, domain.StatusPresent)
	if err != nil {
		return nil, err
	}
	stats.PresentToday = presentToday

	absentToday, err := s.attRepo.CountByDateAndStatus(ctx, today, domain.StatusAbsent)
	if err != nil {
		return nil, err
	}
	stats.AbsentToday = absentToday

	departments, err := s.empRepo.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	stats.Departments = departments

	recent, err := s.attRepo.GetRecent(ctx, recentAttendanceLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentAttendance = recent

	return stats, nil
}
