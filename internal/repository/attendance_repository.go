package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"gorm.io/gorm"
)

// AttendanceRepository определяет интерфейс для работы с посещаемостью
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Attendance, error)
	Count(ctx context.Context) (int64, error)
	CountByDateAndStatus(ctx context.Context, date time.Time, status domain.AttendanceStatus) (int64, error)
	GetRecent(ctx context.Context, limit int) ([]domain.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository создаёт новый экземпляр репозитория
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	err := r.db.WithContext(ctx).Create(att).Error
	if err != nil {
		// Сервис проверяет существование сотрудника до вставки, но между
		// проверкой и записью сотрудник мог быть удалён - тогда сработает
		// внешний ключ
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrEmployeeNotFound
		}
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return domain.ErrConstraintViolation
		}
		return err
	}
	return nil
}

func (r *attendanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC, id ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Attendance{}).Count(&count).Error
	return count, err
}

func (r *attendanceRepository) CountByDateAndStatus(ctx context.Context, date time.Time, status domain.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Attendance{}).
		Where("date = ? AND status = ?", date.Format("2006-01-02"), status).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepository) GetRecent(ctx context.Context, limit int) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
