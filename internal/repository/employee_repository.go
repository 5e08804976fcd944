package repository

import (
	"context"
	"errors"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context) ([]domain.DepartmentCount, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Create(emp).Error
	if err != nil {
		// Уникальность employee_id гарантирует первичный ключ, а не
		// предварительная проверка: конкурирующие вставки закрывает БД
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmployeeAlreadyExists
		}
		return err
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, "employee_id = ?", employeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	// Зависимые отметки посещаемости удаляет каскад по внешнему ключу
	// в рамках того же оператора DELETE
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, "employee_id = ?", employeeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *employeeRepository) CountByDepartment(ctx context.Context) ([]domain.DepartmentCount, error) {
	var counts []domain.DepartmentCount
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Select("department AS name, COUNT(employee_id) AS count").
		Group("department").
		Order("department ASC").
		Scan(&counts).Error
	return counts, err
}
