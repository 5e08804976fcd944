package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB открывает отдельную in-memory базу на каждый тест.
// Внешние ключи в sqlite включаются явно, иначе каскад не сработает
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Employee{}, &domain.Attendance{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func testEmployee(id string) *domain.Employee {
	return &domain.Employee{
		EmployeeID: id,
		Name:       "Test Employee",
		Email:      "test@example.com",
		Department: "Engineering",
	}
}

func TestEmployeeRepository_CreateDuplicate(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testEmployee("EMP001")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	dup := testEmployee("EMP001")
	dup.Name = "Other Name"
	err := repo.Create(ctx, dup)
	if !errors.Is(err, domain.ErrEmployeeAlreadyExists) {
		t.Errorf("expected ErrEmployeeAlreadyExists, got %v", err)
	}

	stored, err := repo.GetByID(ctx, "EMP001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "Test Employee" {
		t.Errorf("original record was modified: name '%s'", stored.Name)
	}
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewEmployeeRepository(db)

	_, err := repo.GetByID(context.Background(), "EMP999")
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewEmployeeRepository(db)

	err := repo.Delete(context.Background(), "EMP999")
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_DeleteCascadesAttendance(t *testing.T) {
	db := openTestDB(t)
	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	ctx := context.Background()

	if err := empRepo.Create(ctx, testEmployee("EMP001")); err != nil {
		t.Fatalf("create employee failed: %v", err)
	}

	for day := 1; day <= 3; day++ {
		att := &domain.Attendance{
			EmployeeID: "EMP001",
			Date:       time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC),
			Status:     domain.StatusPresent,
		}
		if err := attRepo.Create(ctx, att); err != nil {
			t.Fatalf("create attendance failed: %v", err)
		}
	}

	if err := empRepo.Delete(ctx, "EMP001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var count int64
	if err := db.Model(&domain.Attendance{}).Where("employee_id = ?", "EMP001").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 attendance records after cascade, got %d", count)
	}
}

func TestEmployeeRepository_CountByDepartment(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	for i, dept := range []string{"Engineering", "Engineering", "Sales"} {
		emp := testEmployee(fmt.Sprintf("EMP%03d", i+1))
		emp.Department = dept
		if err := repo.Create(ctx, emp); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	counts, err := repo.CountByDepartment(ctx)
	if err != nil {
		t.Fatalf("count by department failed: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(counts))
	}
	if counts[0].Name != "Engineering" || counts[0].Count != 2 {
		t.Errorf("unexpected first department: %+v", counts[0])
	}
	if counts[1].Name != "Sales" || counts[1].Count != 1 {
		t.Errorf("unexpected second department: %+v", counts[1])
	}
}

func TestAttendanceRepository_CreateUnknownEmployee(t *testing.T) {
	db := openTestDB(t)
	attRepo := repository.NewAttendanceRepository(db)

	att := &domain.Attendance{
		EmployeeID: "EMP999",
		Date:       time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusPresent,
	}
	err := attRepo.Create(context.Background(), att)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestAttendanceRepository_OrderedByDateDescending(t *testing.T) {
	db := openTestDB(t)
	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	ctx := context.Background()

	if err := empRepo.Create(ctx, testEmployee("EMP001")); err != nil {
		t.Fatalf("create employee failed: %v", err)
	}

	days := []int{28, 27, 1}
	for _, day := range days {
		att := &domain.Attendance{
			EmployeeID: "EMP001",
			Date:       time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC),
			Status:     domain.StatusAbsent,
		}
		if err := attRepo.Create(ctx, att); err != nil {
			t.Fatalf("create attendance failed: %v", err)
		}
	}

	records, err := attRepo.GetByEmployeeID(ctx, "EMP001")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	for i := 1; i < len(records); i++ {
		if records[i].Date.After(records[i-1].Date) {
			t.Errorf("records out of order: %s before %s",
				records[i-1].Date.Format("2006-01-02"),
				records[i].Date.Format("2006-01-02"))
		}
	}
	if records[0].Date.Day() != 28 || records[2].Date.Day() != 1 {
		t.Errorf("unexpected order: first %s, last %s",
			records[0].Date.Format("2006-01-02"),
			records[2].Date.Format("2006-01-02"))
	}
}

func TestAttendanceRepository_DuplicateDayAllowed(t *testing.T) {
	db := openTestDB(t)
	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	ctx := context.Background()

	if err := empRepo.Create(ctx, testEmployee("EMP001")); err != nil {
		t.Fatalf("create employee failed: %v", err)
	}

	date := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		att := &domain.Attendance{
			EmployeeID: "EMP001",
			Date:       date,
			Status:     domain.StatusPresent,
		}
		if err := attRepo.Create(ctx, att); err != nil {
			t.Fatalf("create attendance failed: %v", err)
		}
	}

	records, err := attRepo.GetByEmployeeID(ctx, "EMP001")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records for the same day, got %d", len(records))
	}
	if records[0].ID >= records[1].ID {
		t.Errorf("same-date records must be ordered by id: %d, %d", records[0].ID, records[1].ID)
	}
}
