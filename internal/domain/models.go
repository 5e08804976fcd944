package domain

import (
	"time"
)

// AttendanceStatus - статус посещаемости за день
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid проверяет, что статус является одним из двух допустимых значений
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Employee представляет сотрудника. Первичным ключом служит бизнес-идентификатор,
// который задаёт вызывающая сторона.
type Employee struct {
	EmployeeID string    `json:"employeeId" gorm:"primaryKey;type:varchar(50)"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null;index:idx_employees_dept_name,priority:2"`
	Email      string    `json:"email" gorm:"type:varchar(100);not null"`
	Department string    `json:"department" gorm:"type:varchar(100);not null;index:idx_employees_dept_name,priority:1"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Attendance []Attendance `json:"-" gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Attendance представляет отметку о посещаемости за конкретную дату
type Attendance struct {
	ID         int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID string           `json:"employeeId" gorm:"type:varchar(50);not null;index:idx_attendance_emp_date,priority:1"`
	Date       time.Time        `json:"date" gorm:"type:date;not null;index:idx_attendance_emp_date,priority:2;index:idx_attendance_date_status,priority:1"`
	Status     AttendanceStatus `json:"status" gorm:"type:varchar(10);not null;index:idx_attendance_date_status,priority:2"`
	CreatedAt  time.Time        `json:"created_at" gorm:"autoCreateTime"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Attendance) TableName() string {
	return "attendance"
}

// DepartmentCount - количество сотрудников в подразделении
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardStats - агрегированная статистика для дашборда
type DashboardStats struct {
	TotalEmployees   int64
	TotalAttendance  int64
	PresentToday     int64
	AbsentToday      int64
	Departments      []DepartmentCount
	RecentAttendance []Attendance
}
