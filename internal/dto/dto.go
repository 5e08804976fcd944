package dto

import (
	"time"
)

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,notblank,max=50"`
	Name       string `json:"name" validate:"required,notblank,max=100"`
	Email      string `json:"email" validate:"required,notblank,max=100,hrmsemail"`
	Department string `json:"department" validate:"required,notblank,max=100"`
}

// CreateAttendanceRequest - запрос на создание отметки посещаемости
type CreateAttendanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,notblank,max=50"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AttendanceResponse - ответ с данными отметки посещаемости
type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// DashboardStatsResponse - ответ со статистикой для дашборда
type DashboardStatsResponse struct {
	TotalEmployees   int64                      `json:"totalEmployees"`
	TotalAttendance  int64                      `json:"totalAttendance"`
	PresentToday     int64                      `json:"presentToday"`
	AbsentToday      int64                      `json:"absentToday"`
	Departments      []DepartmentCountResponse  `json:"departments"`
	RecentAttendance []RecentAttendanceResponse `json:"recentAttendance"`
}

// DepartmentCountResponse - количество сотрудников в подразделении
type DepartmentCountResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// RecentAttendanceResponse - последняя отметка посещаемости с именем сотрудника
type RecentAttendanceResponse struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
