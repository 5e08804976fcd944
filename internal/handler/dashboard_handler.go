package handler

import (
	"net/http"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/dto"
)

func (h *EmployeeHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashService.GetStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDashboardStatsResponse(stats))
}

func (h *EmployeeHandler) toDashboardStatsResponse(stats *domain.DashboardStats) dto.DashboardStatsResponse {
	resp := dto.DashboardStatsResponse{
		TotalEmployees:   stats.TotalEmployees,
		TotalAttendance:  stats.TotalAttendance,
		PresentToday:     stats.PresentToday,
		AbsentToday:      stats.AbsentToday,
		Departments:      make([]dto.DepartmentCountResponse, 0, len(stats.Departments)),
		RecentAttendance: make([]dto.RecentAttendanceResponse, 0, len(stats.RecentAttendance)),
	}

	for _, dept := range stats.Departments {
		resp.Departments = append(resp.Departments, dto.DepartmentCountResponse{
			Name:  dept.Name,
			Count: dept.Count,
		})
	}

	for i := range stats.RecentAttendance {
		att := &stats.RecentAttendance[i]
		recent := dto.RecentAttendanceResponse{
			EmployeeID: att.EmployeeID,
			Date:       att.Date.Format("2006-01-02"),
			Status:     string(att.Status),
		}
		if att.Employee != nil {
			recent.EmployeeName = att.Employee.Name
		}
		resp.RecentAttendance = append(resp.RecentAttendance, recent)
	}

	return resp
}
