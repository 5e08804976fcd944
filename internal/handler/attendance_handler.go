package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/dto"
)

func (h *EmployeeHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "validation error", validationDetails(err))
		return
	}

	att, err := h.attService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.toAttendanceResponse(att))
}

func (h *EmployeeHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := extractEmployeeID(r.URL.Path, "/attendance/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	records, err := h.attService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		resp = append(resp, h.toAttendanceResponse(&records[i]))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) toAttendanceResponse(att *domain.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		Status:     string(att.Status),
	}
}
