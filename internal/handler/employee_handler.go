package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/Kaithwasneha/HRMS-Lite/internal/domain"
	"github.com/Kaithwasneha/HRMS-Lite/internal/dto"
	"github.com/Kaithwasneha/HRMS-Lite/internal/service"
	"github.com/go-playground/validator/v10"
)

// Формат email: локальная часть, домен и финальная метка минимум из двух букв.
// Без нормализации и приведения регистра
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type EmployeeHandler struct {
	empService  service.EmployeeService
	attService  service.AttendanceService
	dashService service.DashboardService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewEmployeeHandler(
	empService service.EmployeeService,
	attService service.AttendanceService,
	dashService service.DashboardService,
	logger *slog.Logger,
) *EmployeeHandler {
	v := validator.New()

	// Поле считается пустым, если после обрезки пробелов ничего не осталось
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterValidation("hrmsemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &EmployeeHandler{
		empService:  empService,
		attService:  attService,
		dashService: dashService,
		validator:   v,
		logger:      logger,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "validation error", validationDetails(err))
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, h.toEmployeeResponse(&employees[i]))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, err := extractEmployeeID(r.URL.Path, "/employees/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), employeeID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// extractEmployeeID извлекает идентификатор сотрудника из пути запроса
func extractEmployeeID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	id = strings.Trim(id, "/")
	if id == "" || strings.Contains(id, "/") {
		return "", errors.New("employee id is required")
	}
	return id, nil
}

// validationDetails собирает из ошибки валидатора список полей с причинами
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			details = append(details, fe.Field()+" is required")
		case "max":
			details = append(details, fe.Field()+" is too long (max "+fe.Param()+" characters)")
		case "hrmsemail":
			details = append(details, fe.Field()+" must be a valid email address")
		case "oneof":
			details = append(details, fe.Field()+" must be one of: "+fe.Param())
		case "datetime":
			details = append(details, fe.Field()+" must be a valid date in YYYY-MM-DD format")
		default:
			details = append(details, fe.Field()+" is invalid")
		}
	}
	return strings.Join(details, "; ")
}

func (h *EmployeeHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt,
	}
}

func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrEmployeeAlreadyExists):
		h.respondError(w, http.StatusConflict, "employee with this id already exists", "")
	case errors.Is(err, domain.ErrInvalidStatus):
		h.respondError(w, http.StatusUnprocessableEntity, "validation error", err.Error())
	case errors.Is(err, domain.ErrInvalidDate):
		h.respondError(w, http.StatusUnprocessableEntity, "validation error", err.Error())
	case errors.Is(err, domain.ErrConstraintViolation):
		h.respondError(w, http.StatusConflict, "storage constraint violated", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *EmployeeHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *EmployeeHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
