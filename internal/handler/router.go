package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kaithwasneha/HRMS-Lite/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	empHandler     *EmployeeHandler
	allowedOrigins []string
}

// NewRouter создаёт новый роутер
func NewRouter(empHandler *EmployeeHandler, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		logger:         logger,
		empHandler:     empHandler,
		allowedOrigins: allowedOrigins,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики. Путь без завершающего слеша регистрируем
	// отдельно, чтобы ServeMux не отвечал редиректом на POST
	r.mux.HandleFunc("/employees", r.employeesRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)
	r.mux.HandleFunc("/attendance", r.attendanceRouter)
	r.mux.HandleFunc("/attendance/", r.attendanceRouter)
	r.mux.HandleFunc("/dashboard/stats", r.dashboardRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(r.allowedOrigins)(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	if path == "" {
		// /employees - коллекция
		switch req.Method {
		case http.MethodPost:
			r.empHandler.Create(w, req)
		case http.MethodGet:
			r.empHandler.GetAll(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	// /employees/{employeeId}
	if !strings.Contains(path, "/") {
		if req.Method == http.MethodDelete {
			r.empHandler.Delete(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// attendanceRouter обрабатывает все запросы к /attendance
func (r *Router) attendanceRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/attendance")
	path = strings.Trim(path, "/")

	if path == "" {
		// /attendance - создание отметки
		if req.Method == http.MethodPost {
			r.empHandler.CreateAttendance(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	// /attendance/{employeeId}
	if !strings.Contains(path, "/") {
		if req.Method == http.MethodGet {
			r.empHandler.GetAttendance(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// dashboardRouter обрабатывает запросы к /dashboard/stats
func (r *Router) dashboardRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodGet {
		r.empHandler.DashboardStats(w, req)
		return
	}
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}
