package handler

import (
	"encoding/base64"
	"errors"
	"net/http"

	"sentimentservice/internal/chart"
	"sentimentservice/internal/domain"
	"sentimentservice/internal/observability"
	"sentimentservice/internal/service"
	"sentimentservice/internal/sessions"
	"go.uber.org/zap"
)

// AdminHandler обрабатывает аутентификацию и дашборд администратора
type AdminHandler struct {
	auth      *service.AuthService
	stats     *service.StatsService
	sessions  *sessions.Manager
	chart     *chart.PieRenderer
	metrics   *observability.Collector
	templates *Templates
	logger    *zap.Logger
}

// NewAdminHandler создаёт новый экземпляр AdminHandler
func NewAdminHandler(
	auth *service.AuthService,
	stats *service.StatsService,
	sessionManager *sessions.Manager,
	pie *chart.PieRenderer,
	metrics *observability.Collector,
	templates *Templates,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		stats:     stats,
		sessions:  sessionManager,
		chart:     pie,
		metrics:   metrics,
		templates: templates,
		logger:    logger,
	}
}

// Admin обрабатывает GET /admin: при активной сессии ведёт на дашборд,
// иначе показывает форму входа
func (h *AdminHandler) Admin(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Username(r); ok {
		redirect(w, r, "/admin_dashboard")
		return
	}

	if err := h.templates.Render(w, "login.html", nil); err != nil {
		h.logger.Error("failed to render login page", zap.Error(err))
	}
}

// LoginForm обрабатывает GET /admin_login
func (h *AdminHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.Render(w, "login.html", nil); err != nil {
		h.logger.Error("failed to render login page", zap.Error(err))
	}
}

// Login обрабатывает POST /admin_login.
// Неудача возвращается простой строкой, сессия не создаётся.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.auth.Login(r.Context(), username, password); err != nil {
		h.metrics.LoginFailures.Inc()
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, h.logger, http.StatusUnauthorized, err, "No such user")
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, h.logger, http.StatusUnauthorized, err, "Invalid credentials")
		default:
			writeServerError(w, h.logger, err)
		}
		return
	}

	if err := h.sessions.SignIn(w, r, username); err != nil {
		writeServerError(w, h.logger, err)
		return
	}

	redirect(w, r, "/admin_dashboard")
}

// RegisterForm обрабатывает GET /admin_register
func (h *AdminHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if err := h.templates.Render(w, "register.html", nil); err != nil {
		h.logger.Error("failed to render register page", zap.Error(err))
	}
}

// Register обрабатывает POST /admin_register
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid form data")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := h.auth.Register(r.Context(), username, password); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, h.logger, http.StatusBadRequest, err, "Username and password are required")
		case errors.Is(err, domain.ErrUsernameTaken):
			writeError(w, h.logger, http.StatusConflict, err, "Username already taken")
		default:
			writeServerError(w, h.logger, err)
		}
		return
	}

	redirect(w, r, "/admin_login")
}

// Dashboard обрабатывает GET /admin_dashboard.
// Статистика считается из полной сохранённой истории; диаграмма
// добавляется best-effort - её сбой не срывает ответ.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username, _ := h.sessions.Username(r)

	stats, err := h.stats.DashboardStats(r.Context())
	if err != nil {
		writeServerError(w, h.logger, err)
		return
	}

	var chartData string
	if png, err := h.chart.Render(stats); err != nil {
		h.logger.Warn("failed to render chart, continuing without it", zap.Error(err))
	} else {
		chartData = base64.StdEncoding.EncodeToString(png)
	}

	data := struct {
		Username  string
		Stats     domain.ReviewStats
		ChartData string
	}{
		Username:  username,
		Stats:     stats,
		ChartData: chartData,
	}

	if err := h.templates.Render(w, "dashboard.html", data); err != nil {
		h.logger.Error("failed to render dashboard", zap.Error(err))
	}
}

// Logout обрабатывает GET /admin_logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		h.logger.Error("failed to clear session", zap.Error(err))
	}

	redirect(w, r, "/admin_login")
}
