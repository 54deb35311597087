package handler

import (
	"net/http"
	"strconv"
	"time"

	"sentimentservice/internal/observability"
	"sentimentservice/internal/sessions"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router создаёт и настраивает HTTP роутер
func Router(
	reviewHandler *ReviewHandler,
	adminHandler *AdminHandler,
	sessionManager *sessions.Manager,
	metrics *observability.Collector,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggerMiddleware(logger))
	r.Use(metricsMiddleware(metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus метрики
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		metrics.Registry(),
		promhttp.HandlerOpts{},
	))

	// Публичная страница отзывов
	r.Get("/", reviewHandler.Index)
	r.Post("/", reviewHandler.Submit)

	// Аутентификация администратора
	r.Get("/admin", adminHandler.Admin)
	r.Get("/admin_login", adminHandler.LoginForm)
	r.Post("/admin_login", adminHandler.Login)
	r.Get("/admin_register", adminHandler.RegisterForm)
	r.Post("/admin_register", adminHandler.Register)

	// Эндпоинты, требующие активной сессии
	r.Group(func(r chi.Router) {
		r.Use(requireSession(sessionManager))
		r.Get("/admin_dashboard", adminHandler.Dashboard)
		r.Get("/admin_logout", adminHandler.Logout)
	})

	return r
}

// requireSession пропускает запрос только при активной сессии,
// иначе перенаправляет на страницу входа
func requireSession(sessionManager *sessions.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessionManager.Username(r); !ok {
				http.Redirect(w, r, "/admin_login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// loggerMiddleware добавляет структурированное логирование HTTP запросов
func loggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("user_agent", r.UserAgent()),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// metricsMiddleware учитывает запросы в prometheus-метриках.
// Меткой пути служит шаблон маршрута chi, а не сырой URL:
// произвольные пути не должны раздувать кардинальность метрик.
func metricsMiddleware(metrics *observability.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				path := "unmatched"
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					if pattern := rctx.RoutePattern(); pattern != "" {
						path = pattern
					}
				}

				metrics.HTTPRequests.WithLabelValues(
					r.Method, path, strconv.Itoa(ww.Status()),
				).Inc()
				metrics.HTTPDuration.WithLabelValues(
					r.Method, path,
				).Observe(time.Since(start).Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
