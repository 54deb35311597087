package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"sentimentservice/internal/domain"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates содержит разобранные HTML-шаблоны страниц
type Templates struct {
	tmpl *template.Template
}

// LoadTemplates разбирает встроенные шаблоны
func LoadTemplates() (*Templates, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Templates{tmpl: tmpl}, nil
}

// Render отрисовывает именованный шаблон
func (t *Templates) Render(w http.ResponseWriter, name string, data interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.tmpl.ExecuteTemplate(w, name, data)
}

// writePlain записывает ответ простой строкой.
// Формат ответов об ошибках аутентификации намеренно текстовый.
func writePlain(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	fmt.Fprint(w, message)
}

// writeError записывает отказ доменного уровня простой строкой
// и логирует его с машинным кодом ошибки
func writeError(w http.ResponseWriter, logger *zap.Logger, statusCode int, err error, message string) {
	logger.Info("request rejected",
		zap.Error(err),
		zap.Int("status_code", statusCode),
		zap.String("error_code", string(domain.MapErrorToCode(err))))

	writePlain(w, statusCode, message)
}

// writeServerError логирует ошибку и возвращает 500
func writeServerError(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Error("request error",
		zap.Error(err),
		zap.String("error_code", string(domain.MapErrorToCode(err))))
	writePlain(w, http.StatusInternalServerError, "internal server error")
}

// redirect выполняет 303 See Other: после POST браузер уходит на GET
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
