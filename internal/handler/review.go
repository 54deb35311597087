package handler

import (
	"errors"
	"net/http"

	"sentimentservice/internal/domain"
	"sentimentservice/internal/service"
	"go.uber.org/zap"
)

// ReviewHandler обрабатывает публичную страницу и приём отзывов
type ReviewHandler struct {
	ingest    *service.IngestService
	counters  *service.CounterTracker
	templates *Templates
	logger    *zap.Logger
}

// NewReviewHandler создаёт новый экземпляр ReviewHandler
func NewReviewHandler(
	ingest *service.IngestService,
	counters *service.CounterTracker,
	templates *Templates,
	logger *zap.Logger,
) *ReviewHandler {
	return &ReviewHandler{
		ingest:    ingest,
		counters:  counters,
		templates: templates,
		logger:    logger,
	}
}

// Index обрабатывает GET /: публичная страница со счётчиками
// и лентой последних отзывов
func (h *ReviewHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Snapshot service.CounterSnapshot
	}{
		Snapshot: h.counters.Snapshot(),
	}

	if err := h.templates.Render(w, "index.html", data); err != nil {
		h.logger.Error("failed to render index page", zap.Error(err))
	}
}

// Submit обрабатывает POST /: приём нового отзыва.
// Повторная отправка формы не дедуплицируется: каждый POST создаёт
// новый отзыв и новый инкремент.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid form data")
		return
	}

	_, err := h.ingest.Submit(r.Context(), r.PostFormValue("text"))
	if err != nil {
		if errors.Is(err, domain.ErrMissingInput) {
			writeError(w, h.logger, http.StatusBadRequest, err, "review text is required")
			return
		}
		writeServerError(w, h.logger, err)
		return
	}

	redirect(w, r, "/")
}
