package service

import (
	"context"
	"fmt"
	"strings"

	"sentimentservice/internal/domain"
	"sentimentservice/internal/observability"
	"go.uber.org/zap"
)

// IngestService оркестрирует приём отзыва: валидация текста,
// классификация, учёт в процессных счётчиках и best-effort запись
// в хранилище.
type IngestService struct {
	classifier domain.Classifier
	counters   *CounterTracker
	reviewRepo domain.ReviewRepository
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewIngestService создаёт новый экземпляр IngestService
func NewIngestService(
	classifier domain.Classifier,
	counters *CounterTracker,
	reviewRepo domain.ReviewRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		classifier: classifier,
		counters:   counters,
		reviewRepo: reviewRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Submit обрабатывает один отзыв и возвращает присвоенную метку.
//
// Ошибка классификации фатальна для запроса: ни счётчики, ни хранилище
// не изменяются. Ошибка записи в хранилище, наоборот, подавляется:
// счётчики уже обновлены, пользователь получает успешный ответ,
// а потеря видна только в логе и метрике reviews_dropped_total.
// Доступность здесь намеренно важнее долговечности.
func (s *IngestService) Submit(ctx context.Context, text string) (domain.Sentiment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrMissingInput
	}

	label, err := s.classifier.Classify(ctx, text)
	if err != nil {
		s.logger.Error("classification failed", zap.Error(err))
		return "", fmt.Errorf("failed to classify review: %w", err)
	}

	s.counters.Observe(text, label)
	s.metrics.ReviewsIngested.WithLabelValues(string(label)).Inc()

	if err := s.reviewRepo.Append(ctx, text, label); err != nil {
		s.logger.Error("failed to persist review, continuing",
			zap.Error(err),
			zap.String("label", string(label)))
		s.metrics.ReviewsDropped.Inc()
	}

	s.logger.Info("review ingested", zap.String("label", string(label)))

	return label, nil
}
