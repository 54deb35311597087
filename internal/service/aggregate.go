package service

import (
	"context"
	"fmt"

	"sentimentservice/internal/domain"
	"go.uber.org/zap"
)

// Aggregate вычисляет статистику по последовательности отзывов.
// Чистая функция: одинаковый вход даёт одинаковый результат.
// Проценты не округляются; округление — забота слоя отображения.
func Aggregate(reviews []domain.Review) domain.ReviewStats {
	stats := domain.ReviewStats{}

	for _, review := range reviews {
		switch review.Label {
		case domain.SentimentPositive:
			stats.PositiveCount++
		case domain.SentimentNegative:
			stats.NegativeCount++
		}
	}

	stats.Total = stats.PositiveCount + stats.NegativeCount

	if stats.Total > 0 {
		stats.PositivePct = float64(stats.PositiveCount) / float64(stats.Total) * 100
		stats.NegativePct = float64(stats.NegativeCount) / float64(stats.Total) * 100
	}

	return stats
}

// StatsService реализует бизнес-логику статистики для дашборда.
// Статистика всегда пересчитывается из полной сохранённой истории
// на момент запроса и не зависит от процессных счётчиков.
type StatsService struct {
	reviewRepo domain.ReviewRepository
	logger     *zap.Logger
}

// NewStatsService создаёт новый экземпляр StatsService
func NewStatsService(reviewRepo domain.ReviewRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// DashboardStats возвращает агрегированную статистику по всем отзывам
func (s *StatsService) DashboardStats(ctx context.Context) (domain.ReviewStats, error) {
	reviews, err := s.reviewRepo.All(ctx)
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("failed to load reviews: %w", err)
	}

	stats := Aggregate(reviews)

	s.logger.Info("dashboard statistics calculated",
		zap.Int("total", stats.Total),
		zap.Int("positive", stats.PositiveCount),
		zap.Int("negative", stats.NegativeCount))

	return stats, nil
}
