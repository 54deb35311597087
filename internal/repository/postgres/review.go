package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"sentimentservice/internal/domain"
)

// ReviewRepository реализует domain.ReviewRepository для PostgreSQL
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository создаёт новый экземпляр ReviewRepository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Append добавляет отзыв с меткой тональности
func (r *ReviewRepository) Append(ctx context.Context, text string, label domain.Sentiment) error {
	query := `
		INSERT INTO reviews (text, label)
		VALUES ($1, $2)
	`

	if _, err := r.db.ExecContext(ctx, query, text, string(label)); err != nil {
		return fmt.Errorf("failed to append review: %w", err)
	}

	return nil
}

// All возвращает все отзывы в порядке добавления
func (r *ReviewRepository) All(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, text, label, created_at
		FROM reviews
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var label string
		if err := rows.Scan(&review.ID, &review.Text, &label, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		review.Label = domain.Sentiment(label)
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
