package domain

import "context"

// ReviewRepository определяет интерфейс для работы с отзывами.
// Коллекция append-only: записи не обновляются и не удаляются.
type ReviewRepository interface {
	// Append добавляет отзыв с меткой тональности
	Append(ctx context.Context, text string, label Sentiment) error

	// All возвращает все отзывы в порядке добавления
	All(ctx context.Context) ([]Review, error)
}

// AdminRepository определяет интерфейс для работы с учётными записями
type AdminRepository interface {
	// Create создаёт учётную запись; возвращает ErrUsernameTaken,
	// если имя уже занято. Проверка и вставка атомарны.
	Create(ctx context.Context, username string, passwordHash []byte) error

	// GetByUsername получает учётную запись по имени.
	// Возвращает ErrUserNotFound, если записи нет.
	GetByUsername(ctx context.Context, username string) (*AdminAccount, error)
}

// Classifier определяет внешнюю границу классификации тональности.
// Для непустого текста реализация обязана вернуть валидную метку
// либо ошибку; ретраев и fallback'ов на этом уровне нет.
type Classifier interface {
	Classify(ctx context.Context, text string) (Sentiment, error)
}
