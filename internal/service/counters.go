package service

import (
	"sync"

	"sentimentservice/internal/domain"
)

// RecentReview представляет отзыв в ленте публичной страницы
type RecentReview struct {
	Text  string           `json:"text"`
	Label domain.Sentiment `json:"label"`
}

// CounterSnapshot представляет согласованный срез счётчиков
type CounterSnapshot struct {
	Positive uint64         `json:"positive"`
	Negative uint64         `json:"negative"`
	Recent   []RecentReview `json:"recent"`
}

// CounterTracker ведёт процессные счётчики тональности и ограниченную
// ленту последних отзывов для публичной страницы.
//
// Счётчики живут только в памяти процесса и обнуляются при рестарте.
// Это отдельный от хранилища источник данных: он может расходиться
// с историей в базе (рестарты, потерянные записи), и оба представления
// считаются корректными. Не сводить их к одному.
//
// Все операции защищены мьютексом: конкурентные инкременты не теряются.
type CounterTracker struct {
	mu       sync.Mutex
	positive uint64
	negative uint64

	recent   []RecentReview
	capacity int
}

// NewCounterTracker создаёт трекер с заданной ёмкостью ленты отзывов
func NewCounterTracker(capacity int) *CounterTracker {
	if capacity <= 0 {
		capacity = 50
	}
	return &CounterTracker{
		recent:   make([]RecentReview, 0, capacity),
		capacity: capacity,
	}
}

// Increment увеличивает счётчик для метки
func (t *CounterTracker) Increment(label domain.Sentiment) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.incrementLocked(label)
}

// Observe учитывает классифицированный отзыв: инкремент счётчика
// и добавление в ленту. Старые записи вытесняются при переполнении.
func (t *CounterTracker) Observe(text string, label domain.Sentiment) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.incrementLocked(label)

	if len(t.recent) == t.capacity {
		copy(t.recent, t.recent[1:])
		t.recent = t.recent[:t.capacity-1]
	}
	t.recent = append(t.recent, RecentReview{Text: text, Label: label})
}

// Snapshot возвращает копию текущего состояния
func (t *CounterTracker) Snapshot() CounterSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	recent := make([]RecentReview, len(t.recent))
	copy(recent, t.recent)

	return CounterSnapshot{
		Positive: t.positive,
		Negative: t.negative,
		Recent:   recent,
	}
}

func (t *CounterTracker) incrementLocked(label domain.Sentiment) {
	switch label {
	case domain.SentimentPositive:
		t.positive++
	case domain.SentimentNegative:
		t.negative++
	}
}
