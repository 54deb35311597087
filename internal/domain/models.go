package domain

import "time"

// Sentiment представляет метку тональности отзыва
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// IsValid проверяет валидность метки тональности
func (s Sentiment) IsValid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

// Review представляет сохранённый отзыв с меткой тональности.
// Записи неизменяемы и никогда не удаляются.
type Review struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Label     Sentiment `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminAccount представляет учётную запись администратора.
// Пароль хранится только в виде bcrypt-хеша.
type AdminAccount struct {
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewStats представляет агрегированную статистику по отзывам.
// Всегда вычисляется заново из полной истории на момент запроса.
type ReviewStats struct {
	Total         int     `json:"total"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	PositivePct   float64 `json:"positive_pct"`
	NegativePct   float64 `json:"negative_pct"`
}
