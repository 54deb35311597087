package classifier

import (
	"context"
	"strings"

	"sentimentservice/internal/domain"
)

// Lexicon реализует domain.Classifier на основе словарей тональности.
// Детерминированный и полный: для любого непустого текста возвращает
// метку без ошибки.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "awesome", "love", "loved",
	"perfect", "best", "nice", "wonderful", "fantastic", "happy",
	"recommend", "recommended", "quality", "fast", "helpful", "pleased",
	"satisfied", "works", "easy", "beautiful", "comfortable", "reliable",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "hate", "hated", "worst",
	"poor", "broken", "broke", "useless", "waste", "slow", "cheap",
	"disappointed", "disappointing", "refund", "defective", "damaged",
	"never", "wrong", "problem", "problems", "fake", "ugly",
}

// NewLexicon создаёт классификатор со встроенными словарями
func NewLexicon() *Lexicon {
	l := &Lexicon{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
	}
	for _, w := range positiveWords {
		l.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		l.negative[w] = struct{}{}
	}
	return l
}

// Classify определяет тональность текста по балансу словарных слов.
// При равенстве и при отсутствии словарных слов текст считается позитивным.
func (l *Lexicon) Classify(_ context.Context, text string) (domain.Sentiment, error) {
	score := 0
	for _, token := range tokenize(text) {
		if _, ok := l.positive[token]; ok {
			score++
		}
		if _, ok := l.negative[token]; ok {
			score--
		}
	}

	if score < 0 {
		return domain.SentimentNegative, nil
	}
	return domain.SentimentPositive, nil
}

// tokenize приводит текст к нижнему регистру и разбивает на слова,
// отбрасывая пунктуацию
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
