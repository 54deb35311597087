package chart

import (
	"bytes"
	"fmt"

	"sentimentservice/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PieRenderer рисует круговую диаграмму распределения тональности.
// Сбой отрисовки обрабатывает вызывающая сторона: дашборд должен
// отображаться и без диаграммы.
type PieRenderer struct {
	width  int
	height int
}

// NewPieRenderer создаёт рендерер с размерами по умолчанию
func NewPieRenderer() *PieRenderer {
	return &PieRenderer{width: 512, height: 512}
}

// Render возвращает PNG с двумя долями и подписями процентов.
// Преобладающая доля выделяется цветом и увеличенной подписью:
// библиотека не умеет "выдвигать" сектор, поэтому акцент делается
// оформлением, а не смещением.
func (p *PieRenderer) Render(stats domain.ReviewStats) ([]byte, error) {
	if stats.Total == 0 {
		return nil, fmt.Errorf("no reviews to chart")
	}

	positiveStyle := chart.Style{
		FillColor: drawing.ColorFromHex("2e8b57"),
		FontSize:  14,
	}
	negativeStyle := chart.Style{
		FillColor: drawing.ColorFromHex("b22222"),
		FontSize:  14,
	}

	// Акцент на преобладающей доле
	if stats.PositiveCount >= stats.NegativeCount {
		positiveStyle.FontSize = 18
	} else {
		negativeStyle.FontSize = 18
	}

	// Нулевые доли не передаются рендереру
	values := make([]chart.Value, 0, 2)
	if stats.PositiveCount > 0 {
		values = append(values, chart.Value{
			Value: float64(stats.PositiveCount),
			Label: fmt.Sprintf("Positive %.1f%%", stats.PositivePct),
			Style: positiveStyle,
		})
	}
	if stats.NegativeCount > 0 {
		values = append(values, chart.Value{
			Value: float64(stats.NegativeCount),
			Label: fmt.Sprintf("Negative %.1f%%", stats.NegativePct),
			Style: negativeStyle,
		})
	}

	pie := chart.PieChart{
		Width:  p.width,
		Height: p.height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf.Bytes(), nil
}
