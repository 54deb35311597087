package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sentimentservice/internal/domain"
)

// Remote реализует domain.Classifier поверх внешнего HTTP-сервиса
// предсказаний. Ошибки транспорта и декодирования возвращаются как есть:
// ретраи и fallback не выполняются.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote создаёт классификатор, обращающийся к внешнему сервису
func NewRemote(url string, timeout time.Duration) *Remote {
	return &Remote{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify отправляет текст внешнему сервису и возвращает его метку
func (r *Remote) Classify(ctx context.Context, text string) (domain.Sentiment, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var result struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode classifier response: %w", err)
	}

	label := domain.Sentiment(result.Label)
	if !label.IsValid() {
		return "", fmt.Errorf("classifier returned unknown label %q", result.Label)
	}

	return label, nil
}
