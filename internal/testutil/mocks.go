package testutil

import (
	"context"
	"time"

	"sentimentservice/internal/domain"
)

// MockReviewRepository implements domain.ReviewRepository for testing
type MockReviewRepository struct {
	Reviews []domain.Review

	// Hooks for custom behavior
	AppendFunc func(ctx context.Context, text string, label domain.Sentiment) error
	AllFunc    func(ctx context.Context) ([]domain.Review, error)
}

// NewMockReviewRepository creates a new mock review repository
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		Reviews: make([]domain.Review, 0),
	}
}

func (m *MockReviewRepository) Append(ctx context.Context, text string, label domain.Sentiment) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, text, label)
	}

	m.Reviews = append(m.Reviews, domain.Review{
		ID:        int64(len(m.Reviews) + 1),
		Text:      text,
		Label:     label,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *MockReviewRepository) All(ctx context.Context) ([]domain.Review, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}

	result := make([]domain.Review, len(m.Reviews))
	copy(result, m.Reviews)
	return result, nil
}

// MockAdminRepository implements domain.AdminRepository for testing
type MockAdminRepository struct {
	Accounts map[string]*domain.AdminAccount

	// Hooks for custom behavior
	CreateFunc        func(ctx context.Context, username string, passwordHash []byte) error
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.AdminAccount, error)
}

// NewMockAdminRepository creates a new mock admin repository
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{
		Accounts: make(map[string]*domain.AdminAccount),
	}
}

func (m *MockAdminRepository) Create(ctx context.Context, username string, passwordHash []byte) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, username, passwordHash)
	}

	if _, exists := m.Accounts[username]; exists {
		return domain.ErrUsernameTaken
	}
	m.Accounts[username] = &domain.AdminAccount{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}

	account, ok := m.Accounts[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return account, nil
}

// MockClassifier implements domain.Classifier for testing
type MockClassifier struct {
	// Label returned for every text unless ClassifyFunc is set
	Label domain.Sentiment

	ClassifyFunc func(ctx context.Context, text string) (domain.Sentiment, error)
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (domain.Sentiment, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return m.Label, nil
}
