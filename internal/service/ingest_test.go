package service

import (
	"context"
	"errors"
	"testing"

	"sentimentservice/internal/domain"
	"sentimentservice/internal/observability"
	"sentimentservice/internal/testutil"
	"go.uber.org/zap"
)

func newIngestFixture(clf domain.Classifier, repo domain.ReviewRepository) (*IngestService, *CounterTracker) {
	logger, _ := zap.NewDevelopment()
	counters := NewCounterTracker(10)
	metrics := observability.NewCollector("test")
	return NewIngestService(clf, counters, repo, metrics, logger), counters
}

// TestIngestService_Submit tests the happy path: classify, count, persist
func TestIngestService_Submit(t *testing.T) {
	reviewRepo := testutil.NewMockReviewRepository()
	svc, counters := newIngestFixture(&testutil.MockClassifier{Label: domain.SentimentPositive}, reviewRepo)

	label, err := svc.Submit(context.Background(), "great product")

	testutil.AssertNoError(t, err, "submit")
	testutil.AssertEqual(t, label, domain.SentimentPositive, "label")

	snapshot := counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive, uint64(1), "positive counter")
	testutil.AssertEqual(t, snapshot.Negative, uint64(0), "negative counter")

	testutil.AssertLen(t, reviewRepo.Reviews, 1, "persisted reviews")
	testutil.AssertEqual(t, reviewRepo.Reviews[0].Text, "great product", "persisted text")
	testutil.AssertEqual(t, reviewRepo.Reviews[0].Label, domain.SentimentPositive, "persisted label")
}

// TestIngestService_Submit_MissingText tests rejection of empty input before any mutation
func TestIngestService_Submit_MissingText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewRepo := testutil.NewMockReviewRepository()
			svc, counters := newIngestFixture(&testutil.MockClassifier{Label: domain.SentimentPositive}, reviewRepo)

			_, err := svc.Submit(context.Background(), tt.text)

			testutil.AssertErrorIs(t, err, domain.ErrMissingInput, "missing input error")

			snapshot := counters.Snapshot()
			testutil.AssertEqual(t, snapshot.Positive+snapshot.Negative, uint64(0), "no counter mutation")
			testutil.AssertLen(t, reviewRepo.Reviews, 0, "no persistence")
		})
	}
}

// TestIngestService_Submit_ClassifierError tests that a classifier failure
// is fatal and commits no partial state
func TestIngestService_Submit_ClassifierError(t *testing.T) {
	reviewRepo := testutil.NewMockReviewRepository()
	clf := &testutil.MockClassifier{
		ClassifyFunc: func(ctx context.Context, text string) (domain.Sentiment, error) {
			return "", errors.New("pipeline unavailable")
		},
	}
	svc, counters := newIngestFixture(clf, reviewRepo)

	_, err := svc.Submit(context.Background(), "some review")

	testutil.AssertError(t, err, "classifier failure must propagate")

	snapshot := counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive+snapshot.Negative, uint64(0), "no counter mutation")
	testutil.AssertLen(t, reviewRepo.Reviews, 0, "no persistence")
}

// TestIngestService_Submit_StoreUnavailable tests best-effort persistence:
// the submission still succeeds and the counter is still incremented
func TestIngestService_Submit_StoreUnavailable(t *testing.T) {
	reviewRepo := testutil.NewMockReviewRepository()
	reviewRepo.AppendFunc = func(ctx context.Context, text string, label domain.Sentiment) error {
		return errors.New("connection refused")
	}
	svc, counters := newIngestFixture(&testutil.MockClassifier{Label: domain.SentimentNegative}, reviewRepo)

	label, err := svc.Submit(context.Background(), "terrible product")

	testutil.AssertNoError(t, err, "submit must succeed despite store failure")
	testutil.AssertEqual(t, label, domain.SentimentNegative, "label")

	snapshot := counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Negative, uint64(1), "counter incremented")
	testutil.AssertLen(t, reviewRepo.Reviews, 0, "nothing appended")
}

// TestIngestService_Submit_NotDeduplicated tests that repeated submissions
// each create a new review and increment
func TestIngestService_Submit_NotDeduplicated(t *testing.T) {
	reviewRepo := testutil.NewMockReviewRepository()
	svc, counters := newIngestFixture(&testutil.MockClassifier{Label: domain.SentimentPositive}, reviewRepo)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(context.Background(), "great product")
		testutil.AssertNoError(t, err, "submit")
	}

	snapshot := counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive, uint64(3), "three increments")
	testutil.AssertLen(t, reviewRepo.Reviews, 3, "three records")
}
