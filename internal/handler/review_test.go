package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"sentimentservice/internal/chart"
	"sentimentservice/internal/domain"
	"sentimentservice/internal/observability"
	"sentimentservice/internal/service"
	"sentimentservice/internal/sessions"
	"sentimentservice/internal/testutil"
	"go.uber.org/zap"
)

// fixture wires a full router over mock repositories
type fixture struct {
	router     http.Handler
	counters   *service.CounterTracker
	reviewRepo *testutil.MockReviewRepository
	adminRepo  *testutil.MockAdminRepository
	sessions   *sessions.Manager
	metrics    *observability.Collector
}

func newFixture(t *testing.T, clf domain.Classifier) *fixture {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	metrics := observability.NewCollector("test")

	reviewRepo := testutil.NewMockReviewRepository()
	adminRepo := testutil.NewMockAdminRepository()
	counters := service.NewCounterTracker(50)

	ingestService := service.NewIngestService(clf, counters, reviewRepo, metrics, logger)
	statsService := service.NewStatsService(reviewRepo, logger)
	authService := service.NewAuthService(adminRepo, logger)

	sessionManager := sessions.NewManager("test-secret", "admin_session", 0)

	templates, err := LoadTemplates()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	reviewHandler := NewReviewHandler(ingestService, counters, templates, logger)
	adminHandler := NewAdminHandler(
		authService, statsService, sessionManager,
		chart.NewPieRenderer(), metrics, templates, logger,
	)

	return &fixture{
		router:     Router(reviewHandler, adminHandler, sessionManager, metrics, logger),
		counters:   counters,
		reviewRepo: reviewRepo,
		adminRepo:  adminRepo,
		sessions:   sessionManager,
		metrics:    metrics,
	}
}

func (f *fixture) postForm(path string, form url.Values, cookies []*http.Cookie) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec.Result()
}

func (f *fixture) get(path string, cookies []*http.Cookie) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec.Result()
}

// TestIndexPage tests the public counter page
func TestIndexPage(t *testing.T) {
	f := newFixture(t, &testutil.MockClassifier{Label: domain.SentimentPositive})

	resp := f.get("/", nil)
	testutil.AssertHTTPStatus(t, resp, http.StatusOK)

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	testutil.AssertTrue(t, strings.Contains(string(body), "Positive: 0"), "zero counters on fresh start")
}

// TestSubmitReview tests end-to-end submission of a positive review:
// counters move, a record is appended, the response is a redirect
func TestSubmitReview(t *testing.T) {
	f := newFixture(t, &testutil.MockClassifier{Label: domain.SentimentPositive})

	resp := f.postForm("/", url.Values{"text": {"great product"}}, nil)
	testutil.AssertHTTPStatus(t, resp, http.StatusSeeOther)
	testutil.AssertEqual(t, resp.Header.Get("Location"), "/", "redirect target")

	snapshot := f.counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive, uint64(1), "positive counter")
	testutil.AssertEqual(t, snapshot.Negative, uint64(0), "negative counter")

	testutil.AssertLen(t, f.reviewRepo.Reviews, 1, "persisted records")
	testutil.AssertEqual(t, f.reviewRepo.Reviews[0].Text, "great product", "persisted text")
	testutil.AssertEqual(t, f.reviewRepo.Reviews[0].Label, domain.SentimentPositive, "persisted label")
}

// TestSubmitReview_MissingText tests the caller error for empty input
func TestSubmitReview_MissingText(t *testing.T) {
	f := newFixture(t, &testutil.MockClassifier{Label: domain.SentimentPositive})

	resp := f.postForm("/", url.Values{}, nil)
	testutil.AssertHTTPStatus(t, resp, http.StatusBadRequest)

	snapshot := f.counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive+snapshot.Negative, uint64(0), "no mutation")
}

// TestSubmitReview_ClassifierFailure tests the fatal server error path
func TestSubmitReview_ClassifierFailure(t *testing.T) {
	clf := &testutil.MockClassifier{
		ClassifyFunc: func(ctx context.Context, text string) (domain.Sentiment, error) {
			return "", errors.New("pipeline down")
		},
	}
	f := newFixture(t, clf)

	resp := f.postForm("/", url.Values{"text": {"some review"}}, nil)
	testutil.AssertHTTPStatus(t, resp, http.StatusInternalServerError)

	snapshot := f.counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive+snapshot.Negative, uint64(0), "no mutation")
	testutil.AssertLen(t, f.reviewRepo.Reviews, 0, "no persistence")
}

// TestSubmitReview_StoreDown tests best-effort persistence at the HTTP level:
// the caller still sees a successful redirect
func TestSubmitReview_StoreDown(t *testing.T) {
	f := newFixture(t, &testutil.MockClassifier{Label: domain.SentimentPositive})
	f.reviewRepo.AppendFunc = func(ctx context.Context, text string, label domain.Sentiment) error {
		return errors.New("store unavailable")
	}

	resp := f.postForm("/", url.Values{"text": {"great product"}}, nil)
	testutil.AssertHTTPStatus(t, resp, http.StatusSeeOther)

	snapshot := f.counters.Snapshot()
	testutil.AssertEqual(t, snapshot.Positive, uint64(1), "counter still incremented")
	testutil.AssertLen(t, f.reviewRepo.Reviews, 0, "no record appended")
}

// TestHealth tests the health endpoint
func TestHealth(t *testing.T) {
	f := newFixture(t, &testutil.MockClassifier{Label: domain.SentimentPositive})

	resp := f.get("/health", nil)
	testutil.AssertHTTPStatus(t, resp, http.StatusOK)
}
