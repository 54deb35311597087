package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sentimentservice/internal/testutil"
)

func requestWithCookies(cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// TestManager_SignInRoundtrip tests that a signed-in session is readable back
func TestManager_SignInRoundtrip(t *testing.T) {
	m := NewManager("test-secret", "admin_session", 0)

	rec := httptest.NewRecorder()
	err := m.SignIn(rec, httptest.NewRequest(http.MethodPost, "/admin_login", nil), "alice")
	testutil.AssertNoError(t, err, "sign in")

	cookies := rec.Result().Cookies()
	testutil.AssertTrue(t, len(cookies) > 0, "cookie set")

	username, ok := m.Username(requestWithCookies(cookies))
	testutil.AssertTrue(t, ok, "session active")
	testutil.AssertEqual(t, username, "alice", "username")
}

// TestManager_NoSession tests an anonymous request
func TestManager_NoSession(t *testing.T) {
	m := NewManager("test-secret", "admin_session", 0)

	_, ok := m.Username(httptest.NewRequest(http.MethodGet, "/", nil))
	testutil.AssertFalse(t, ok, "no session")
}

// TestManager_SignOut tests that a cleared session no longer authenticates,
// even if the expired cookie is replayed
func TestManager_SignOut(t *testing.T) {
	m := NewManager("test-secret", "admin_session", 0)

	rec := httptest.NewRecorder()
	err := m.SignIn(rec, httptest.NewRequest(http.MethodPost, "/admin_login", nil), "alice")
	testutil.AssertNoError(t, err, "sign in")
	active := rec.Result().Cookies()

	rec = httptest.NewRecorder()
	err = m.SignOut(rec, requestWithCookies(active))
	testutil.AssertNoError(t, err, "sign out")

	expired := rec.Result().Cookies()
	_, ok := m.Username(requestWithCookies(expired))
	testutil.AssertFalse(t, ok, "replayed cookie rejected")
}

// TestManager_TamperedCookie tests that a cookie signed with a different
// secret is not accepted
func TestManager_TamperedCookie(t *testing.T) {
	issuer := NewManager("one-secret", "admin_session", 0)
	verifier := NewManager("another-secret", "admin_session", 0)

	rec := httptest.NewRecorder()
	err := issuer.SignIn(rec, httptest.NewRequest(http.MethodPost, "/admin_login", nil), "alice")
	testutil.AssertNoError(t, err, "sign in")

	_, ok := verifier.Username(requestWithCookies(rec.Result().Cookies()))
	testutil.AssertFalse(t, ok, "foreign signature rejected")
}
