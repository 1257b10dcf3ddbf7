package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/treehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// InitTestSessions initializes the global session store with a fixed test
// key. Call once at the top of handler tests that exercise auth.
func InitTestSessions(t *testing.T) {
	t.Helper()
	err := auth.InitSessionStore("0123456789abcdef0123456789abcdef", "treehub-test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to init test session store: %v", err)
	}
}

// SignedInRequest builds a request carrying a valid session cookie for the
// given display name, and wraps the handler in LoadSessionUser so
// auth.CurrentUser resolves inside it.
func SignedInRequest(t *testing.T, method, target string, form url.Values, name string) *http.Request {
	t.Helper()
	InitTestSessions(t)

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rec := httptest.NewRecorder()
	if err := auth.SignIn(rec, httptest.NewRequest("GET", "/", nil), auth.SessionUser{Name: name, Email: name + "@test.com"}); err != nil {
		t.Fatalf("failed to sign in test user: %v", err)
	}
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// ServeWithAuth runs the handler behind the LoadSessionUser middleware,
// mirroring how the router mounts everything in production.
func ServeWithAuth(h http.Handler, w http.ResponseWriter, r *http.Request) {
	auth.LoadSessionUser(h).ServeHTTP(w, r)
}
