package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/treehub/internal/app/features/home"
	"github.com/dalemusser/treehub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeRoot_SignedInRedirectsToDashboard(t *testing.T) {
	h := home.NewHandler(true, zap.NewNop())

	req := testutil.SignedInRequest(t, "GET", "/", nil, "Alice")
	rec := httptest.NewRecorder()
	testutil.ServeWithAuth(http.HandlerFunc(h.ServeRoot), rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location: got %q, want %q", loc, "/dashboard")
	}
}
