package home

import (
	"net/http"

	"github.com/dalemusser/treehub/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		GoogleEnabled: googleEnabled,
	}
}

// errorMessages maps ?error= codes set by the auth flow to user-facing text.
var errorMessages = map[string]string{
	"google_denied":         "Sign-in was cancelled.",
	"google_not_configured": "Google sign-in is not configured on this server.",
	"invalid_state":         "Sign-in session expired; please try again.",
	"invalid_code":          "Sign-in could not be completed; please try again.",
	"token_exchange":        "Sign-in could not be completed; please try again.",
	"user_info":             "Sign-in could not be completed; please try again.",
	"session":               "Sign-in could not be completed; please try again.",
	"internal":              "Something went wrong; please try again.",
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders the signed-out landing page with the single sign-in
// action. Signed-in users go straight to the dashboard.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := struct {
		Title         string
		GoogleEnabled bool
		Error         string
		ReturnURL     string
	}{
		Title:         "Community Tree Tracker",
		GoogleEnabled: h.GoogleEnabled,
		Error:         errorMessages[query.Get(r, "error")],
		ReturnURL:     query.Get(r, "return"),
	}

	templates.Render(w, r, "home", data)
}
