// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/treehub/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeLogout handles GET /logout. The session is cleared even if decoding
// the existing cookie fails; either way the user ends up signed out at /.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
