// internal/app/features/plantings/chart.go
package plantings

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/treehub/internal/app/system/chartimg"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /plantings/chart.png – leaderboard bar chart                            |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeChart renders the current leaderboard as a PNG. The image is derived
// from the same feed snapshot as everything else, so it always matches the
// cards and the list; the browser re-fetches it on each snapshot event.
func (h *Handler) ServeChart(w http.ResponseWriter, r *http.Request) {
	img, err := chartimg.Leaderboard(h.Feed.Current().View.Leaderboard)
	if err != nil {
		h.Log.Error("render leaderboard chart", zap.Error(err))
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	_, _ = w.Write(img)
}
