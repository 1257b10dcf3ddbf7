package dashboard

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dalemusser/treehub/internal/app/system/aggregate"
	"github.com/dalemusser/treehub/internal/app/system/auth"
	"github.com/dalemusser/treehub/internal/app/system/live"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// SpeciesSuggestions feeds the create form's datalist. Free text is still
// accepted; these are only suggestions.
var SpeciesSuggestions = []string{
	"Oak",
	"Pine",
	"Maple",
	"Birch",
	"Cedar",
	"Baobab",
	"Olive",
	"Cherry Blossom",
}

// MapDefaults positions the map before the user interacts with it.
type MapDefaults struct {
	Lat  float64
	Lng  float64
	Zoom int
}

// Handler serves the signed-in dashboard page.
type Handler struct {
	Feed *live.Feed
	Log  *zap.Logger
	Map  MapDefaults
}

func NewHandler(feed *live.Feed, mapDefaults MapDefaults, logger *zap.Logger) *Handler {
	return &Handler{
		Feed: feed,
		Log:  logger,
		Map:  mapDefaults,
	}
}

// errorMessages maps ?error= codes set by the mutation handlers to banner text.
var errorMessages = map[string]string{
	"save_failed":   "Your tree could not be saved. The dashboard may not reflect it.",
	"delete_failed": "The record could not be deleted.",
}

type pageData struct {
	Title     string
	UserName  string
	View      aggregate.View
	Species   []string
	Map       MapDefaults
	Error     string
	Bootstrap template.JS // JSON snapshot embedded for first paint, before SSE connects
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDashboard renders the dashboard from the feed's current snapshot.
// Everything after first paint arrives over /plantings/events.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		// RequireSignedIn fronts this route; belt and braces.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	current := h.Feed.Current()
	bootstrap, err := json.Marshal(current)
	if err != nil {
		h.Log.Error("marshal bootstrap snapshot", zap.Error(err))
		bootstrap = []byte("null")
	}

	data := pageData{
		Title:     "Community Tree Tracker",
		UserName:  u.Name,
		View:      current.View,
		Species:   SpeciesSuggestions,
		Map:       h.Map,
		Error:     errorMessages[query.Get(r, "error")],
		Bootstrap: template.JS(bootstrap),
	}

	templates.Render(w, r, "dashboard", data)
}
