// internal/app/features/plantings/handler.go
package plantings

import (
	"context"
	"net/http"
	"strconv"
	"time"

	plantingstore "github.com/dalemusser/treehub/internal/app/store/plantings"
	"github.com/dalemusser/treehub/internal/app/system/auth"
	"github.com/dalemusser/treehub/internal/app/system/draft"
	"github.com/dalemusser/treehub/internal/app/system/live"
	"github.com/dalemusser/treehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves planting mutations and the live endpoints.
type Handler struct {
	Store *plantingstore.Store
	Feed  *live.Feed
	Log   *zap.Logger

	sanitize *bluemonday.Policy
}

func NewHandler(store *plantingstore.Store, feed *live.Feed, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Feed:  feed,
		Log:   logger,
		// Species is free text that gets re-rendered to every client.
		sanitize: bluemonday.StrictPolicy(),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /plantings – submit the draft                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCreate handles the guarded submit. An incomplete draft (no map
// coordinate picked, or one outside valid ranges) is a quiet no-op back to
// the dashboard: the store is never called. A complete draft is written and
// the user is redirected to a reset form immediately; the dashboard itself
// updates when the new snapshot arrives over the feed.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		// RequireSignedIn fronts this route; belt and braces.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	d := draft.New()
	d.Species = h.sanitize.Sanitize(r.PostFormValue("species"))
	d.SetCount(r.PostFormValue("count"))
	if lat, lng, ok := parseCoordinate(r.PostFormValue("lat"), r.PostFormValue("lng")); ok {
		d.SetCoordinate(lat, lng)
	}

	if !d.Complete() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	rec := d.Record(u.Name, time.Now())

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Store.Create(ctx, rec); err != nil {
		h.Log.Error("create planting failed",
			zap.Error(err),
			zap.String("user", u.Name),
			zap.String("species", rec.Species))
		http.Redirect(w, r, "/dashboard?error=save_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /plantings/{id}/delete                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDelete removes a record by id. Any signed-in user may delete any
// record; an id that no longer exists upstream deletes nothing and still
// redirects cleanly.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("delete planting failed", zap.Error(err), zap.String("id", id.Hex()))
		http.Redirect(w, r, "/dashboard?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// parseCoordinate parses the hidden lat/lng form fields. Absent or malformed
// values mean no coordinate was picked.
func parseCoordinate(latRaw, lngRaw string) (lat, lng float64, ok bool) {
	if latRaw == "" || lngRaw == "" {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
