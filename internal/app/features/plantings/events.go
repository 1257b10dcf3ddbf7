// internal/app/features/plantings/events.go
package plantings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// heartbeatInterval keeps intermediaries from closing quiet streams.
const heartbeatInterval = 25 * time.Second

/*─────────────────────────────────────────────────────────────────────────────*
| GET /plantings/events – SSE stream of full snapshots                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeEvents streams the live feed to one dashboard. The current snapshot
// is sent immediately, then every subsequent broadcast, each as a complete
// "snapshot" event. The subscription is torn down when the client goes away.
func (h *Handler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates, cancel := h.Feed.Subscribe()
	defer cancel()

	if err := writeSnapshotEvent(w, h.Feed.Current()); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case u := <-updates:
			if err := writeSnapshotEvent(w, u); err != nil {
				return
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeSnapshotEvent(w http.ResponseWriter, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
	return err
}
