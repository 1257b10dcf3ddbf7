// Package live fans full record snapshots out to connected dashboards.
//
// Feed is the in-process hub: the watcher pushes each new snapshot in with
// Set, and every SSE handler holds a subscription. Watcher owns the MongoDB
// change-stream loop that keeps the Feed current.
package live

import (
	"sync"

	"github.com/dalemusser/treehub/internal/app/system/aggregate"
	"github.com/dalemusser/treehub/internal/domain/models"
	"github.com/google/uuid"
)

// Update is one full snapshot plus the view derived from it. Subscribers
// always receive the complete state, never deltas, so they need no merge
// logic of their own.
type Update struct {
	Trees []models.Tree  `json:"trees"`
	View  aggregate.View `json:"view"`
}

// Feed is a snapshot broadcaster. The zero value is not usable; call NewFeed.
type Feed struct {
	mu     sync.RWMutex
	latest Update
	subs   map[string]chan Update
}

// NewFeed creates an empty feed whose current state is the empty snapshot.
func NewFeed() *Feed {
	return &Feed{
		latest: Update{Trees: []models.Tree{}, View: aggregate.Compute(nil)},
		subs:   make(map[string]chan Update),
	}
}

// Set recomputes the view for the given snapshot and broadcasts it. Snapshots
// must be pushed in arrival order; Set never blocks on a slow subscriber —
// each subscriber channel holds only the most recent update, so intermediate
// snapshots may be skipped but the final state never is.
func (f *Feed) Set(trees []models.Tree) {
	if trees == nil {
		trees = []models.Tree{}
	}
	u := Update{Trees: trees, View: aggregate.Compute(trees)}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = u
	for _, ch := range f.subs {
		// Replace a pending update rather than queueing behind it.
		select {
		case ch <- u:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- u:
			default:
			}
		}
	}
}

// Current returns the most recently set update.
func (f *Feed) Current() Update {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest
}

// Subscribe registers an observer. The returned channel carries every
// broadcast from now on; cancel removes the subscription and may be called
// any number of times. The current state is not replayed on the channel —
// read Current first, then range over updates.
func (f *Feed) Subscribe() (<-chan Update, func()) {
	id := uuid.NewString()
	ch := make(chan Update, 1)

	f.mu.Lock()
	f.subs[id] = ch
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
	return ch, cancel
}

// SubscriberCount reports how many subscriptions are active.
func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
