// internal/app/system/live/watcher.go
package live

import (
	"context"
	"time"

	"github.com/dalemusser/treehub/internal/app/store/plantings"
	"github.com/dalemusser/treehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// reconnectDelay paces change-stream reopen attempts after an error.
const reconnectDelay = 5 * time.Second

// Watcher keeps a Feed current with the plantings collection. It prefers a
// MongoDB change stream (push); when the deployment cannot serve one, for
// example a standalone mongod without an oplog, it polls instead.
type Watcher struct {
	Store        *plantings.Store
	Feed         *Feed
	Log          *zap.Logger
	PollInterval time.Duration
}

// NewWatcher constructs a Watcher. pollInterval is the fallback cadence used
// when change streams are unavailable.
func NewWatcher(store *plantings.Store, feed *Feed, pollInterval time.Duration, logger *zap.Logger) *Watcher {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	return &Watcher{
		Store:        store,
		Feed:         feed,
		Log:          logger,
		PollInterval: pollInterval,
	}
}

// Run loads the initial snapshot and then delivers a fresh one to the Feed on
// every collection change until ctx is canceled. It always returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.refresh(ctx); err != nil {
		w.Log.Error("initial snapshot load failed", zap.Error(err))
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		cs, err := w.Store.Watch(ctx)
		if err != nil {
			w.Log.Warn("change stream unavailable, polling instead",
				zap.Error(err),
				zap.Duration("interval", w.PollInterval))
			if err := w.poll(ctx); err != nil {
				return err
			}
			continue
		}

		w.Log.Info("watching plantings change stream")
		for cs.Next(ctx) {
			// The event itself is discarded: subscribers get full
			// snapshots, so a re-read is the whole update.
			if err := w.refresh(ctx); err != nil {
				w.Log.Error("snapshot refresh failed", zap.Error(err))
			}
		}
		csErr := cs.Err()
		_ = cs.Close(context.Background())

		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.Log.Warn("change stream closed, reconnecting", zap.Error(csErr))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

// poll re-reads the snapshot on a fixed interval until ctx is canceled.
func (w *Watcher) poll(ctx context.Context) error {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.refresh(ctx); err != nil {
				w.Log.Error("poll refresh failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	trees, err := w.Store.List(ctx)
	if err != nil {
		return err
	}
	w.Feed.Set(trees)
	return nil
}
