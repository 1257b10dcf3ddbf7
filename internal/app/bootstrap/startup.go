// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/treehub/internal/app/resources"
	"github.com/dalemusser/treehub/internal/app/store/plantings"
	"github.com/dalemusser/treehub/internal/app/system/live"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// feed is the in-process snapshot broadcaster shared by the dashboard and
// planting handlers. It is created in Startup and fed by the watcher until
// Shutdown cancels it.
var (
	feed        *live.Feed
	watcherStop context.CancelFunc
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates), warm caches, or perform
// any app-wide setup that depends on config and backends.
//
// TreeHub also starts the live watcher here: a background goroutine that
// follows the plantings collection (change stream when available, polling
// otherwise) and pushes fresh snapshots into the feed.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	feed = live.NewFeed()

	store := plantings.New(deps.TreeHubMongoDatabase)
	watcher := live.NewWatcher(store, feed, appCfg.LivePollInterval, logger)

	// The watcher outlives the startup hook, so it gets its own context
	// cancelled in Shutdown rather than the startup-scoped one.
	watchCtx, cancel := context.WithCancel(context.Background())
	watcherStop = cancel
	go func() {
		if err := watcher.Run(watchCtx); err != nil && watchCtx.Err() == nil {
			logger.Error("live watcher stopped", zap.Error(err))
		}
	}()

	return nil
}
