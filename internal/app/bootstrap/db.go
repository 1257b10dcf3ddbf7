// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/treehub/internal/app/store/oauthstate"
	"github.com/dalemusser/treehub/internal/app/store/plantings"
	"github.com/dalemusser/treehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by every store.
// The connection is verified with a ping so misconfiguration fails
// startup instead of surfacing on the first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		_ = client.Disconnect(ctx)
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		TreeHubMongoClient:   client,
		TreeHubMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the stores rely on. All index builds
// are idempotent, so this is safe to run on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := plantings.New(deps.TreeHubMongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("planting index setup failed", zap.Error(err))
		return err
	}
	if err := oauthstate.New(deps.TreeHubMongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("oauth state index setup failed", zap.Error(err))
		return err
	}
	return nil
}
