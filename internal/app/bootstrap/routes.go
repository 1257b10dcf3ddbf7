// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authgooglefeature "github.com/dalemusser/treehub/internal/app/features/authgoogle"
	dashboardfeature "github.com/dalemusser/treehub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/treehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/treehub/internal/app/features/health"
	homefeature "github.com/dalemusser/treehub/internal/app/features/home"
	logoutfeature "github.com/dalemusser/treehub/internal/app/features/logout"
	plantingsfeature "github.com/dalemusser/treehub/internal/app/features/plantings"
	"github.com/dalemusser/treehub/internal/app/store/oauthstate"
	"github.com/dalemusser/treehub/internal/app/store/plantings"
	"github.com/dalemusser/treehub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	// Feature view packages register their template sets in init.
	_ "github.com/dalemusser/treehub/internal/app/features/dashboard/views"
	_ "github.com/dalemusser/treehub/internal/app/features/home/views"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// TreeHub initializes the session store and template engine, applies the
// session middleware, and mounts the landing page, Google sign-in, the
// dashboard, and the planting record endpoints.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	store := plantings.New(deps.TreeHubMongoDatabase)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.TreeHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page with the sign-in action
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""
	homeHandler := homefeature.NewHandler(googleEnabled, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Google OAuth sign-in and callback
	authHandler := authgooglefeature.NewHandler(
		oauthstate.New(deps.TreeHubMongoDatabase),
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.BaseURL,
		logger,
	)
	r.Mount("/auth/google", authgooglefeature.Routes(authHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	r.Get("/unauthorized", func(w http.ResponseWriter, r *http.Request) {
		errorsfeature.RenderUnauthorized(w, r, query.Get(r, "return"))
	})

	// Live dashboard
	dashboardHandler := dashboardfeature.NewHandler(feed, dashboardfeature.MapDefaults{
		Lat:  appCfg.MapLat,
		Lng:  appCfg.MapLng,
		Zoom: appCfg.MapZoom,
	}, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Planting records: create, delete, live events, chart
	plantingsHandler := plantingsfeature.NewHandler(store, feed, logger)
	r.Mount("/plantings", plantingsfeature.Routes(plantingsHandler))

	return r, nil
}
