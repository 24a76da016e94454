// Package server assembles the application: config, store, middleware
// stack and routes, then runs the HTTP listener.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shashiranjanraj/chronoluxe/app/routes"
	"github.com/shashiranjanraj/chronoluxe/app/store"
	"github.com/shashiranjanraj/chronoluxe/config"
	"github.com/shashiranjanraj/chronoluxe/pkg/logger"
	"github.com/shashiranjanraj/chronoluxe/pkg/metrics"
	"github.com/shashiranjanraj/chronoluxe/pkg/middleware"
	"github.com/shashiranjanraj/chronoluxe/pkg/reqid"
	"github.com/shashiranjanraj/chronoluxe/pkg/router"
)

// Handler builds the full HTTP handler over the given store. Exposed
// separately from Start so tests can drive the API with httptest.
func Handler(st *store.Store) http.Handler {
	r := router.New()

	// Outermost first: metrics see every request including panics that
	// Recovery turns into 500s.
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(config.RateLimitMax(), config.RateLimitWindow()),
	)

	routes.Register(r, st)
	return r.Handler()
}

func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	logger.Setup()

	st := store.New()
	if config.SeedCatalog() {
		seeded := store.SeedCatalog(st)
		logger.Info("catalog seeded", slog.Int("products", seeded))
	}

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(st),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("chronoluxe listening", slog.String("addr", addr), slog.String("env", config.AppEnv()))
	return srv.ListenAndServe()
}
