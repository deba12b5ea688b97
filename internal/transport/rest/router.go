package rest

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/leagueops/league-management/internal/rpc"
	"github.com/leagueops/league-management/internal/transport/middleware"
)

// RegisterAllRoutes applies the global middleware stack and mounts the
// health endpoints plus the RPC surface.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, registry *rpc.Registry, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	rpc.NewHTTPHandler(registry).Mount(router)
}
