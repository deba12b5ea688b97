package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/audit"
	auditpg "github.com/leagueops/league-management/internal/audit/postgres"
	"github.com/leagueops/league-management/internal/identity"
	"github.com/leagueops/league-management/internal/match"
	matchpg "github.com/leagueops/league-management/internal/match/postgres"
	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/player"
	playerpg "github.com/leagueops/league-management/internal/player/postgres"
	"github.com/leagueops/league-management/internal/rpc"
	"github.com/leagueops/league-management/internal/stats"
	statspg "github.com/leagueops/league-management/internal/stats/postgres"
	"github.com/leagueops/league-management/internal/team"
	teampg "github.com/leagueops/league-management/internal/team/postgres"
	"github.com/leagueops/league-management/internal/transport/rest"
	"github.com/leagueops/league-management/internal/user"
	userpg "github.com/leagueops/league-management/internal/user/postgres"
	"github.com/leagueops/league-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle RPC requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Registry *rpc.Registry
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Registry, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr, "procedures", len(deps.Registry.Paths()))

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.L()

	db, gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := userpg.NewRepository(gormDB)
	directory := user.NewDirectory(userRepo, lg)

	auditLog := audit.NewLog(auditpg.NewRepository(gormDB))
	discord := identity.NewDiscordClient(config.Discord)

	authorizer := rpc.NewAuthorizer(discord, directory, auditLog, lg)
	registry := rpc.NewRegistry(authorizer, lg)

	teamSvc := team.NewService(teampg.NewRepository(gormDB))
	playerSvc := player.NewService(playerpg.NewRepository(gormDB))
	matchSvc := match.NewService(matchpg.NewRepository(gormDB))
	statsSvc := stats.NewService(statspg.NewRepository(gormDB))

	rest.RegisterAuthProcedures(registry, discord)
	rpc.RegisterPermissionProcedures(registry)
	user.RegisterProcedures(registry, directory)
	audit.RegisterProcedures(registry, auditLog)
	team.RegisterProcedures(registry, teamSvc)
	player.RegisterProcedures(registry, playerSvc)
	match.RegisterProcedures(registry, matchSvc)
	stats.RegisterProcedures(registry, statsSvc)

	ctx, cancel := internal.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := permission.VerifyStored(ctx, userRepo, lg); err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		Router:   chi.NewRouter(),
		Registry: registry,
	}, nil
}

// initDB opens the pgx-backed pool and a gorm session sharing it.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, *gorm.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: dbConn.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	return dbConn, gormDB, nil
}
