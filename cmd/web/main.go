package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-collector/internal/adapters/auth/session"
	"cat-collector/internal/adapters/storage/postgres"
	"cat-collector/internal/adapters/storage/sqlite"
	"cat-collector/internal/adapters/storage/sqlstore"
	"cat-collector/internal/config"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/metrics"
	"cat-collector/internal/router"
)

// @title Cat Collector
// @version 1.0
// @description Páginas HTML de Cat Collector. Las rutas de /cats y /toys requieren sesión.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, isUnique, err := openStorage(ctx, cfg)
	if err != nil {
		log.Error("storage error", map[string]any{"driver": string(cfg.DBDriver), "error": err})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	sessions, err := session.NewManager(session.Config{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})
	if err != nil {
		log.Error("session error", map[string]any{"error": err})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		Logger:         log,
		Metrics:        metrics.New(),
		Sessions:       sessions,
		DebugAuth:      cfg.DebugAuth,
		DB:             db,
		IsUnique:       isUnique,
		AuthRatePerMin: cfg.AuthRatePerMin,
		AuthRateBurst:  cfg.AuthRateBurst,
		Done:           ctx.Done(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", map[string]any{"error": err})
		}
	}()

	log.Info("starting server", map[string]any{
		"addr":       cfg.Addr,
		"driver":     string(cfg.DBDriver),
		"debug_auth": cfg.DebugAuth,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openStorage devuelve db=nil para el driver en memoria.
func openStorage(ctx context.Context, cfg *config.Config) (*sql.DB, sqlstore.UniqueViolation, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlstore.Migrate(ctx, db, postgres.Schema); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return db, postgres.IsUniqueViolation, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, sqlite.IsUniqueViolation, nil
	default:
		return nil, nil, nil
	}
}
