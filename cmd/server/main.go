// Command server runs the incident reporting API.
//
// Startup sequence: load .env (best-effort), read configuration from the
// environment, configure global logging, set up tracing, open and migrate the
// database, seed the built-in scenarios, then serve HTTP until SIGINT/SIGTERM
// triggers a graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anawat34115/police-care-backend/docs"
	"github.com/anawat34115/police-care-backend/internal/config"
	httpapi "github.com/anawat34115/police-care-backend/internal/http"
	"github.com/anawat34115/police-care-backend/internal/observability"
	"github.com/anawat34115/police-care-backend/internal/repo"
	"github.com/anawat34115/police-care-backend/internal/sysutil"
)

// version is stamped into traces and the swagger spec. Overridable at build
// time via -ldflags "-X main.version=...".
var version = "1.0.0"

// @title        Police Care Reporting API
// @version      1.0
// @description  REST API for the multi-step incident reporting wizard:
// @description  scenario and question lookup, interview telemetry, and
// @description  transactional report submission with an audit trail.
//
// @BasePath     /api
func main() {
	// Local development convenience; absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// APP_VERSION (set by the container build) wins over the compiled-in default.
	version = sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("open database failed")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("db tracing setup failed")
		}
	}
	if cfg.SeedData {
		if err := repo.Seed(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
	}

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	docs.SwaggerInfo.Version = version
	httpapi.RegisterRoutes(engine, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}

// setupLogging configures the global zerolog logger from config: level,
// timestamp format, and an optional human-friendly console writer for dev.
func setupLogging(cfg config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
