package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vizdata/internal/config"
	"github.com/kailas-cloud/vizdata/internal/db"
	dbMongo "github.com/kailas-cloud/vizdata/internal/db/mongo"
	dbRedis "github.com/kailas-cloud/vizdata/internal/db/redis"
	logpkg "github.com/kailas-cloud/vizdata/internal/logger"
	"github.com/kailas-cloud/vizdata/internal/metrics"
	documentrepo "github.com/kailas-cloud/vizdata/internal/repository/document"
	chiTransport "github.com/kailas-cloud/vizdata/internal/transport/chi"
	documentuc "github.com/kailas-cloud/vizdata/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vizdata/internal/usecase/health"
	"github.com/kailas-cloud/vizdata/internal/version"
	"github.com/kailas-cloud/vizdata/internal/web"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vizdata server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("db_name", cfg.Database.Name),
		zap.String("collection", cfg.Database.Collection),
	)

	// Render the page before touching the database: a broken template is fatal.
	index, err := web.RenderIndex(web.IndexData{
		Title:      cfg.Page.Title,
		Version:    version.Version,
		DataScript: "/static/js/charts.js",
		Filters:    web.DefaultFilters,
	})
	if err != nil {
		logger.Fatal("Failed to render index page", zap.Error(err))
	}

	ctx := context.Background()
	store, err := newStore(ctx, cfg.Database, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	metrics.RegisterDocumentMetrics()
	recorder := metrics.Recorder{}

	docRepo := documentrepo.New(store, cfg.Database.Collection)
	docSvc := documentuc.New(docRepo, logger).WithRecorder(recorder)
	healthSvc := healthuc.New(store)

	server := chiTransport.NewServer(docSvc, healthSvc, index, web.Static(), logger).
		WithErrorRecorder(recorder)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore creates the database store for the configured driver.
func newStore(ctx context.Context, dbCfg config.DatabaseConfig, storage config.StorageConfig) (db.Store, error) {
	switch dbCfg.Driver {
	case config.DriverMongo:
		s, err := dbMongo.NewStore(ctx, dbMongo.Config{
			URI:            dbCfg.URI,
			Database:       dbCfg.Name,
			ConnectTimeout: time.Duration(dbCfg.ConnectTimeout) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("create mongo store: %w", err)
		}
		return s, nil
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     dbCfg.Addrs,
			Password:  dbCfg.Password,
			KeyPrefix: storage.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", dbCfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("driver %q: %w", dbCfg.Driver, db.ErrUnknownDriver)
	}
}
