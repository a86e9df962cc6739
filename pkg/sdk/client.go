package vizdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vizdata/internal/db"
	dbMongo "github.com/kailas-cloud/vizdata/internal/db/mongo"
	dbRedis "github.com/kailas-cloud/vizdata/internal/db/redis"
	documentrepo "github.com/kailas-cloud/vizdata/internal/repository/document"
	documentuc "github.com/kailas-cloud/vizdata/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vizdata/internal/usecase/health"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCollection       = "data_collection"
	defaultKeyPrefix        = "vizdata:"
)

// Client is the vizdata SDK entry point.
type Client struct {
	store     db.Store
	docSvc    documentUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and waits until the store answers.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		collection:       defaultCollection,
		keyPrefix:        defaultKeyPrefix,
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("vizdata: database required (use WithMongo, WithValkey or WithRedis)")
	}

	store, err := createStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("vizdata: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func createStore(ctx context.Context, cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "mongo":
		s, err := dbMongo.NewStore(ctx, dbMongo.Config{URI: cfg.uri, Database: cfg.database})
		if err != nil {
			return nil, fmt.Errorf("vizdata: create mongo store: %w", err)
		}
		return s, nil
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.addrs,
			Password:  cfg.password,
			KeyPrefix: cfg.keyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("vizdata: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("vizdata: driver %q: %w", cfg.driver, db.ErrUnknownDriver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	repo := documentrepo.New(store, cfg.collection)
	return &Client{
		store:     store,
		docSvc:    documentuc.New(repo, zap.NewNop()),
		healthSvc: healthuc.New(store),
		obs:       obs,
	}
}

// Close releases the underlying connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}
