package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kailas-cloud/vizdata/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a MongoDB store.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Store implements db.Store on top of the official MongoDB driver.
// The underlying client pools connections and is safe for concurrent use.
type Store struct {
	client   *mongo.Client
	database string
}

// NewStore creates a MongoDB store. The driver connects lazily, so an
// unreachable server surfaces on the first Ping or FindAll.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" || cfg.Database == "" {
		return nil, fmt.Errorf("uri and database are required: %w", db.ErrMissingArguments)
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts = opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, &db.Error{Op: db.OpConnect, Err: err}
	}

	return &Store{client: client, database: cfg.Database}, nil
}

// Ping checks connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return classify(db.OpPing, err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

// WaitForReady polls Ping until the server responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, s, timeout)
}

// classify wraps a driver error, marking connectivity failures as db.ErrUnavailable.
func classify(op string, err error) error {
	if isUnavailable(err) {
		return &db.Error{Op: op, Err: db.ErrUnavailable, Cause: err}
	}
	return &db.Error{Op: op, Err: err}
}

func isUnavailable(err error) bool {
	return mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		db.IsTimeout(err)
}
