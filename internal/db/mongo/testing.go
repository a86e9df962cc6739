package mongo

import "go.mongodb.org/mongo-driver/mongo"

// NewStoreForTest creates a Store around an existing client (test-only).
func NewStoreForTest(c *mongo.Client, database string) *Store {
	return &Store{client: c, database: database}
}
