package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/kailas-cloud/vizdata/internal/db"
)

func TestFindAll_ReturnsDocuments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("two documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "visualization_db.data_collection", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "a"}},
			bson.D{{Key: "name", Value: "b"}, {Key: "intensity", Value: int32(4)}},
		))

		s := NewStoreForTest(mt.Client, mt.DB.Name())
		recs, err := s.FindAll(context.Background(), mt.Coll.Name())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 {
			mt.Fatalf("expected 2 records, got %d", len(recs))
		}
		if recs[0]["name"] != "a" || recs[1]["name"] != "b" {
			mt.Errorf("unexpected records: %v", recs)
		}
	})
}

func TestFindAll_StripsIdentifier(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("id leaked by server", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "visualization_db.data_collection", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int32(1)}, {Key: "name", Value: "a"}},
		))

		s := NewStoreForTest(mt.Client, mt.DB.Name())
		recs, err := s.FindAll(context.Background(), mt.Coll.Name())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if _, ok := recs[0][db.IdentifierField]; ok {
			mt.Errorf("identifier field must be stripped, got %v", recs[0])
		}
	})
}

func TestFindAll_EmptyCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "visualization_db.data_collection", mtest.FirstBatch))

		s := NewStoreForTest(mt.Client, mt.DB.Name())
		recs, err := s.FindAll(context.Background(), mt.Coll.Name())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if recs == nil {
			mt.Fatal("expected non-nil empty slice")
		}
		if len(recs) != 0 {
			mt.Errorf("expected 0 records, got %d", len(recs))
		}
	})
}

func TestFindAll_CommandError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unauthorized", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		s := NewStoreForTest(mt.Client, mt.DB.Name())
		_, err := s.FindAll(context.Background(), mt.Coll.Name())
		if err == nil {
			mt.Fatal("expected error")
		}
		if errors.Is(err, db.ErrUnavailable) {
			mt.Errorf("command error must not be classified as unavailable: %v", err)
		}
		var dbErr *db.Error
		if !errors.As(err, &dbErr) || dbErr.Op != db.OpFind {
			mt.Errorf("expected *db.Error with op %s, got %v", db.OpFind, err)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("find: %w", context.DeadlineExceeded), true},
		{"client disconnected", mongo.ErrClientDisconnected, true},
		{"network label", mongo.CommandError{Code: 6, Labels: []string{"NetworkError"}}, true},
		{"plain command error", mongo.CommandError{Code: 2, Message: "bad value"}, false},
		{"other", errors.New("boom"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := classify(db.OpFind, tc.err)
			if got := errors.Is(err, db.ErrUnavailable); got != tc.unavailable {
				t.Errorf("unavailable = %v, want %v (err=%v)", got, tc.unavailable, err)
			}
			if !strings.Contains(err.Error(), tc.err.Error()) {
				t.Errorf("cause must be kept in the message: %v", err)
			}
		})
	}
}

func TestNewStore_MissingArguments(t *testing.T) {
	_, err := NewStore(context.Background(), Config{URI: "mongodb://localhost:27017"})
	if !errors.Is(err, db.ErrMissingArguments) {
		t.Fatalf("expected ErrMissingArguments, got %v", err)
	}
}
