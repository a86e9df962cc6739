package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/vizdata/internal/db"
)

// FindAll scans the whole collection with the identifier projected out.
// Results follow the server's natural order.
func (s *Store) FindAll(ctx context.Context, collection string) ([]db.Record, error) {
	coll := s.client.Database(s.database).Collection(collection)

	opts := options.Find().SetProjection(bson.D{{Key: db.IdentifierField, Value: 0}})
	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, classify(db.OpFind, err)
	}

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, classify(db.OpFind, err)
	}

	records := make([]db.Record, 0, len(raw))
	for _, doc := range raw {
		rec, err := normalizeDocument(doc)
		if err != nil {
			return nil, &db.Error{Op: db.OpDecode, Err: db.ErrCorruptDocument, Cause: err}
		}
		delete(rec, db.IdentifierField)
		records = append(records, rec)
	}
	return records, nil
}
