package mongo

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// normalizeDocument converts a decoded BSON document into plain JSON-compatible values.
func normalizeDocument(doc bson.M) (map[string]any, error) {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, int32, int64, int:
		return t, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("non-finite number %v", t)
		}
		return t, nil
	case bson.M:
		return normalizeDocument(t)
	case map[string]any:
		return normalizeDocument(t)
	case bson.D:
		m := make(bson.M, len(t))
		for _, e := range t {
			m[e.Key] = e.Value
		}
		return normalizeDocument(m)
	case bson.A:
		return normalizeArray(t)
	case []any:
		return normalizeArray(t)
	case primitive.ObjectID:
		return t.Hex(), nil
	case primitive.DateTime:
		return formatTime(t.Time()), nil
	case time.Time:
		return formatTime(t), nil
	case primitive.Timestamp:
		return formatTime(time.Unix(int64(t.T), 0)), nil
	case primitive.Decimal128:
		return t.String(), nil
	case primitive.Binary:
		return t.Data, nil
	case primitive.Regex:
		return t.String(), nil
	case primitive.JavaScript:
		return string(t), nil
	case primitive.Symbol:
		return string(t), nil
	case primitive.Null, primitive.Undefined:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported bson type %T", v)
	}
}

func normalizeArray(a []any) ([]any, error) {
	out := make([]any, len(a))
	for i, v := range a {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = nv
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
