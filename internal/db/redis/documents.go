package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/vizdata/internal/db"
)

const scanCount = 100

// FindAll loads every document stored under the collection's key prefix.
// Keys are read in lexical order; keys removed between SCAN and GET are skipped.
// In cluster mode every known node is scanned.
func (s *Store) FindAll(ctx context.Context, collection string) ([]db.Record, error) {
	keys, err := s.scanNodes(ctx, s.prefix+collection+":*")
	if err != nil {
		return nil, err
	}

	records := make([]db.Record, 0, len(keys))
	if len(keys) == 0 {
		return records, nil
	}
	sort.Strings(keys)

	cmds := make([]rueidis.Completed, len(keys))
	for i, k := range keys {
		cmds[i] = s.b().Get().Key(k).Build()
	}

	for i, res := range s.client.DoMulti(ctx, cmds...) {
		raw, err := res.AsBytes()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, classify(db.OpGet, err)
		}

		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, &db.Error{
				Op:    db.OpDecode,
				Err:   db.ErrCorruptDocument,
				Cause: fmt.Errorf("key %s: %w", keys[i], err),
			}
		}
		delete(rec, db.IdentifierField)
		records = append(records, rec)
	}

	return records, nil
}

// decodeRecord parses one stored JSON object. Numbers stay json.Number so
// integers beyond 2^53 are written back unchanged.
func decodeRecord(raw []byte) (db.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var rec db.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("value is not a JSON object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON object")
	}
	return rec, nil
}

// scanNodes runs scan on every node of the client and merges the keys.
// Replicas may repeat a primary's keys, so duplicates are dropped.
func (s *Store) scanNodes(ctx context.Context, pattern string) ([]string, error) {
	nodes := s.client.Nodes()
	addrs := make([]string, 0, len(nodes))
	for addr := range nodes {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	seen := make(map[string]struct{})
	var keys []string
	for _, addr := range addrs {
		nodeKeys, err := s.scan(ctx, nodes[addr], pattern)
		if err != nil {
			return nil, err
		}
		for _, k := range nodeKeys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *Store) scan(ctx context.Context, node rueidis.Client, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := node.B().Scan().Cursor(cursor).Match(pattern).Count(scanCount).Build()
		res, err := node.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, classify(db.OpScan, err)
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
