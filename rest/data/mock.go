package data

import (
	"context"
	"reflect"
	"sync"

	"github.com/docbridge-io/docbridge/db"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockConnector is an in-memory Connector for testing the REST layer
// without a live database. It keeps documents in insertion order,
// matches filters by top-level field equality, and applies $set
// updates; this mirrors the subset of database behavior the handler
// tests depend on.
type MockConnector struct {
	mu   sync.Mutex
	data map[string][]bson.M

	// PingErr, when set, is returned by Ping to simulate an
	// unreachable database.
	PingErr error

	// FailOps, when set, makes every document operation fail with
	// this error.
	FailOps error
}

func NewMockConnector() *MockConnector {
	return &MockConnector{data: map[string][]bson.M{}}
}

func namespace(database, collection string) string {
	return database + "." + collection
}

// asDocument coerces the schema-less payloads the handlers pass
// through (decoded JSON maps or bson.M) into a bson.M.
func asDocument(value any) (bson.M, error) {
	switch v := value.(type) {
	case bson.M:
		return v, nil
	case map[string]any:
		return bson.M(v), nil
	default:
		return nil, errors.Errorf("expected a document, got %T", value)
	}
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		if !reflect.DeepEqual(doc[key], want) {
			return false
		}
	}
	return true
}

func (mc *MockConnector) InsertOne(ctx context.Context, database, collection string, document any) (*db.InsertOneResult, error) {
	if mc.FailOps != nil {
		return nil, mc.FailOps
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	id, err := mc.insert(database, collection, document)
	if err != nil {
		return nil, err
	}

	return &db.InsertOneResult{InsertedID: db.RenderID(id)}, nil
}

func (mc *MockConnector) InsertMany(ctx context.Context, database, collection string, documents []any) (*db.InsertManyResult, error) {
	if mc.FailOps != nil {
		return nil, mc.FailOps
	}
	if len(documents) == 0 {
		return nil, errors.New("must provide at least one document to insert")
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	ids := make([]string, 0, len(documents))
	for _, document := range documents {
		id, err := mc.insert(database, collection, document)
		if err != nil {
			return nil, err
		}
		ids = append(ids, db.RenderID(id))
	}

	return &db.InsertManyResult{InsertedIDs: ids}, nil
}

func (mc *MockConnector) insert(database, collection string, document any) (any, error) {
	doc, err := asDocument(document)
	if err != nil {
		return nil, err
	}

	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}

	ns := namespace(database, collection)
	mc.data[ns] = append(mc.data[ns], stored)

	return stored["_id"], nil
}

func (mc *MockConnector) Find(ctx context.Context, database, collection string, filter any, skip, limit int64) ([]bson.M, error) {
	if mc.FailOps != nil {
		return nil, mc.FailOps
	}

	if skip < 0 {
		return nil, errors.New("skip must be non-negative")
	}

	f, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	matched := []bson.M{}
	for _, doc := range mc.data[namespace(database, collection)] {
		if matches(doc, f) {
			matched = append(matched, doc)
		}
	}

	if skip > int64(len(matched)) {
		skip = int64(len(matched))
	}
	matched = matched[skip:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}

	out := make([]bson.M, 0, len(matched))
	for _, doc := range matched {
		out = append(out, renderedCopy(doc))
	}

	return out, nil
}

func (mc *MockConnector) Aggregate(ctx context.Context, database, collection string, pipeline []any) ([]bson.M, error) {
	if mc.FailOps != nil {
		return nil, mc.FailOps
	}

	mc.mu.Lock()
	docs := append([]bson.M{}, mc.data[namespace(database, collection)]...)
	mc.mu.Unlock()

	for _, stage := range pipeline {
		s, err := asDocument(stage)
		if err != nil {
			return nil, err
		}

		if match, ok := s["$match"]; ok {
			f, err := asDocument(match)
			if err != nil {
				return nil, err
			}
			kept := []bson.M{}
			for _, doc := range docs {
				if matches(doc, f) {
					kept = append(kept, doc)
				}
			}
			docs = kept
			continue
		}
		if limit, ok := s["$limit"]; ok {
			n, ok := toInt64(limit)
			if !ok {
				return nil, errors.Errorf("invalid $limit value %v", limit)
			}
			if n < int64(len(docs)) {
				docs = docs[:n]
			}
			continue
		}

		return nil, errors.Errorf("unsupported pipeline stage %v", s)
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, renderedCopy(doc))
	}

	return out, nil
}

func (mc *MockConnector) UpdateOne(ctx context.Context, database, collection string, filter, update any) (*db.UpdateResult, error) {
	return mc.update(database, collection, filter, update, true)
}

func (mc *MockConnector) UpdateMany(ctx context.Context, database, collection string, filter, update any) (*db.UpdateResult, error) {
	return mc.update(database, collection, filter, update, false)
}

func (mc *MockConnector) update(database, collection string, filter, update any, firstOnly bool) (*db.UpdateResult, error) {
	if mc.FailOps != nil {
		return nil, mc.FailOps
	}

	f, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}
	u, err := asDocument(update)
	if err != nil {
		return nil, err
	}
	set, ok := u["$set"]
	if !ok {
		return nil, errors.New("mock connector only supports $set updates")
	}
	fields, err := asDocument(set)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	res := &db.UpdateResult{}
	for _, doc := range mc.data[namespace(database, collection)] {
		if !matches(doc, f) {
			continue
		}
		res.MatchedCount++

		changed := false
		for k, v := range fields {
			if !reflect.DeepEqual(doc[k], v) {
				doc[k] = v
				changed = true
			}
		}
		if changed {
			res.ModifiedCount++
		}

		if firstOnly {
			break
		}
	}

	return res, nil
}

func (mc *MockConnector) DeleteOne(ctx context.Context, database, collection string, filter any) (*db.DeleteResult, error) {
	return mc.delete(database, collection, filter, true)
}

func (mc *MockConnector) DeleteMany(ctx context.Context, database, collection string, filter any) (*db.DeleteResult, error) {
	return mc.delete(database, collection, filter, false)
}

func (mc *MockConnector) delete(database, collection string, filter any, firstOnly bool) (*db.DeleteResult, error) {
	if mc.FailOps != nil {
		return nil, mc.FailOps
	}

	f, err := filterDocument(filter)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	ns := namespace(database, collection)
	kept := []bson.M{}
	res := &db.DeleteResult{}
	for _, doc := range mc.data[ns] {
		if matches(doc, f) && (!firstOnly || res.DeletedCount == 0) {
			res.DeletedCount++
			continue
		}
		kept = append(kept, doc)
	}
	mc.data[ns] = kept

	return res, nil
}

func (mc *MockConnector) Ping(ctx context.Context) error {
	return mc.PingErr
}

func filterDocument(filter any) (bson.M, error) {
	if filter == nil {
		return bson.M{}, nil
	}
	return asDocument(filter)
}

func renderedCopy(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	db.RenderDocumentID(out)
	return out
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
