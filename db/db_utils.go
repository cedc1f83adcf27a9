package db

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InsertOneResult reports the identifier assigned to a single inserted
// document, rendered as a string.
type InsertOneResult struct {
	InsertedID string
}

// InsertManyResult reports the identifiers assigned to a batch insert,
// in input order, rendered as strings.
type InsertManyResult struct {
	InsertedIDs []string
}

// UpdateResult reports the outcome of an update operation. UpsertedID
// carries the database-native identifier of an upserted document, or
// nil when nothing was upserted.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedID    any
}

// DeleteResult reports the number of documents removed.
type DeleteResult struct {
	DeletedCount int64
}

// Resolve maps a database and collection name to a handle scoped within
// the given client. Resolution is a cheap lookup; name legality is only
// checked by the database at operation time.
func Resolve(client *mongo.Client, database, collection string) *mongo.Collection {
	return client.Database(database).Collection(collection)
}

// InsertOne inserts the document into the specified collection.
func InsertOne(ctx context.Context, client *mongo.Client, database, collection string, document any) (*InsertOneResult, error) {
	res, err := Resolve(client, database, collection).InsertOne(ctx, document)
	if err != nil {
		return nil, errors.Wrap(err, "inserting document")
	}

	return &InsertOneResult{InsertedID: RenderID(res.InsertedID)}, nil
}

// InsertMany inserts the documents into the specified collection as an
// ordered batch; either every identifier is returned or the whole call
// fails.
func InsertMany(ctx context.Context, client *mongo.Client, database, collection string, documents []any) (*InsertManyResult, error) {
	res, err := Resolve(client, database, collection).InsertMany(ctx, documents)
	if err != nil {
		return nil, errors.Wrap(err, "inserting documents")
	}

	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, RenderID(id))
	}

	return &InsertManyResult{InsertedIDs: ids}, nil
}

// Find returns the documents matching the filter, applying skip before
// limit. A zero or negative limit means unbounded. Native identifiers
// in the results are rendered as strings.
func Find(ctx context.Context, client *mongo.Client, database, collection string, filter any, skip, limit int64) ([]bson.M, error) {
	opts := options.Find().SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := Resolve(client, database, collection).Find(ctx, orMatchAll(filter), opts)
	if err != nil {
		return nil, errors.Wrap(err, "finding documents")
	}

	return collectDocuments(ctx, cursor)
}

// Aggregate runs the pipeline against the specified collection. The
// pipeline is forwarded to the database unvalidated.
func Aggregate(ctx context.Context, client *mongo.Client, database, collection string, pipeline any) ([]bson.M, error) {
	cursor, err := Resolve(client, database, collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "running aggregation pipeline")
	}

	return collectDocuments(ctx, cursor)
}

// UpdateOne updates the first document matching the filter.
func UpdateOne(ctx context.Context, client *mongo.Client, database, collection string, filter, update any) (*UpdateResult, error) {
	res, err := Resolve(client, database, collection).UpdateOne(ctx, orMatchAll(filter), update)
	if err != nil {
		return nil, errors.Wrap(err, "updating document")
	}

	return &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// UpdateMany updates all documents matching the filter.
func UpdateMany(ctx context.Context, client *mongo.Client, database, collection string, filter, update any) (*UpdateResult, error) {
	res, err := Resolve(client, database, collection).UpdateMany(ctx, orMatchAll(filter), update)
	if err != nil {
		return nil, errors.Wrap(err, "updating documents")
	}

	return &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// DeleteOne removes the first document matching the filter.
func DeleteOne(ctx context.Context, client *mongo.Client, database, collection string, filter any) (*DeleteResult, error) {
	res, err := Resolve(client, database, collection).DeleteOne(ctx, orMatchAll(filter))
	if err != nil {
		return nil, errors.Wrap(err, "deleting document")
	}

	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// DeleteMany removes all documents matching the filter.
func DeleteMany(ctx context.Context, client *mongo.Client, database, collection string, filter any) (*DeleteResult, error) {
	res, err := Resolve(client, database, collection).DeleteMany(ctx, orMatchAll(filter))
	if err != nil {
		return nil, errors.Wrap(err, "deleting documents")
	}

	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// Ping issues a lightweight liveness probe against the client.
func Ping(ctx context.Context, client *mongo.Client) error {
	return errors.Wrap(client.Ping(ctx, readpref.Primary()), "pinging database")
}

// orMatchAll substitutes the match-all filter for an absent one.
func orMatchAll(filter any) any {
	if filter == nil {
		return bson.M{}
	}
	return filter
}

func collectDocuments(ctx context.Context, cursor *mongo.Cursor) ([]bson.M, error) {
	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "reading cursor")
	}

	for _, doc := range docs {
		RenderDocumentID(doc)
	}

	return docs, nil
}
