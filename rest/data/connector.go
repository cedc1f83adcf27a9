package data

import (
	"context"

	"github.com/docbridge-io/docbridge/db"
	"go.mongodb.org/mongo-driver/bson"
)

// Connector abstracts the document operations that the REST handlers
// forward to the backing store. DBConnector is backed by the live
// database; MockConnector is an in-memory double for tests.
type Connector interface {
	InsertOne(ctx context.Context, database, collection string, document any) (*db.InsertOneResult, error)
	InsertMany(ctx context.Context, database, collection string, documents []any) (*db.InsertManyResult, error)
	Find(ctx context.Context, database, collection string, filter any, skip, limit int64) ([]bson.M, error)
	Aggregate(ctx context.Context, database, collection string, pipeline []any) ([]bson.M, error)
	UpdateOne(ctx context.Context, database, collection string, filter, update any) (*db.UpdateResult, error)
	UpdateMany(ctx context.Context, database, collection string, filter, update any) (*db.UpdateResult, error)
	DeleteOne(ctx context.Context, database, collection string, filter any) (*db.DeleteResult, error)
	DeleteMany(ctx context.Context, database, collection string, filter any) (*db.DeleteResult, error)
	Ping(ctx context.Context) error
}
