package data

import (
	"context"

	"github.com/docbridge-io/docbridge"
	"github.com/docbridge-io/docbridge/db"
	"go.mongodb.org/mongo-driver/bson"
)

// DBConnector implements Connector against the environment's shared
// database client. It holds no state of its own beyond the injected
// environment and is safe for concurrent use.
type DBConnector struct {
	env docbridge.Environment
}

func NewDBConnector(env docbridge.Environment) *DBConnector {
	return &DBConnector{env: env}
}

func (dc *DBConnector) InsertOne(ctx context.Context, database, collection string, document any) (*db.InsertOneResult, error) {
	return db.InsertOne(ctx, dc.env.Client(), database, collection, document)
}

func (dc *DBConnector) InsertMany(ctx context.Context, database, collection string, documents []any) (*db.InsertManyResult, error) {
	return db.InsertMany(ctx, dc.env.Client(), database, collection, documents)
}

func (dc *DBConnector) Find(ctx context.Context, database, collection string, filter any, skip, limit int64) ([]bson.M, error) {
	return db.Find(ctx, dc.env.Client(), database, collection, filter, skip, limit)
}

func (dc *DBConnector) Aggregate(ctx context.Context, database, collection string, pipeline []any) ([]bson.M, error) {
	return db.Aggregate(ctx, dc.env.Client(), database, collection, pipeline)
}

func (dc *DBConnector) UpdateOne(ctx context.Context, database, collection string, filter, update any) (*db.UpdateResult, error) {
	return db.UpdateOne(ctx, dc.env.Client(), database, collection, filter, update)
}

func (dc *DBConnector) UpdateMany(ctx context.Context, database, collection string, filter, update any) (*db.UpdateResult, error) {
	return db.UpdateMany(ctx, dc.env.Client(), database, collection, filter, update)
}

func (dc *DBConnector) DeleteOne(ctx context.Context, database, collection string, filter any) (*db.DeleteResult, error) {
	return db.DeleteOne(ctx, dc.env.Client(), database, collection, filter)
}

func (dc *DBConnector) DeleteMany(ctx context.Context, database, collection string, filter any) (*db.DeleteResult, error) {
	return db.DeleteMany(ctx, dc.env.Client(), database, collection, filter)
}

func (dc *DBConnector) Ping(ctx context.Context) error {
	return db.Ping(ctx, dc.env.Client())
}
