package model

import (
	"github.com/docbridge-io/docbridge/db"
	"github.com/evergreen-ci/utility"
	"go.mongodb.org/mongo-driver/bson"
)

// APIError is the uniform error envelope: every non-200 response body
// carries exactly one error field.
type APIError struct {
	Error string `json:"error"`
}

// APIInsertOneResult is the response envelope for insertOne.
type APIInsertOneResult struct {
	InsertedID    string `json:"insertedId"`
	InsertedCount int    `json:"insertedCount"`
}

func (m *APIInsertOneResult) BuildFromService(res *db.InsertOneResult) {
	m.InsertedID = res.InsertedID
	m.InsertedCount = 1
}

// APIInsertManyResult is the response envelope for insertMany.
type APIInsertManyResult struct {
	InsertedIDs   []string `json:"insertedIds"`
	InsertedCount int      `json:"insertedCount"`
}

func (m *APIInsertManyResult) BuildFromService(res *db.InsertManyResult) {
	m.InsertedIDs = res.InsertedIDs
	m.InsertedCount = len(res.InsertedIDs)
}

// APIDocumentsResult is the response envelope for find and aggregate.
type APIDocumentsResult struct {
	Documents []bson.M `json:"documents"`
}

func (m *APIDocumentsResult) BuildFromService(docs []bson.M) {
	if docs == nil {
		docs = []bson.M{}
	}
	m.Documents = docs
}

// APIUpdateOneResult is the response envelope for updateOne. UpsertedID
// is the string form of the upserted identifier, or null when the
// operation did not upsert.
type APIUpdateOneResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

func (m *APIUpdateOneResult) BuildFromService(res *db.UpdateResult) {
	m.MatchedCount = res.MatchedCount
	m.ModifiedCount = res.ModifiedCount
	if res.UpsertedID != nil {
		m.UpsertedID = utility.ToStringPtr(db.RenderID(res.UpsertedID))
	}
}

// APIUpdateManyResult is the response envelope for updateMany.
type APIUpdateManyResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func (m *APIUpdateManyResult) BuildFromService(res *db.UpdateResult) {
	m.MatchedCount = res.MatchedCount
	m.ModifiedCount = res.ModifiedCount
}

// APIDeleteResult is the response envelope for deleteOne and
// deleteMany.
type APIDeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (m *APIDeleteResult) BuildFromService(res *db.DeleteResult) {
	m.DeletedCount = res.DeletedCount
}

// APIHealthStatus is the response envelope for the health endpoint.
type APIHealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
