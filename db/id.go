package db

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RenderID returns the string form of a database-native identifier.
// ObjectIDs render as their hex encoding; everything else falls back
// to its plain string representation, since JSON has no encoding for
// the native type.
func RenderID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RenderDocumentID rewrites the document's _id field, if present, to
// its string form in place.
func RenderDocumentID(doc bson.M) {
	if id, ok := doc["_id"]; ok {
		doc["_id"] = RenderID(id)
	}
}
