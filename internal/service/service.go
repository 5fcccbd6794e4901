package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID converts a hex string from a URL or token into an
// ObjectID, rejecting malformed input before it reaches a repository.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid object ID format")
	}
	return oid, nil
}
