package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// IDString is the canonical string form of a record identity. Every field
// that references a blog by id (comment.blogId, wishlist.blogId) stores this
// form, so the trending pipeline can convert it back with $toObjectId.
func IDString(id primitive.ObjectID) string {
	return id.Hex()
}

// ParseID converts the canonical string form back into a record identity.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return id, nil
}
