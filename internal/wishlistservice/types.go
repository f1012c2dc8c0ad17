package wishlistservice

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WishlistEntry marks a blog post saved by a user. At most one entry exists
// per (blogId, userEmail) pair, enforced by a check before insert.
type WishlistEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BlogID    string             `bson:"blogId" json:"blogId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
}

type WishlistModel struct {
	wishlist *mongo.Collection
}

type WishlistService struct {
	m *WishlistModel
}
