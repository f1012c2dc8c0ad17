package wishlistservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateEntry = errors.New("blog already in wishlist")
)

func newWishlistModel(db *mongo.Database) *WishlistModel {
	return &WishlistModel{wishlist: db.Collection(common.CollectionWishlist)}
}

// exists reports whether an entry for the (blogId, userEmail) pair is
// already present.
func (m *WishlistModel) exists(ctx context.Context, blogID, userEmail string) (bool, error) {
	err := m.wishlist.FindOne(ctx, bson.M{"blogId": blogID, "userEmail": userEmail}).Err()
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

func (m *WishlistModel) insert(ctx context.Context, entry *WishlistEntry) (string, error) {
	res, err := m.wishlist.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return common.IDString(id), nil
}

func (m *WishlistModel) getByUserEmail(ctx context.Context, userEmail string) ([]WishlistEntry, error) {
	cursor, err := m.wishlist.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, err
	}

	entries := []WishlistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (m *WishlistModel) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.wishlist.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
