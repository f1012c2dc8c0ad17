package wishlistservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func TestAddWish(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewWishlistService(db)

	ctx := context.Background()
	blogID := common.IDString(primitive.NewObjectID())

	id, err := s.AddWish(ctx, &AddWishRequest{BlogID: blogID, UserEmail: "a@example.com"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	// the same pair again must be rejected without inserting
	_, err = s.AddWish(ctx, &AddWishRequest{BlogID: blogID, UserEmail: "a@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	count, err := db.Collection(common.CollectionWishlist).CountDocuments(ctx, bson.M{"blogId": blogID, "userEmail": "a@example.com"})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// same blog for a different user is fine
	_, err = s.AddWish(ctx, &AddWishRequest{BlogID: blogID, UserEmail: "b@example.com"})
	assert.NoError(t, err)

	// invalid input never reaches the store
	_, err = s.AddWish(ctx, &AddWishRequest{BlogID: "nope", UserEmail: "a@example.com"})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"blogId": "must be a valid blog id"}}, err)

	_, err = s.AddWish(ctx, &AddWishRequest{BlogID: blogID, UserEmail: ""})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"userEmail": "must be provided"}}, err)
}

func TestGetWishlist(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewWishlistService(db)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.AddWish(ctx, &AddWishRequest{BlogID: common.IDString(primitive.NewObjectID()), UserEmail: "a@example.com"})
		assert.NoError(t, err)
	}
	_, err := s.AddWish(ctx, &AddWishRequest{BlogID: common.IDString(primitive.NewObjectID()), UserEmail: "b@example.com"})
	assert.NoError(t, err)

	entries, err := s.GetWishlist(ctx, "a@example.com")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Equal(t, "a@example.com", entry.UserEmail)
	}

	entries, err = s.GetWishlist(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveWish(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewWishlistService(db)

	ctx := context.Background()

	id, err := s.AddWish(ctx, &AddWishRequest{BlogID: common.IDString(primitive.NewObjectID()), UserEmail: "a@example.com"})
	assert.NoError(t, err)

	assert.NoError(t, s.RemoveWish(ctx, id))

	// a second delete finds nothing
	assert.ErrorIs(t, s.RemoveWish(ctx, id), ErrRecordNotFound)

	assert.ErrorIs(t, s.RemoveWish(ctx, "not-an-id"), common.ErrInvalidID)
}
