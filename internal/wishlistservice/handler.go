package wishlistservice

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func NewWishlistService(db *mongo.Database) *WishlistService {
	return &WishlistService{m: newWishlistModel(db)}
}

type AddWishRequest struct {
	BlogID    string `json:"blogId"`
	UserEmail string `json:"userEmail"`
}

// AddWish adds a blog post to a user's wishlist. A second add for the same
// (blogId, userEmail) pair fails with ErrDuplicateEntry. The check and the
// insert are separate store operations, so concurrent duplicate requests can
// race past the check; the guard is best effort.
func (s *WishlistService) AddWish(ctx context.Context, req *AddWishRequest) (string, error) {
	v := common.NewValidator()
	v.Check(req.UserEmail != "", "userEmail", "must be provided")
	v.Check(v.CheckEmail(req.UserEmail), "userEmail", "must be a valid email address")
	if _, err := common.ParseID(req.BlogID); err != nil {
		v.AddError("blogId", "must be a valid blog id")
	}
	if !v.Valid() {
		return "", v.ValidationError()
	}

	found, err := s.m.exists(ctx, req.BlogID, req.UserEmail)
	if err != nil {
		return "", err
	}
	if found {
		return "", ErrDuplicateEntry
	}

	entry := &WishlistEntry{
		BlogID:    req.BlogID,
		UserEmail: req.UserEmail,
	}

	return s.m.insert(ctx, entry)
}

// GetWishlist returns every wishlist entry owned by the given user.
func (s *WishlistService) GetWishlist(ctx context.Context, userEmail string) ([]WishlistEntry, error) {
	v := common.NewValidator()
	v.Check(userEmail != "", "email", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByUserEmail(ctx, userEmail)
}

// RemoveWish deletes a wishlist entry by its own identity.
func (s *WishlistService) RemoveWish(ctx context.Context, id string) error {
	objID, err := common.ParseID(id)
	if err != nil {
		return err
	}

	return s.m.deleteByID(ctx, objID)
}
