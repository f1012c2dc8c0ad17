package commentservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func TestAddComment(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewCommentService(db)

	blogID := common.IDString(primitive.NewObjectID())

	testCases := []struct {
		name        string
		req         *AddCommentRequest
		expectedErr error
	}{
		{
			name: "valid comment",
			req: &AddCommentRequest{
				BlogID:      blogID,
				Text:        "great post",
				AuthorEmail: "reader@example.com",
				UserName:    "Reader",
			},
			expectedErr: nil,
		},
		{
			name: "empty text",
			req: &AddCommentRequest{
				BlogID:      blogID,
				Text:        "",
				AuthorEmail: "reader@example.com",
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"text": "must be provided"}},
		},
		{
			name: "non canonical blog id",
			req: &AddCommentRequest{
				BlogID:      "B1",
				Text:        "great post",
				AuthorEmail: "reader@example.com",
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"blogId": "must be a valid blog id"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := s.AddComment(context.Background(), tc.req)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			_, err = common.ParseID(id)
			assert.NoError(t, err)
		})
	}
}

func TestGetCommentsByBlogID(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewCommentService(db)

	ctx := context.Background()
	blogID := common.IDString(primitive.NewObjectID())
	otherID := common.IDString(primitive.NewObjectID())

	for i := 0; i < 2; i++ {
		_, err := s.AddComment(ctx, &AddCommentRequest{BlogID: blogID, Text: "hi", AuthorEmail: "a@example.com"})
		assert.NoError(t, err)
	}
	_, err := s.AddComment(ctx, &AddCommentRequest{BlogID: otherID, Text: "hi", AuthorEmail: "a@example.com"})
	assert.NoError(t, err)

	comments, err := s.GetCommentsByBlogID(ctx, blogID)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	for _, comment := range comments {
		assert.Equal(t, blogID, comment.BlogID)
		assert.False(t, comment.CreatedAt.IsZero())
	}

	comments, err = s.GetCommentsByBlogID(ctx, common.IDString(primitive.NewObjectID()))
	assert.NoError(t, err)
	assert.Empty(t, comments)

	_, err = s.GetCommentsByBlogID(ctx, "not-an-id")
	assert.ErrorIs(t, err, common.ErrInvalidID)
}
