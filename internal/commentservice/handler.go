package commentservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func NewCommentService(db *mongo.Database) *CommentService {
	return &CommentService{m: newCommentModel(db)}
}

type AddCommentRequest struct {
	BlogID      string `json:"blogId"`
	Text        string `json:"text"`
	AuthorEmail string `json:"authorEmail"`
	UserName    string `json:"userName"`
}

// AddComment creates a comment on a blog post and returns the assigned
// identity. The blog id must be in canonical form so the trending lookup can
// convert it back to a record identity.
func (s *CommentService) AddComment(ctx context.Context, req *AddCommentRequest) (string, error) {
	v := common.NewValidator()
	v.Check(req.Text != "", "text", "must be provided")
	v.Check(req.AuthorEmail != "", "authorEmail", "must be provided")
	v.Check(v.CheckEmail(req.AuthorEmail), "authorEmail", "must be a valid email address")
	if _, err := common.ParseID(req.BlogID); err != nil {
		v.AddError("blogId", "must be a valid blog id")
	}
	if !v.Valid() {
		return "", v.ValidationError()
	}

	comment := &Comment{
		BlogID:      req.BlogID,
		Text:        req.Text,
		AuthorEmail: req.AuthorEmail,
		UserName:    req.UserName,
		CreatedAt:   time.Now(),
	}

	return s.m.insert(ctx, comment)
}

// GetCommentsByBlogID returns every comment on the given blog post.
func (s *CommentService) GetCommentsByBlogID(ctx context.Context, blogID string) ([]Comment, error) {
	if _, err := common.ParseID(blogID); err != nil {
		return nil, err
	}

	return s.m.getCommentsByBlogID(ctx, blogID)
}
