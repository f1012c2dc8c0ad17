package commentservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func newCommentModel(db *mongo.Database) *CommentModel {
	return &CommentModel{comments: db.Collection(common.CollectionComments)}
}

func (m *CommentModel) insert(ctx context.Context, comment *Comment) (string, error) {
	res, err := m.comments.InsertOne(ctx, comment)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return common.IDString(id), nil
}

func (m *CommentModel) getCommentsByBlogID(ctx context.Context, blogID string) ([]Comment, error) {
	cursor, err := m.comments.Find(ctx, bson.M{"blogId": blogID})
	if err != nil {
		return nil, err
	}

	comments := []Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}
