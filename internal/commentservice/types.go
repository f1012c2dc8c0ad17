package commentservice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Comment is immutable once created. BlogID holds the canonical string form
// of the blog's identity.
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BlogID      string             `bson:"blogId" json:"blogId"`
	Text        string             `bson:"text" json:"text"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	UserName    string             `bson:"userName,omitempty" json:"userName,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CommentModel struct {
	comments *mongo.Collection
}

type CommentService struct {
	m *CommentModel
}
