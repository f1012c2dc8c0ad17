package blogservice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

type Blog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category" json:"category"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	ImageURL         string             `bson:"imageUrl" json:"imageUrl"`
	PostedTime       time.Time          `bson:"postedTime" json:"postedTime"`
	AuthorEmail      string             `bson:"authorEmail" json:"authorEmail"`
}

// TrendingBlog is the reduced projection returned by the trending view.
type TrendingBlog struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category" json:"category"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	ImageURL         string             `bson:"imageUrl" json:"imageUrl"`
	CommentCount     int                `bson:"commentCount" json:"commentCount"`
}

// CategoryCount is one group of the popular categories view.
type CategoryCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int    `bson:"count" json:"count"`
}

type BlogModel struct {
	blogs *mongo.Collection
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}
