package blogservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

var ErrRecordNotFound = errors.New("record not found")

const (
	featuredLimit = 10
	recentLimit   = 6
	popularLimit  = 3
	trendingLimit = 5
)

func newBlogModel(db *mongo.Database) *BlogModel {
	return &BlogModel{blogs: db.Collection(common.CollectionBlogs)}
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) (string, error) {
	res, err := m.blogs.InsertOne(ctx, blog)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return common.IDString(id), nil
}

func (m *BlogModel) getBlogByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	var blog Blog

	err := m.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// getBlogs returns one pagination window of the filtered collection in the
// store's natural order.
func (m *BlogModel) getBlogs(ctx context.Context, filter bson.M, p page) ([]Blog, error) {
	opts := options.Find().SetSkip(p.skip).SetLimit(p.limit)

	cursor, err := m.blogs.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	blogs := []Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

// updateBlog sets only the provided fields on the matched record.
func (m *BlogModel) updateBlog(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := m.blogs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (m *BlogModel) countBlogs(ctx context.Context) (int64, error) {
	return m.blogs.EstimatedDocumentCount(ctx)
}

// featuredBlogs ranks blogs by the code point length of the long description.
// Ties keep the store's natural order, which is unspecified.
func (m *BlogModel) featuredBlogs(ctx context.Context) ([]Blog, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"stringLength": bson.M{"$strLenCP": "$longDescription"}}}},
		{{Key: "$sort", Value: bson.M{"stringLength": -1}}},
		{{Key: "$limit", Value: featuredLimit}},
		{{Key: "$project", Value: bson.M{"stringLength": 0}}},
	}

	cursor, err := m.blogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	blogs := []Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) recentBlogs(ctx context.Context) ([]Blog, error) {
	opts := options.Find().SetSort(bson.M{"postedTime": -1}).SetLimit(recentLimit)

	cursor, err := m.blogs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	blogs := []Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) popularCategories(ctx context.Context) ([]CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: popularLimit}},
	}

	cursor, err := m.blogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	categories := []CategoryCount{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// trendingBlogs counts the comments per blog with a lookup into the comments
// collection. Comments store the blog id in its canonical string form, so the
// lookup converts it back with $toObjectId before matching.
func (m *BlogModel) trendingBlogs(ctx context.Context) ([]TrendingBlog, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": common.CollectionComments,
			"let":  bson.M{"blogId": "$_id"},
			"pipeline": bson.A{
				bson.M{"$addFields": bson.M{"blogIdObj": bson.M{"$toObjectId": "$blogId"}}},
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$blogIdObj", "$$blogId"}}}},
			},
			"as": "comments",
		}}},
		{{Key: "$addFields", Value: bson.M{"commentCount": bson.M{"$size": "$comments"}}}},
		{{Key: "$sort", Value: bson.M{"commentCount": -1}}},
		{{Key: "$limit", Value: trendingLimit}},
		{{Key: "$project", Value: bson.M{
			"_id":              1,
			"title":            1,
			"category":         1,
			"shortDescription": 1,
			"imageUrl":         1,
			"commentCount":     1,
		}}},
	}

	cursor, err := m.blogs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	blogs := []TrendingBlog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}
