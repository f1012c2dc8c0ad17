package blogservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func NewBlogService(db *mongo.Database, cache *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: cache}
}

type CreateBlogRequest struct {
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	ImageURL         string    `json:"imageUrl"`
	PostedTime       time.Time `json:"postedTime"`
	AuthorEmail      string    `json:"authorEmail"`
}

// CreateBlog creates a new blog post and returns the assigned identity.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (string, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateCategory(v, req.Category)
	validateAuthorEmail(v, req.AuthorEmail)
	if !v.Valid() {
		return "", v.ValidationError()
	}

	blog := &Blog{
		Title:            req.Title,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		ImageURL:         req.ImageURL,
		PostedTime:       req.PostedTime,
		AuthorEmail:      req.AuthorEmail,
	}

	if blog.PostedTime.IsZero() {
		blog.PostedTime = time.Now()
	}

	id, err := s.m.insert(ctx, blog)
	if err != nil {
		return "", err
	}

	s.c.Flush()

	return id, nil
}

// GetBlogByID returns a blog post by its identity in canonical string form.
func (s *BlogService) GetBlogByID(ctx context.Context, id string) (*Blog, error) {
	objID, err := common.ParseID(id)
	if err != nil {
		return nil, err
	}

	return s.m.getBlogByID(ctx, objID)
}

// GetBlogs returns one page of blog posts matching the search and category
// filters. Missing pagination parameters are resolved by the caller; invalid
// ones are rejected here.
func (s *BlogService) GetBlogs(ctx context.Context, search, category string, pageNum, size int) ([]Blog, error) {
	v := common.NewValidator()
	validatePagination(v, pageNum, size)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	filter := buildBlogFilter(search, category)

	return s.m.getBlogs(ctx, filter, buildPage(pageNum, size))
}

// UpdateBlogRequest carries a partial update. Nil fields are left untouched.
// The record identity and posted time are fixed at creation.
type UpdateBlogRequest struct {
	Title            *string `json:"title"`
	Category         *string `json:"category"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
	ImageURL         *string `json:"imageUrl"`
	AuthorEmail      *string `json:"authorEmail"`
}

// UpdateBlog applies a partial update to a blog post. Only the provided
// fields are modified.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, req *UpdateBlogRequest) error {
	objID, err := common.ParseID(id)
	if err != nil {
		return err
	}

	v := common.NewValidator()
	update := bson.M{}

	if req.Title != nil {
		validateTitle(v, *req.Title)
		update["title"] = *req.Title
	}
	if req.Category != nil {
		validateCategory(v, *req.Category)
		update["category"] = *req.Category
	}
	if req.ShortDescription != nil {
		update["shortDescription"] = *req.ShortDescription
	}
	if req.LongDescription != nil {
		update["longDescription"] = *req.LongDescription
	}
	if req.ImageURL != nil {
		update["imageUrl"] = *req.ImageURL
	}
	if req.AuthorEmail != nil {
		validateAuthorEmail(v, *req.AuthorEmail)
		update["authorEmail"] = *req.AuthorEmail
	}

	v.Check(len(update) > 0, "fields", "must provide at least one field to update")
	if !v.Valid() {
		return v.ValidationError()
	}

	if err := s.m.updateBlog(ctx, objID, update); err != nil {
		return err
	}

	s.c.Flush()

	return nil
}

// CountBlogs returns the approximate number of blog posts.
func (s *BlogService) CountBlogs(ctx context.Context) (int64, error) {
	if count, ok := s.c.Get(common.CacheKeyBlogsCount()); ok {
		return count.(int64), nil
	}

	count, err := s.m.countBlogs(ctx)
	if err != nil {
		return 0, err
	}

	s.c.Set(common.CacheKeyBlogsCount(), count)

	return count, nil
}

// FeaturedBlogs returns the top posts ranked by long description length.
func (s *BlogService) FeaturedBlogs(ctx context.Context) ([]Blog, error) {
	if blogs, ok := s.c.Get(common.CacheKeyFeaturedBlogs); ok {
		return blogs.([]Blog), nil
	}

	blogs, err := s.m.featuredBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyFeaturedBlogs, blogs)

	return blogs, nil
}

// RecentBlogs returns the most recent posts by posted time.
func (s *BlogService) RecentBlogs(ctx context.Context) ([]Blog, error) {
	if blogs, ok := s.c.Get(common.CacheKeyRecentBlogs); ok {
		return blogs.([]Blog), nil
	}

	blogs, err := s.m.recentBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyRecentBlogs, blogs)

	return blogs, nil
}

// PopularCategories returns the largest categories with their post counts.
func (s *BlogService) PopularCategories(ctx context.Context) ([]CategoryCount, error) {
	if categories, ok := s.c.Get(common.CacheKeyPopularCategories); ok {
		return categories.([]CategoryCount), nil
	}

	categories, err := s.m.popularCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyPopularCategories, categories)

	return categories, nil
}

// TrendingBlogs returns the posts with the most comments.
func (s *BlogService) TrendingBlogs(ctx context.Context) ([]TrendingBlog, error) {
	if blogs, ok := s.c.Get(common.CacheKeyTrendingBlogs); ok {
		return blogs.([]TrendingBlog), nil
	}

	blogs, err := s.m.trendingBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyTrendingBlogs, blogs)

	return blogs, nil
}
