package blogservice

import (
	"go.mongodb.org/mongo-driver/bson"
)

const maxPageSize = 100

// page is a resolved pagination window.
type page struct {
	skip  int64
	limit int64
}

// buildBlogFilter turns the list parameters into a store filter. A non-empty
// search becomes a case-insensitive substring match on the title, a non-empty
// category an exact match; both together AND. Empty parameters match every
// record.
func buildBlogFilter(search, category string) bson.M {
	filter := bson.M{}

	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}

	if category != "" {
		filter["category"] = category
	}

	return filter
}

// buildPage resolves a page/size pair into a skip/limit window. Inputs must
// already be validated (pageNum >= 0, size > 0).
func buildPage(pageNum, size int) page {
	return page{
		skip:  int64(pageNum) * int64(size),
		limit: int64(size),
	}
}
