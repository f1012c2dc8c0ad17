package blogservice

import (
	"github.com/sabbirsolid/blog-spotter-server/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must not be more than 200 characters long")
}

func validateCategory(v *common.Validator, category string) {
	v.Check(category != "", "category", "must be provided")
}

func validateAuthorEmail(v *common.Validator, email string) {
	v.Check(email != "", "authorEmail", "must be provided")
	v.Check(v.CheckEmail(email), "authorEmail", "must be a valid email address")
}

func validatePagination(v *common.Validator, pageNum, size int) {
	v.Check(pageNum >= 0, "page", "must not be negative")
	v.Check(size > 0, "size", "must be greater than zero")
	v.Check(size <= maxPageSize, "size", "must not be greater than 100")
}
