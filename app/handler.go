package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/sabbirsolid/blog-spotter-server/internal/authservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/blogservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/commentservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/common"
	"github.com/sabbirsolid/blog-spotter-server/internal/wishlistservice"
)

type issueTokenRequest struct {
	Email string `json:"email"`
}

// issueTokenHandler signs a credential for the supplied identity payload and
// sets it as a cookie. The identity is taken at face value; the platform's
// login happens upstream.
func (app *application) issueTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input issueTokenRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	v := common.NewValidator()
	v.Check(input.Email != "", "email", "must be provided")
	v.Check(v.CheckEmail(input.Email), "email", "must be a valid email address")
	if !v.Valid() {
		app.failedValidationErrorResponse(w, r, v.Errors)
		return
	}

	token, err := app.authService.IssueToken(input.Email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, app.tokenCookie(token, int(authservice.TokenTime/time.Second)))

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, app.tokenCookie("", -1))

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// tokenCookie builds the credential cookie. Cross-site frontends need
// SameSite=None, which browsers only accept over TLS, so the strict mode is
// kept for development.
func (app *application) tokenCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}

	if app.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}

	return cookie
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.CreateBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	id, err := app.blogService.CreateBlog(r.Context(), &input)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"message": "blog created", "id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	page, size, err := app.readPageSizeParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var (
		search   = r.URL.Query().Get("search")
		category = r.URL.Query().Get("category")
	)

	blogs, err := app.blogService.GetBlogs(r.Context(), search, category, page, size)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	app.fetchBlog(w, r)
}

// getBlogForEditHandler serves the edit form fetch. Same lookup as
// getBlogHandler but on a public route.
func (app *application) getBlogForEditHandler(w http.ResponseWriter, r *http.Request) {
	app.fetchBlog(w, r)
}

func (app *application) fetchBlog(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input blogservice.UpdateBlogRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.blogService.UpdateBlog(r.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "blog updated"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) countBlogsHandler(w http.ResponseWriter, r *http.Request) {
	count, err := app.blogService.CountBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"count": count}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input commentservice.AddCommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	id, err := app.commentService.AddComment(r.Context(), &input)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"message": "comment added", "id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comments, err := app.commentService.GetCommentsByBlogID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comments": comments}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) addWishHandler(w http.ResponseWriter, r *http.Request) {
	var input wishlistservice.AddWishRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	id, err := app.wishlistService.AddWish(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, wishlistservice.ErrDuplicateEntry):
			app.conflictErrorResponse(w, r, "blog already in wishlist")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"message": "added to wishlist", "id": id}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// getWishlistHandler lists a user's wishlist. The authenticated identity
// must match the requested owner; any other identity is rejected with a
// forbidden, not an unauthorized.
func (app *application) getWishlistHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		app.badRequestErrorResponse(w, r, errors.New("missing email parameter"))
		return
	}

	identity := app.getIdentityContext(r)
	if identity.Email != email {
		app.forbiddenErrorResponse(w, r)
		return
	}

	entries, err := app.wishlistService.GetWishlist(r.Context(), email)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"wishlist": entries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) removeWishHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.wishlistService.RemoveWish(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidID):
			app.badRequestErrorResponse(w, r, err)
		case errors.Is(err, wishlistservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "removed from wishlist"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) featuredBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.FeaturedBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) recentBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.RecentBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) popularCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.blogService.PopularCategories(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"categories": categories}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) trendingTopicsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.TrendingBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
