package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/", app.healthCheckHandler)

	// auth
	router.HandlerFunc(http.MethodPost, "/jwt", app.issueTokenHandler)
	router.HandlerFunc(http.MethodPost, "/logout", app.logoutHandler)

	// blogs
	router.HandlerFunc(http.MethodPost, "/blogs", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/blogs/:id", app.requireAuthUser(app.getBlogHandler))
	router.HandlerFunc(http.MethodGet, "/update/:id", app.getBlogForEditHandler)
	router.HandlerFunc(http.MethodPatch, "/update/:id", app.requireAuthUser(app.updateBlogHandler))
	router.HandlerFunc(http.MethodGet, "/blogsCount", app.countBlogsHandler)

	// comments
	router.HandlerFunc(http.MethodPost, "/comments", app.addCommentHandler)
	router.HandlerFunc(http.MethodGet, "/comments/:id", app.listCommentsHandler)

	// wishlist
	router.HandlerFunc(http.MethodPost, "/wishlist", app.addWishHandler)
	router.HandlerFunc(http.MethodGet, "/wishlist", app.requireAuthUser(app.getWishlistHandler))
	router.HandlerFunc(http.MethodDelete, "/wishlist/:id", app.removeWishHandler)

	// aggregated views
	router.HandlerFunc(http.MethodGet, "/featured", app.featuredBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/recent-blogs", app.recentBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/popular-categories", app.popularCategoriesHandler)
	router.HandlerFunc(http.MethodGet, "/trending-topics", app.trendingTopicsHandler)

	return app.recoverPanic(app.rateLimit(app.enableCORS(app.logRequest(app.authenticate(router)))))
}
