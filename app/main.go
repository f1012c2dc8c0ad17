package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/sabbirsolid/blog-spotter-server/internal/authservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/blogservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/commentservice"
	"github.com/sabbirsolid/blog-spotter-server/internal/common"
	"github.com/sabbirsolid/blog-spotter-server/internal/wishlistservice"
)

type application struct {
	config          *Config
	logger          *slog.Logger
	authService     *authservice.AuthService
	blogService     *blogservice.BlogService
	commentService  *commentservice.CommentService
	wishlistService *wishlistservice.WishlistService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to the document store. The client is the only long-lived shared
	// resource; it is handed to every service and closed on shutdown.
	client, db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := common.CloseDB(client); err != nil {
			logger.Error("failed to close the database connection", slog.String("error", err.Error()))
		}
	}()

	// Short-lived cache for the aggregation views
	cache := common.NewCache(time.Minute, 5*time.Minute)

	app := &application{
		config:          cfg,
		logger:          logger,
		authService:     authservice.NewAuthService(cfg.JWTSecret),
		blogService:     blogservice.NewBlogService(db, cache),
		commentService:  commentservice.NewCommentService(db),
		wishlistService: wishlistservice.NewWishlistService(db),
	}

	// Start the HTTP server
	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
