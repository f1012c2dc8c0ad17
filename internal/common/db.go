package common

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the services. Comments and wishlist entries
// reference blogs by the hex form of the blog's ObjectID (see id.go).
const (
	CollectionBlogs    = "Blogs"
	CollectionComments = "Comments"
	CollectionWishlist = "Wishlist"
)

func NewDB(host, port, user, password, name string) (*mongo.Client, *mongo.Database, error) {
	URI := fmt.Sprintf("mongodb://%s:%s@%s:%s/?authSource=admin", user, password, host, port)
	return connectDB(URI, name)
}

// NewDBFromURI connects using a full connection string. Used by the test
// helpers where the container hands out the URI directly.
func NewDBFromURI(URI, name string) (*mongo.Client, *mongo.Database, error) {
	return connectDB(URI, name)
}

// connectDB connects to the document store and pings it before handing the
// connection out.
func connectDB(URI, name string) (*mongo.Client, *mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(URI).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	return client, client.Database(name), nil
}

// CloseDB disconnects the store client.
func CloseDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.Disconnect(ctx)
}
