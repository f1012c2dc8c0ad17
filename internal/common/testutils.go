package common

import (
	"context"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
)

const testDBName = "blogSpotter"

// dbMigrate applies the index migrations. The file parameter changes
// according to the caller location relative to the migrations directory and
// should be in the format of "file://../../migrations".
func dbMigrate(file, dsn string) (*migrate.Migrate, error) {
	m, err := migrate.New(file, dsn)
	if err != nil {
		return nil, err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, err
	}

	return m, nil
}

// TestDB starts a disposable document store container, applies the index
// migrations and returns a handle to the test database.
func TestDB(filepath string, t *testing.T) *mongo.Database {
	ctx := context.Background()

	c, err := mongodb.Run(ctx, "docker.io/mongo:7.0",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").WithStartupTimeout(30*time.Second)))
	if err != nil {
		t.Fatalf("could not start mongo container: %v", err)
	}

	connURL, err := c.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	_, err = dbMigrate(filepath, connURL+"/"+testDBName)
	if err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	client, db, err := NewDBFromURI(connURL, testDBName)
	if err != nil {
		t.Fatalf("could not connect to the test database: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDB(client); err != nil {
			t.Fatalf("could not close the test database: %v", err)
		}

		if err := c.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	return db
}
