// Package db opens the MongoDB connection and applies the embedded index
// migrations. The unique imageId indexes created here are what actually
// enforce the per-collection uniqueness rules; the service-level existence
// checks are advisory.
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

//go:embed migrations/*.json
var migrationsFS embed.FS

// Connect opens a client, verifies the deployment is reachable and returns
// the named database handle.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, client.Database(dbName), nil
}

// Migrate applies the embedded index migrations against dbName.
func Migrate(uri, dbName string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURI(uri, dbName))
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// migrateURI injects the database name into the connection URI, which the
// migrate mongodb driver requires in the path segment.
func migrateURI(uri, dbName string) string {
	base, query, hasQuery := strings.Cut(uri, "?")
	base = strings.TrimSuffix(base, "/")
	out := base + "/" + dbName
	if hasQuery {
		out += "?" + query
	}
	return out
}
