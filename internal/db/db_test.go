package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURI(t *testing.T) {
	cases := []struct {
		uri, db, want string
	}{
		{"mongodb://localhost:27017", "caterers", "mongodb://localhost:27017/caterers"},
		{"mongodb://localhost:27017/", "caterers", "mongodb://localhost:27017/caterers"},
		{"mongodb://u:p@host:27017?authSource=admin", "caterers", "mongodb://u:p@host:27017/caterers?authSource=admin"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, migrateURI(tc.uri, tc.db))
	}
}

// Requires a running MongoDB; skipped otherwise.
func TestConnectAndMigrate(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, database, err := Connect(ctx, uri, "caterers_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, Migrate(uri, "caterers_test"))

	names, err := database.Collection("menu").Indexes().ListSpecifications(ctx)
	require.NoError(t, err)
	var found bool
	for _, spec := range names {
		if spec.Name == "idx_menu_imageId" {
			found = true
			require.NotNil(t, spec.Unique)
			assert.True(t, *spec.Unique)
		}
	}
	assert.True(t, found, "unique imageId index should exist")
}
