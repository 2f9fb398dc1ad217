//go:build integration

package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongoDB(m))
}

// setupTestDBFromSharedContainer connects to a fresh database in the shared container.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedMongoURI(t), testutil.DatabaseName(t))
	require.NoError(t, err)
	return db
}
