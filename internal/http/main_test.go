//go:build integration

package http

import (
	"os"
	"testing"

	"github.com/guttosm/area-length-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongoDB(m))
}
