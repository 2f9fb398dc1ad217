//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

var (
	shared    *MongoDBContainer
	dbCounter atomic.Int64
)

// RunWithSharedMongoDB starts one container for the whole package, runs the
// tests and terminates it. Use it as the body of TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongoDB(m))
//	}
func RunWithSharedMongoDB(m *testing.M) int {
	ctx := context.Background()

	container, err := SetupMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration setup: %v\n", err)
		return 1
	}
	shared = container

	code := m.Run()

	cleanupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := shared.Cleanup(cleanupCtx); err != nil {
		fmt.Fprintf(os.Stderr, "integration teardown: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the URI of the package container. It fails the test
// when RunWithSharedMongoDB did not start one.
func SharedMongoURI(t testing.TB) string {
	t.Helper()
	if shared == nil {
		t.Fatal("shared MongoDB container not running; call RunWithSharedMongoDB from TestMain")
	}
	return shared.URI
}

// DatabaseName derives a unique database name from the test name so tests
// sharing a container never see each other's documents.
func DatabaseName(t testing.TB) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, t.Name())
	if len(name) > 48 {
		name = name[:48]
	}
	return fmt.Sprintf("walp_%s_%d", name, dbCounter.Add(1))
}
