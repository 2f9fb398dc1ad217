//go:build integration

package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/area-length-service/internal/circuitbreaker"
	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/repository"
	"github.com/guttosm/area-length-service/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	container, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Cleanup(ctx) })

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          50 * time.Millisecond,
			Name:             name,
		})
	}

	t.Run("catalog misses do not trip the breaker", func(t *testing.T) {
		db, err := repository.NewMongoDB(container.URI, testutil.DatabaseName(t))
		require.NoError(t, err)
		defer func() { _ = db.Close(ctx) }()

		cb := newBreaker("catalog-reads")
		catalog := repository.NewProductsRepositoryWithCircuitBreaker(repository.NewProductsRepository(db), cb)

		_, err = catalog.Upsert(ctx, model.ProductConfiguration{
			ProductID:       "oak-8mm",
			Mode:            model.ModeArea,
			UnitsPerPackage: 2.5,
			MinOrderQty:     1,
		}, "admin@example.com")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			missing, err := catalog.Get(ctx, "ghost")
			require.NoError(t, err)
			assert.Nil(t, missing)
		}

		found, err := catalog.Get(ctx, "oak-8mm")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 2.5, found.UnitsPerPackage)
		assert.True(t, cb.GetStats().IsHealthy)
	})

	t.Run("catalog outage opens the breaker and recovers", func(t *testing.T) {
		broken, err := repository.NewMongoDB(container.URI, testutil.DatabaseName(t))
		require.NoError(t, err)
		require.NoError(t, broken.Close(ctx))

		cb := newBreaker("catalog-outage")
		catalog := repository.NewProductsRepositoryWithCircuitBreaker(repository.NewProductsRepository(broken), cb)

		for i := 0; i < 2; i++ {
			_, err := catalog.Get(ctx, "oak-8mm")
			require.Error(t, err)
			assert.False(t, errors.Is(err, circuitbreaker.ErrCircuitOpen))
		}
		assert.True(t, cb.IsOpen())

		_, err = catalog.Get(ctx, "oak-8mm")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

		time.Sleep(60 * time.Millisecond)

		healthy, err := repository.NewMongoDB(container.URI, testutil.DatabaseName(t))
		require.NoError(t, err)
		defer func() { _ = healthy.Close(ctx) }()
		recovered := repository.NewProductsRepositoryWithCircuitBreaker(repository.NewProductsRepository(healthy), cb)

		_, err = recovered.Get(ctx, "oak-8mm")
		require.NoError(t, err)
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})

	t.Run("activity log writes are dropped while open", func(t *testing.T) {
		broken, err := repository.NewMongoDB(container.URI, testutil.DatabaseName(t))
		require.NoError(t, err)
		require.NoError(t, broken.Close(ctx))

		cb := newBreaker("logs-outage")
		logs := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(broken), cb)

		entry := func() *repository.LogEntryDocument {
			return &repository.LogEntryDocument{Level: "info", Message: "calculated", ProductID: "oak-8mm"}
		}
		for i := 0; i < 2; i++ {
			assert.Error(t, logs.Create(ctx, entry()))
		}
		require.True(t, cb.IsOpen())

		assert.NoError(t, logs.Create(ctx, entry()))
		assert.NoError(t, logs.CreateMany(ctx, []*repository.LogEntryDocument{entry(), entry()}))
	})
}
