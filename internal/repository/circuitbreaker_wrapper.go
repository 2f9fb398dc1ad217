package repository

import (
	"context"
	"errors"

	"github.com/guttosm/area-length-service/internal/circuitbreaker"
	"github.com/guttosm/area-length-service/internal/domain/model"
)

// ProductsRepositoryWithCircuitBreaker guards catalog access with a circuit breaker.
// Unlike the logs wrapper it surfaces ErrCircuitOpen: a calculator cannot run
// without its product configuration, so callers must see the outage.
type ProductsRepositoryWithCircuitBreaker struct {
	repo           ProductsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductsRepositoryWithCircuitBreaker(repo ProductsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductsRepositoryWithCircuitBreaker {
	return &ProductsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns a product configuration with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Get(ctx context.Context, productID string) (*model.ProductConfiguration, error) {
	var result *model.ProductConfiguration
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, productID)
		return cbErr
	})
	return result, err
}

// Upsert stores a product configuration with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error) {
	var result *model.ProductConfiguration
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, product, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns product configurations with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.ProductConfiguration, error) {
	var result []model.ProductConfiguration
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. Writes are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries. Writes are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
