package repository

import (
	"context"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// ProductsRepositoryInterface defines catalog storage operations.
type ProductsRepositoryInterface interface {
	Get(ctx context.Context, productID string) (*model.ProductConfiguration, error)
	Upsert(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error)
	List(ctx context.Context, limit int) ([]model.ProductConfiguration, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ ProductsRepositoryInterface = (*ProductsRepository)(nil)
	_ ProductsRepositoryInterface = (*ProductsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface     = (*LogsRepository)(nil)
	_ LogsRepositoryInterface     = (*LogsRepositoryWithCircuitBreaker)(nil)
)
