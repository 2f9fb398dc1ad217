package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/repository"
	"github.com/guttosm/area-length-service/internal/service/cache"
)

var (
	// ErrRepositoryNotConfigured is returned when the catalog has no storage backend.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrProductNotFound is returned when the catalog has no entry for a product ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct is returned when a product cannot be stored as given.
	ErrInvalidProduct = errors.New("invalid product configuration")
)

// ProductService manages product measurement configurations.
type ProductService interface {
	// Get returns the stored configuration for productID.
	Get(ctx context.Context, productID string) (*model.ProductConfiguration, error)
	// ForCalculator returns the configuration with storefront order bounds applied.
	ForCalculator(ctx context.Context, productID string) (model.ProductConfiguration, error)
	// List returns up to limit configurations.
	List(ctx context.Context, limit int) ([]model.ProductConfiguration, error)
	// Save normalizes and stores product, recording updatedBy.
	Save(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error)
}

// ProductServiceImpl implements ProductService on top of a repository and a
// read-through cache.
type ProductServiceImpl struct {
	repo  repository.ProductsRepositoryInterface
	cache cache.Cache
}

// NewProductService creates a product service. repo may be nil when MongoDB
// is disabled; c may be nil to disable caching.
func NewProductService(repo repository.ProductsRepositoryInterface, c cache.Cache) *ProductServiceImpl {
	return &ProductServiceImpl{repo: repo, cache: c}
}

// Get returns the stored configuration, consulting the cache first.
func (s *ProductServiceImpl) Get(ctx context.Context, productID string) (*model.ProductConfiguration, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrProductNotFound
	}

	if s.cache != nil {
		if product, ok := s.cache.Get(productID); ok {
			return &product, nil
		}
	}

	product, err := s.repo.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if s.cache != nil {
		s.cache.Set(productID, *product)
	}
	return product, nil
}

// ForCalculator returns the configuration the calculator should run with:
// normalized, with tracked stock acting as the max order when none is set.
func (s *ProductServiceImpl) ForCalculator(ctx context.Context, productID string) (model.ProductConfiguration, error) {
	product, err := s.Get(ctx, productID)
	if err != nil {
		return model.ProductConfiguration{}, err
	}
	return product.Normalize().WithStockBounds(), nil
}

// List returns up to limit configurations. It bypasses the cache.
func (s *ProductServiceImpl) List(ctx context.Context, limit int) ([]model.ProductConfiguration, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	products, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Save applies the catalog save rules and stores product.
func (s *ProductServiceImpl) Save(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	product.ProductID = strings.TrimSpace(product.ProductID)
	if product.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id is required", ErrInvalidProduct)
	}
	product = product.Normalize()
	if product.Mode.Measured() && product.UnitsPerPackage == 0 {
		return nil, fmt.Errorf("%w: units_per_package is required for %s products", ErrInvalidProduct, product.Mode)
	}

	stored, err := s.repo.Upsert(ctx, product, updatedBy)
	if err != nil {
		return nil, fmt.Errorf("save product %q: %w", product.ProductID, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(product.ProductID)
	}

	log.Info().
		Str("product_id", stored.ProductID).
		Str("mode", string(stored.Mode)).
		Float64("units_per_package", stored.UnitsPerPackage).
		Int("version", stored.Version).
		Str("updated_by", updatedBy).
		Msg("Product configuration saved")

	return stored, nil
}

var _ ProductService = (*ProductServiceImpl)(nil)
