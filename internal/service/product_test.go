package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/guttosm/area-length-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_NotConfigured(t *testing.T) {
	svc := NewProductService(nil, nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "oak")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.ForCalculator(ctx, "oak")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.List(ctx, 10)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = svc.Save(ctx, model.ProductConfiguration{ProductID: "oak"}, "admin")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestProductService_Get(t *testing.T) {
	ctx := context.Background()
	stored := &model.ProductConfiguration{ProductID: "oak", Mode: model.ModeArea, UnitsPerPackage: 2.5, MinOrderQty: 1}

	tests := []struct {
		name        string
		productID   string
		setupMock   func(*mocks.MockProductsRepositoryInterface)
		expected    *model.ProductConfiguration
		expectedErr error
	}{
		{
			name:      "found",
			productID: "oak",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Get", ctx, "oak").Return(stored, nil).Once()
			},
			expected: stored,
		},
		{
			name:      "trims id",
			productID: "  oak ",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Get", ctx, "oak").Return(stored, nil).Once()
			},
			expected: stored,
		},
		{
			name:      "missing",
			productID: "pine",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Get", ctx, "pine").Return(nil, nil).Once()
			},
			expectedErr: ErrProductNotFound,
		},
		{
			name:        "blank id",
			productID:   "   ",
			setupMock:   func(m *mocks.MockProductsRepositoryInterface) {},
			expectedErr: ErrProductNotFound,
		},
		{
			name:      "repository error is wrapped",
			productID: "oak",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Get", ctx, "oak").Return(nil, context.DeadlineExceeded).Once()
			},
			expectedErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(repo)
			svc := NewProductService(repo, nil)

			got, err := svc.Get(ctx, tt.productID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockProductsRepositoryInterface)
	repo.On("Get", ctx, "oak").
		Return(&model.ProductConfiguration{ProductID: "oak", Mode: model.ModeArea, UnitsPerPackage: 2.5}, nil).
		Once()

	c := newTTLCache(10, time.Minute)
	defer c.Stop()
	svc := NewProductService(repo, c)

	for i := 0; i < 3; i++ {
		got, err := svc.Get(ctx, "oak")
		require.NoError(t, err)
		assert.Equal(t, 2.5, got.UnitsPerPackage)
	}

	repo.AssertNumberOfCalls(t, "Get", 1)
	assert.Equal(t, int64(2), c.Metrics().Hits)
}

func TestProductService_ForCalculator(t *testing.T) {
	ctx := context.Background()
	stock := 40
	repo := new(mocks.MockProductsRepositoryInterface)
	repo.On("Get", ctx, "oak").Return(&model.ProductConfiguration{
		ProductID:       "oak",
		Mode:            model.Mode("AREA"),
		UnitsPerPackage: -2.5,
		StockOnHand:     &stock,
	}, nil)

	svc := NewProductService(repo, nil)
	product, err := svc.ForCalculator(ctx, "oak")
	require.NoError(t, err)

	assert.Equal(t, model.ModeArea, product.Mode)
	assert.Equal(t, 2.5, product.UnitsPerPackage)
	assert.Equal(t, 1, product.MinOrderQty)
	assert.Equal(t, 40, product.MaxOrderQty)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockProductsRepositoryInterface)
	repo.On("List", ctx, 25).Return([]model.ProductConfiguration{{ProductID: "a"}, {ProductID: "b"}}, nil)
	repo.On("List", ctx, 1).Return(nil, errors.New("boom"))

	svc := NewProductService(repo, nil)

	products, err := svc.List(ctx, 25)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = svc.List(ctx, 1)
	assert.Error(t, err)
}

func TestProductService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes, stores and invalidates cache", func(t *testing.T) {
		repo := new(mocks.MockProductsRepositoryInterface)
		repo.On("Upsert", ctx, mock.MatchedBy(func(p model.ProductConfiguration) bool {
			return p.ProductID == "oak" &&
				p.Mode == model.ModeArea &&
				p.UnitsPerPackage == 2.5 &&
				p.MinOrderQty == 1
		}), "admin@example.com").
			Return(&model.ProductConfiguration{ProductID: "oak", Mode: model.ModeArea, UnitsPerPackage: 2.5, Version: 3}, nil)

		c := newTTLCache(10, time.Minute)
		defer c.Stop()
		c.Set("oak", model.ProductConfiguration{ProductID: "oak", UnitsPerPackage: 1})

		svc := NewProductService(repo, c)
		stored, err := svc.Save(ctx, model.ProductConfiguration{
			ProductID:       " oak ",
			Mode:            "area",
			UnitsPerPackage: -2.5,
		}, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Version)

		_, cached := c.Get("oak")
		assert.False(t, cached)
		repo.AssertExpectations(t)
	})

	t.Run("unknown mode becomes standard", func(t *testing.T) {
		repo := new(mocks.MockProductsRepositoryInterface)
		repo.On("Upsert", ctx, mock.MatchedBy(func(p model.ProductConfiguration) bool {
			return p.Mode == model.ModeStandard
		}), "").Return(&model.ProductConfiguration{ProductID: "x", Mode: model.ModeStandard}, nil)

		svc := NewProductService(repo, nil)
		_, err := svc.Save(ctx, model.ProductConfiguration{ProductID: "x", Mode: "volume"}, "")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing id", func(t *testing.T) {
		svc := NewProductService(new(mocks.MockProductsRepositoryInterface), nil)
		_, err := svc.Save(ctx, model.ProductConfiguration{Mode: model.ModeArea, UnitsPerPackage: 1}, "")
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("rejects measured product without units", func(t *testing.T) {
		svc := NewProductService(new(mocks.MockProductsRepositoryInterface), nil)
		_, err := svc.Save(ctx, model.ProductConfiguration{ProductID: "oak", Mode: model.ModeLength}, "")
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := new(mocks.MockProductsRepositoryInterface)
		repo.On("Upsert", ctx, mock.Anything, "").Return(nil, errors.New("write conflict"))

		svc := NewProductService(repo, nil)
		_, err := svc.Save(ctx, model.ProductConfiguration{ProductID: "oak", Mode: model.ModeArea, UnitsPerPackage: 1}, "")
		assert.ErrorContains(t, err, "write conflict")
	})
}
