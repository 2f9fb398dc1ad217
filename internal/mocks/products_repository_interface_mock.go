// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockProductsRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductsRepositoryInterface) Get(ctx context.Context, productID string) (*model.ProductConfiguration, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductConfiguration), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Upsert(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error) {
	args := m.Called(ctx, product, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductConfiguration), args.Error(1)
}

func (m *MockProductsRepositoryInterface) List(ctx context.Context, limit int) ([]model.ProductConfiguration, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductConfiguration), args.Error(1)
}

// NewMockProductsRepositoryInterface creates a new instance of MockProductsRepositoryInterface. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductsRepositoryInterface {
	m := &MockProductsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
