// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/area-length-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Get(ctx context.Context, productID string) (*model.ProductConfiguration, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductConfiguration), args.Error(1)
}

func (m *MockProductService) ForCalculator(ctx context.Context, productID string) (model.ProductConfiguration, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(model.ProductConfiguration), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, limit int) ([]model.ProductConfiguration, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductConfiguration), args.Error(1)
}

func (m *MockProductService) Save(ctx context.Context, product model.ProductConfiguration, updatedBy string) (*model.ProductConfiguration, error) {
	args := m.Called(ctx, product, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductConfiguration), args.Error(1)
}

// NewMockProductService creates a new instance of MockProductService. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductService {
	m := &MockProductService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
