package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
)

type MockStore struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockStore) ListCategories(activeOnly bool) ([]domain.Category, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockStore) CreateCategory(c *domain.Category) (*domain.Category, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockStore) UpdateCategory(id int64, c *domain.Category) (*domain.Category, error) {
	args := m.Called(id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockStore) DeleteCategory(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) ListProducts(availableOnly bool, categoryID *int64) ([]domain.Product, error) {
	args := m.Called(availableOnly, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockStore) FindProductByID(id int64) (*domain.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockStore) CreateProduct(p *domain.Product) (*domain.Product, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockStore) UpdateProduct(id int64, p *domain.Product) (*domain.Product, error) {
	args := m.Called(id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockStore) DeleteProduct(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) CreateOrder(o *domain.Order) (*domain.Order, error) {
	args := m.Called(o)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) == nil {
		// both real backends hand back the stored input, id assigned
		return o, nil
	}
	return args.Get(0).(*domain.Order), nil
}

func (m *MockStore) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockStore) FindOrderByID(id int64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) UpdateOrderStatus(id int64, status domain.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}
