package repository

import (
	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
)

// Store abstracts the two interchangeable persistence backends (managed
// MySQL or a local JSON file) behind one contract. Both implementations
// return (nil, nil) for update/delete/lookup on a missing id so admin flows
// stay idempotent.
type Store interface {
	ListCategories(activeOnly bool) ([]domain.Category, error)
	CreateCategory(c *domain.Category) (*domain.Category, error)
	UpdateCategory(id int64, c *domain.Category) (*domain.Category, error)
	DeleteCategory(id int64) error

	ListProducts(availableOnly bool, categoryID *int64) ([]domain.Product, error)
	FindProductByID(id int64) (*domain.Product, error)
	CreateProduct(p *domain.Product) (*domain.Product, error)
	UpdateProduct(id int64, p *domain.Product) (*domain.Product, error)
	DeleteProduct(id int64) error

	CreateOrder(o *domain.Order) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	FindOrderByID(id int64) (*domain.Order, error)
	UpdateOrderStatus(id int64, status domain.OrderStatus) error
}
