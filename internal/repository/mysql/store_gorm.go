package mysql

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/repository"
)

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) repository.Store {
	return &store{db: db}
}

func (s *store) ListCategories(activeOnly bool) ([]domain.Category, error) {
	var out []domain.Category
	q := s.db.Order("display_order")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&out).Error; err != nil {
		log.Printf("ListCategories error: %v", err)
		return nil, err
	}
	return out, nil
}

func (s *store) CreateCategory(c *domain.Category) (*domain.Category, error) {
	if err := s.db.Create(c).Error; err != nil {
		log.Printf("CreateCategory error: %v", err)
		return nil, err
	}
	return c, nil
}

func (s *store) UpdateCategory(id int64, c *domain.Category) (*domain.Category, error) {
	var existing domain.Category
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := s.db.Save(c).Error; err != nil {
		log.Printf("UpdateCategory error: %v", err)
		return nil, err
	}
	return c, nil
}

func (s *store) DeleteCategory(id int64) error {
	// deleting a missing id affects zero rows, which keeps admin flows idempotent
	return s.db.Delete(&domain.Category{}, id).Error
}

func (s *store) ListProducts(availableOnly bool, categoryID *int64) ([]domain.Product, error) {
	var out []domain.Product
	q := s.db.Order("name")
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&out).Error; err != nil {
		log.Printf("ListProducts error: %v", err)
		return nil, err
	}
	return out, nil
}

func (s *store) FindProductByID(id int64) (*domain.Product, error) {
	var p domain.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindProductByID error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (s *store) CreateProduct(p *domain.Product) (*domain.Product, error) {
	if err := s.db.Create(p).Error; err != nil {
		log.Printf("CreateProduct error: %v", err)
		return nil, err
	}
	return p, nil
}

func (s *store) UpdateProduct(id int64, p *domain.Product) (*domain.Product, error) {
	var existing domain.Product
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := s.db.Save(p).Error; err != nil {
		log.Printf("UpdateProduct error: %v", err)
		return nil, err
	}
	return p, nil
}

func (s *store) DeleteProduct(id int64) error {
	return s.db.Delete(&domain.Product{}, id).Error
}

func (s *store) CreateOrder(o *domain.Order) (*domain.Order, error) {
	// append-only insert; the database assigns the id and isolates
	// concurrent submissions
	if err := s.db.Create(o).Error; err != nil {
		log.Printf("CreateOrder error: %v", err)
		return nil, err
	}
	return o, nil
}

func (s *store) ListOrders() ([]domain.Order, error) {
	var out []domain.Order
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("ListOrders error: %v", err)
		return nil, err
	}
	return out, nil
}

func (s *store) FindOrderByID(id int64) (*domain.Order, error) {
	var o domain.Order
	if err := s.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindOrderByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (s *store) UpdateOrderStatus(id int64, status domain.OrderStatus) error {
	return s.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}
