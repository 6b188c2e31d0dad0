package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/repository"
)

const (
	catalogCacheTTL  = time.Minute
	categoriesKey    = "catalog:categories"
	productsKey      = "catalog:products"
	productsByCatFmt = "catalog:products:cat:%d"
)

// CatalogService serves the public menu and the admin CRUD behind it. Reads
// go through an optional redis cache; concurrent cache misses for the same
// key are collapsed through singleflight so the store sees one query.
type CatalogService struct {
	store       repository.Store
	redisClient *redis.Client
	sf          singleflight.Group
}

func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Categories returns active categories in display order. Store failures
// degrade to an empty list so menu browsing never hard-fails.
func (s *CatalogService) Categories(ctx context.Context) []domain.Category {
	var out []domain.Category
	if s.cacheGet(ctx, categoriesKey, &out) {
		return out
	}
	v, err, _ := s.sf.Do(categoriesKey, func() (any, error) {
		return s.store.ListCategories(true)
	})
	if err != nil {
		log.Printf("catalog: list categories: %v", err)
		return []domain.Category{}
	}
	out = v.([]domain.Category)
	if out == nil {
		out = []domain.Category{}
	}
	s.cacheSet(ctx, categoriesKey, out)
	return out
}

// Products returns available products sorted by name, optionally filtered by
// category. Same degradation rules as Categories.
func (s *CatalogService) Products(ctx context.Context, categoryID *int64) []domain.Product {
	key := productsKey
	if categoryID != nil {
		key = fmt.Sprintf(productsByCatFmt, *categoryID)
	}
	var out []domain.Product
	if s.cacheGet(ctx, key, &out) {
		return out
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.store.ListProducts(true, categoryID)
	})
	if err != nil {
		log.Printf("catalog: list products: %v", err)
		return []domain.Product{}
	}
	out = v.([]domain.Product)
	if out == nil {
		out = []domain.Product{}
	}
	s.cacheSet(ctx, key, out)
	return out
}

func (s *CatalogService) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	created, err := s.store.CreateCategory(c)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.invalidate(ctx, categoriesKey)
	return created, nil
}

// UpdateCategory returns (nil, nil) for a missing id; admin updates are
// idempotent no-ops, never errors.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, c *domain.Category) (*domain.Category, error) {
	updated, err := s.store.UpdateCategory(id, c)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	s.invalidate(ctx, categoriesKey)
	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.store.DeleteCategory(id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.invalidate(ctx, categoriesKey)
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := s.store.CreateProduct(p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	s.invalidateProducts(ctx, p.CategoryID)
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, p *domain.Product) (*domain.Product, error) {
	updated, err := s.store.UpdateProduct(id, p)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidateProducts(ctx, p.CategoryID)
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	p, err := s.store.FindProductByID(id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if err := s.store.DeleteProduct(id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if p != nil {
		s.invalidateProducts(ctx, p.CategoryID)
	}
	return nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.redisClient == nil {
		return false
	}
	cached, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), dest) == nil
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, v any) {
	if s.redisClient == nil {
		return
	}
	if data, err := json.Marshal(v); err == nil {
		s.redisClient.Set(ctx, key, data, catalogCacheTTL)
	}
}

func (s *CatalogService) invalidate(ctx context.Context, keys ...string) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, keys...)
}

func (s *CatalogService) invalidateProducts(ctx context.Context, categoryID int64) {
	s.invalidate(ctx, productsKey, fmt.Sprintf(productsByCatFmt, categoryID))
}
