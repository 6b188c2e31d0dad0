// Package jsonfile is the local flat-file fallback backend, used when no
// MySQL host is configured. The whole dataset lives in memory and the file
// is rewritten on every write, which is only acceptable at small scale.
package jsonfile

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/repository"
)

type document struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Orders     []domain.Order    `json:"orders"`
}

type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

var _ repository.Store = (*Store)(nil)

// Open loads the store from path. A missing or malformed file is treated as
// an empty store, never a fatal error.
func Open(path string) *Store {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("jsonfile: read %s: %v, starting empty", path, err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.doc); err != nil {
		log.Printf("jsonfile: parse %s: %v, starting empty", path, err)
		s.doc = document{}
	}
	return s
}

// flush rewrites the whole file through a temp-file rename, so readers see
// either the prior state or the new one, never a torn write.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) ListCategories(activeOnly bool) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, 0, len(s.doc.Categories))
	for _, c := range s.doc.Categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (s *Store) CreateCategory(c *domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = nextID(len(s.doc.Categories), func(i int) int64 { return s.doc.Categories[i].ID })
	c.CreatedAt = time.Now().UTC()
	s.doc.Categories = append(s.doc.Categories, *c)
	if err := s.flush(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) UpdateCategory(id int64, c *domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			c.ID = id
			c.CreatedAt = s.doc.Categories[i].CreatedAt
			s.doc.Categories[i] = *c
			if err := s.flush(); err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteCategory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			s.doc.Categories = append(s.doc.Categories[:i], s.doc.Categories[i+1:]...)
			return s.flush()
		}
	}
	return nil
}

func (s *Store) ListProducts(availableOnly bool, categoryID *int64) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, 0, len(s.doc.Products))
	for _, p := range s.doc.Products {
		if availableOnly && !p.IsAvailable {
			continue
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) FindProductByID(id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.doc.Products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateProduct(p *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p.ID = nextID(len(s.doc.Products), func(i int) int64 { return s.doc.Products[i].ID })
	p.CreatedAt = now
	p.UpdatedAt = now
	s.doc.Products = append(s.doc.Products, *p)
	if err := s.flush(); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) UpdateProduct(id int64, p *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			p.ID = id
			p.CreatedAt = s.doc.Products[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			s.doc.Products[i] = *p
			if err := s.flush(); err != nil {
				return nil, err
			}
			return p, nil
		}
	}
	return nil, nil
}

func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			s.doc.Products = append(s.doc.Products[:i], s.doc.Products[i+1:]...)
			return s.flush()
		}
	}
	return nil
}

func (s *Store) CreateOrder(o *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = nextID(len(s.doc.Orders), func(i int) int64 { return s.doc.Orders[i].ID })
	// newest first
	s.doc.Orders = append([]domain.Order{*o}, s.doc.Orders...)
	if err := s.flush(); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Store) ListOrders() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.doc.Orders))
	copy(out, s.doc.Orders)
	return out, nil
}

func (s *Store) FindOrderByID(id int64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.doc.Orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateOrderStatus(id int64, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Orders {
		if s.doc.Orders[i].ID == id {
			s.doc.Orders[i].Status = status
			s.doc.Orders[i].UpdatedAt = time.Now().UTC()
			return s.flush()
		}
	}
	return nil
}

func nextID(n int, idAt func(int) int64) int64 {
	var max int64
	for i := 0; i < n; i++ {
		if id := idAt(i); id > max {
			max = id
		}
	}
	return max + 1
}
