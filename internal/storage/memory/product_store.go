package memory

import (
	"context"
	"sort"
	"sync"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// ProductStore is an in-memory implementation of storage.ProductStore.
type ProductStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Product // keyed by product_id
}

// NewProductStore creates a new in-memory product store.
func NewProductStore() *ProductStore {
	return &ProductStore{data: make(map[string]*domain.Product)}
}

// Insert adds a new product. Returns ErrDuplicateKey if product_id exists.
func (s *ProductStore) Insert(_ context.Context, p *domain.Product) error {
	if p == nil || p.ProductID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.ProductID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *p
	s.data[p.ProductID] = &copy
	return nil
}

// GetByID retrieves a product by its ID. Returns ErrNotFound if not exists.
func (s *ProductStore) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[productID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copy := *p
	return &copy, nil
}

// GetByType retrieves the first product of a given type code in catalog
// order (name ASC). Returns ErrNotFound if no product has that type.
func (s *ProductStore) GetByType(_ context.Context, productType string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *domain.Product
	for _, p := range s.data {
		if p.Type != productType {
			continue
		}
		if match == nil || p.Name < match.Name {
			match = p
		}
	}

	if match == nil {
		return nil, storage.ErrNotFound
	}

	copy := *match
	return &copy, nil
}

// GetAll retrieves all products in catalog order (name ASC).
func (s *ProductStore) GetAll(_ context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Product, 0, len(s.data))
	for _, p := range s.data {
		copy := *p
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ProductID < result[j].ProductID
	})

	return result, nil
}

var _ storage.ProductStore = (*ProductStore)(nil)
