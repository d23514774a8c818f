package memory

import (
	"context"
	"sort"
	"sync"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// ClientStore is an in-memory implementation of storage.ClientStore.
type ClientStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Client // keyed by client_id
}

// NewClientStore creates a new in-memory client store.
func NewClientStore() *ClientStore {
	return &ClientStore{data: make(map[string]*domain.Client)}
}

// Insert adds a new client. Returns ErrDuplicateKey if client_id exists.
func (s *ClientStore) Insert(_ context.Context, c *domain.Client) error {
	if c == nil || c.ClientID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.ClientID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *c
	s.data[c.ClientID] = &copy
	return nil
}

// GetByID retrieves a client by its ID. Returns ErrNotFound if not exists.
func (s *ClientStore) GetByID(_ context.Context, clientID string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.data[clientID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copy := *c
	return &copy, nil
}

// GetAll retrieves all clients ordered by registered_at ASC.
func (s *ClientStore) GetAll(_ context.Context) ([]*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Client, 0, len(s.data))
	for _, c := range s.data {
		copy := *c
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].RegisteredAt != result[j].RegisteredAt {
			return result[i].RegisteredAt < result[j].RegisteredAt
		}
		return result[i].ClientID < result[j].ClientID
	})

	return result, nil
}

var _ storage.ClientStore = (*ClientStore)(nil)
