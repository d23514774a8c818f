package memory

import (
	"context"
	"sort"
	"sync"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// InvestmentStore is an in-memory implementation of storage.InvestmentStore.
type InvestmentStore struct {
	mu   sync.RWMutex
	data map[string]*domain.InvestmentRecord // keyed by investment_id
}

// NewInvestmentStore creates a new in-memory investment record store.
func NewInvestmentStore() *InvestmentStore {
	return &InvestmentStore{data: make(map[string]*domain.InvestmentRecord)}
}

// Insert adds a new record. Returns ErrDuplicateKey if investment_id exists.
func (s *InvestmentStore) Insert(_ context.Context, r *domain.InvestmentRecord) error {
	if r == nil || r.InvestmentID == "" {
		return storage.ErrInvalidInput
	}
	if r.AmountInvested < 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.InvestmentID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *r
	s.data[r.InvestmentID] = &copy
	return nil
}

// GetByID retrieves a record by its ID. Returns ErrNotFound if not exists.
func (s *InvestmentStore) GetByID(_ context.Context, investmentID string) (*domain.InvestmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[investmentID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copy := *r
	return &copy, nil
}

// GetByClientID retrieves all records for a client, ordered by invested_at ASC.
func (s *InvestmentStore) GetByClientID(_ context.Context, clientID string) ([]*domain.InvestmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.InvestmentRecord
	for _, r := range s.data {
		if r.ClientID == clientID {
			copy := *r
			result = append(result, &copy)
		}
	}

	sortRecords(result)
	return result, nil
}

// GetByClientProduct retrieves a client's records for one product,
// ordered by invested_at ASC.
func (s *InvestmentStore) GetByClientProduct(_ context.Context, clientID, productID string) ([]*domain.InvestmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.InvestmentRecord
	for _, r := range s.data {
		if r.ClientID == clientID && r.ProductID == productID {
			copy := *r
			result = append(result, &copy)
		}
	}

	sortRecords(result)
	return result, nil
}

func sortRecords(records []*domain.InvestmentRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].InvestedAt != records[j].InvestedAt {
			return records[i].InvestedAt < records[j].InvestedAt
		}
		return records[i].InvestmentID < records[j].InvestmentID
	})
}

var _ storage.InvestmentStore = (*InvestmentStore)(nil)
