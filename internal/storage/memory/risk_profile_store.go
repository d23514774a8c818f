package memory

import (
	"context"
	"sort"
	"sync"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// RiskProfileStore is an in-memory implementation of storage.RiskProfileStore.
type RiskProfileStore struct {
	mu   sync.RWMutex
	data map[string]*domain.RiskProfile // keyed by profile_id
}

// NewRiskProfileStore creates a new in-memory risk profile store.
func NewRiskProfileStore() *RiskProfileStore {
	return &RiskProfileStore{data: make(map[string]*domain.RiskProfile)}
}

// Insert adds a new profile. Returns ErrDuplicateKey if profile_id exists.
func (s *RiskProfileStore) Insert(_ context.Context, p *domain.RiskProfile) error {
	if p == nil || p.ProfileID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.ProfileID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *p
	s.data[p.ProfileID] = &copy
	return nil
}

// GetAll retrieves all profiles in catalog order (min_score ASC).
func (s *RiskProfileStore) GetAll(_ context.Context) ([]*domain.RiskProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.RiskProfile, 0, len(s.data))
	for _, p := range s.data {
		copy := *p
		result = append(result, &copy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].MinScore != result[j].MinScore {
			return result[i].MinScore < result[j].MinScore
		}
		return result[i].ProfileID < result[j].ProfileID
	})

	return result, nil
}

var _ storage.RiskProfileStore = (*RiskProfileStore)(nil)
