package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// SimulationStore is an in-memory implementation of storage.SimulationStore.
type SimulationStore struct {
	mu   sync.RWMutex
	data map[string]*domain.SimulationResult // keyed by simulation_id
}

// NewSimulationStore creates a new in-memory simulation result store.
func NewSimulationStore() *SimulationStore {
	return &SimulationStore{data: make(map[string]*domain.SimulationResult)}
}

// Insert adds a new result. Returns ErrDuplicateKey if simulation_id exists.
func (s *SimulationStore) Insert(_ context.Context, r *domain.SimulationResult) error {
	if r == nil || r.SimulationID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.SimulationID]; exists {
		return storage.ErrDuplicateKey
	}

	copy := *r
	s.data[r.SimulationID] = &copy
	return nil
}

// GetByID retrieves a result by its ID. Returns ErrNotFound if not exists.
func (s *SimulationStore) GetByID(_ context.Context, simulationID string) (*domain.SimulationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[simulationID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	copy := *r
	return &copy, nil
}

// GetByClientID retrieves all results for a client, ordered by simulated_at ASC.
func (s *SimulationStore) GetByClientID(_ context.Context, clientID string) ([]*domain.SimulationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.SimulationResult
	for _, r := range s.data {
		if r.ClientID == clientID {
			copy := *r
			result = append(result, &copy)
		}
	}

	sortResults(result)
	return result, nil
}

// GetAll retrieves all results ordered by simulated_at ASC.
func (s *SimulationStore) GetAll(_ context.Context) ([]*domain.SimulationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.SimulationResult, 0, len(s.data))
	for _, r := range s.data {
		copy := *r
		result = append(result, &copy)
	}

	sortResults(result)
	return result, nil
}

// GetGroupedByDayProduct aggregates results per (UTC day, product name),
// ordered by day ASC, product name ASC.
func (s *SimulationStore) GetGroupedByDayProduct(_ context.Context) ([]*domain.SimulationDayGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type key struct {
		day     string
		product string
	}

	sums := make(map[key]*domain.SimulationDayGroup)
	for _, r := range s.data {
		day := time.UnixMilli(r.SimulatedAt).UTC().Format("2006-01-02")
		k := key{day: day, product: r.ProductName}

		g, exists := sums[k]
		if !exists {
			g = &domain.SimulationDayGroup{Day: day, ProductName: r.ProductName}
			sums[k] = g
		}
		g.SimulationCount++
		g.AvgInitialAmount += r.InitialAmount
		g.AvgFinalAmount += r.FinalAmount
	}

	result := make([]*domain.SimulationDayGroup, 0, len(sums))
	for _, g := range sums {
		g.AvgInitialAmount /= float64(g.SimulationCount)
		g.AvgFinalAmount /= float64(g.SimulationCount)
		result = append(result, g)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].ProductName < result[j].ProductName
	})

	return result, nil
}

func sortResults(results []*domain.SimulationResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].SimulatedAt != results[j].SimulatedAt {
			return results[i].SimulatedAt < results[j].SimulatedAt
		}
		return results[i].SimulationID < results[j].SimulationID
	})
}

var _ storage.SimulationStore = (*SimulationStore)(nil)
