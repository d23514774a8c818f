package memory

import (
	"context"
	"sort"
	"sync"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// TelemetryStore is an in-memory implementation of storage.TelemetryStore.
// Call records have no natural key; every insert appends.
type TelemetryStore struct {
	mu   sync.RWMutex
	data []*domain.CallRecord
}

// NewTelemetryStore creates a new in-memory telemetry store.
func NewTelemetryStore() *TelemetryStore {
	return &TelemetryStore{}
}

// Insert appends one call record.
func (s *TelemetryStore) Insert(_ context.Context, rec *domain.CallRecord) error {
	if rec == nil || rec.Service == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *rec
	s.data = append(s.data, &copy)
	return nil
}

// GetByService retrieves all call records for a service, ordered by called_at ASC.
func (s *TelemetryStore) GetByService(_ context.Context, service string) ([]*domain.CallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.CallRecord
	for _, rec := range s.data {
		if rec.Service == service {
			copy := *rec
			result = append(result, &copy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CalledAt < result[j].CalledAt
	})

	return result, nil
}

var _ storage.TelemetryStore = (*TelemetryStore)(nil)
