package postgres

import (
	"context"
	"fmt"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// RiskProfileStore implements storage.RiskProfileStore using PostgreSQL.
type RiskProfileStore struct {
	pool *Pool
}

// NewRiskProfileStore creates a new RiskProfileStore.
func NewRiskProfileStore(pool *Pool) *RiskProfileStore {
	return &RiskProfileStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RiskProfileStore = (*RiskProfileStore)(nil)

// Insert adds a new profile. Returns ErrDuplicateKey if profile_id exists.
func (s *RiskProfileStore) Insert(ctx context.Context, p *domain.RiskProfile) error {
	query := `
		INSERT INTO risk_profiles (profile_id, name, min_score, max_score, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query, p.ProfileID, p.Name, p.MinScore, p.MaxScore, p.Description)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert risk profile: %w", err)
	}
	return nil
}

// GetAll retrieves all profiles in catalog order (min_score ASC).
func (s *RiskProfileStore) GetAll(ctx context.Context) ([]*domain.RiskProfile, error) {
	query := `
		SELECT profile_id, name, min_score, max_score, description
		FROM risk_profiles
		ORDER BY min_score ASC, profile_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all risk profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.RiskProfile
	for rows.Next() {
		var p domain.RiskProfile
		if err := rows.Scan(&p.ProfileID, &p.Name, &p.MinScore, &p.MaxScore, &p.Description); err != nil {
			return nil, fmt.Errorf("scan risk profile row: %w", err)
		}
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate risk profile rows: %w", err)
	}
	return profiles, nil
}
