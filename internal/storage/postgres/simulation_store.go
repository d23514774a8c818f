package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// SimulationStore implements storage.SimulationStore using PostgreSQL.
type SimulationStore struct {
	pool *Pool
}

// NewSimulationStore creates a new SimulationStore.
func NewSimulationStore(pool *Pool) *SimulationStore {
	return &SimulationStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SimulationStore = (*SimulationStore)(nil)

// Insert adds a new result. Returns ErrDuplicateKey if simulation_id exists.
func (s *SimulationStore) Insert(ctx context.Context, r *domain.SimulationResult) error {
	query := `
		INSERT INTO simulation_results (
			simulation_id, client_id, product_name,
			initial_amount, term_months, final_amount,
			effective_yield, simulated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		r.SimulationID, r.ClientID, r.ProductName,
		r.InitialAmount, r.TermMonths, r.FinalAmount,
		r.EffectiveYield, r.SimulatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert simulation result: %w", err)
	}
	return nil
}

// GetByID retrieves a result by its ID. Returns ErrNotFound if not exists.
func (s *SimulationStore) GetByID(ctx context.Context, simulationID string) (*domain.SimulationResult, error) {
	query := selectSimulations + ` WHERE simulation_id = $1`

	row := s.pool.QueryRow(ctx, query, simulationID)
	var r domain.SimulationResult
	err := row.Scan(
		&r.SimulationID, &r.ClientID, &r.ProductName,
		&r.InitialAmount, &r.TermMonths, &r.FinalAmount,
		&r.EffectiveYield, &r.SimulatedAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get simulation result by id: %w", err)
	}
	return &r, nil
}

// GetByClientID retrieves all results for a client, ordered by simulated_at ASC.
func (s *SimulationStore) GetByClientID(ctx context.Context, clientID string) ([]*domain.SimulationResult, error) {
	query := selectSimulations + `
		WHERE client_id = $1
		ORDER BY simulated_at ASC, simulation_id ASC
	`

	rows, err := s.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("get simulation results by client id: %w", err)
	}
	defer rows.Close()

	return scanSimulationResults(rows)
}

// GetAll retrieves all results ordered by simulated_at ASC.
func (s *SimulationStore) GetAll(ctx context.Context) ([]*domain.SimulationResult, error) {
	query := selectSimulations + ` ORDER BY simulated_at ASC, simulation_id ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all simulation results: %w", err)
	}
	defer rows.Close()

	return scanSimulationResults(rows)
}

// GetGroupedByDayProduct aggregates results per (UTC day, product name).
func (s *SimulationStore) GetGroupedByDayProduct(ctx context.Context) ([]*domain.SimulationDayGroup, error) {
	query := `
		SELECT
			to_char(to_timestamp(simulated_at / 1000.0) AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			product_name,
			COUNT(*) AS simulation_count,
			AVG(initial_amount) AS avg_initial_amount,
			AVG(final_amount) AS avg_final_amount
		FROM simulation_results
		GROUP BY day, product_name
		ORDER BY day ASC, product_name ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get grouped simulation results: %w", err)
	}
	defer rows.Close()

	var groups []*domain.SimulationDayGroup
	for rows.Next() {
		var g domain.SimulationDayGroup
		if err := rows.Scan(&g.Day, &g.ProductName, &g.SimulationCount, &g.AvgInitialAmount, &g.AvgFinalAmount); err != nil {
			return nil, fmt.Errorf("scan simulation group row: %w", err)
		}
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulation group rows: %w", err)
	}
	return groups, nil
}

const selectSimulations = `
	SELECT
		simulation_id, client_id, product_name,
		initial_amount, term_months, final_amount,
		effective_yield, simulated_at
	FROM simulation_results
`

func scanSimulationResults(rows pgx.Rows) ([]*domain.SimulationResult, error) {
	var results []*domain.SimulationResult
	for rows.Next() {
		var r domain.SimulationResult
		err := rows.Scan(
			&r.SimulationID, &r.ClientID, &r.ProductName,
			&r.InitialAmount, &r.TermMonths, &r.FinalAmount,
			&r.EffectiveYield, &r.SimulatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan simulation result row: %w", err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulation result rows: %w", err)
	}
	return results, nil
}
