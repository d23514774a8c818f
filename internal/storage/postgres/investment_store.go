package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// InvestmentStore implements storage.InvestmentStore using PostgreSQL.
type InvestmentStore struct {
	pool *Pool
}

// NewInvestmentStore creates a new InvestmentStore.
func NewInvestmentStore(pool *Pool) *InvestmentStore {
	return &InvestmentStore{pool: pool}
}

// Compile-time interface check.
var _ storage.InvestmentStore = (*InvestmentStore)(nil)

// Insert adds a new record. Returns ErrDuplicateKey if investment_id exists
// and ErrInvalidInput for a negative invested amount.
func (s *InvestmentStore) Insert(ctx context.Context, r *domain.InvestmentRecord) error {
	if r.AmountInvested < 0 {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO investment_records (
			investment_id, client_id, product_id,
			amount_invested, invested_at, term_months,
			crisis, amount_withdrawn, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.pool.Exec(ctx, query,
		r.InvestmentID, r.ClientID, r.ProductID,
		r.AmountInvested, r.InvestedAt, r.TermMonths,
		r.Crisis, r.AmountWithdrawn, r.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert investment record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by its ID. Returns ErrNotFound if not exists.
func (s *InvestmentStore) GetByID(ctx context.Context, investmentID string) (*domain.InvestmentRecord, error) {
	query := selectInvestments + ` WHERE investment_id = $1`

	row := s.pool.QueryRow(ctx, query, investmentID)
	var r domain.InvestmentRecord
	err := row.Scan(
		&r.InvestmentID, &r.ClientID, &r.ProductID,
		&r.AmountInvested, &r.InvestedAt, &r.TermMonths,
		&r.Crisis, &r.AmountWithdrawn, &r.CreatedAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get investment record by id: %w", err)
	}
	return &r, nil
}

// GetByClientID retrieves all records for a client, ordered by invested_at ASC.
func (s *InvestmentStore) GetByClientID(ctx context.Context, clientID string) ([]*domain.InvestmentRecord, error) {
	query := selectInvestments + `
		WHERE client_id = $1
		ORDER BY invested_at ASC, investment_id ASC
	`

	rows, err := s.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("get investment records by client id: %w", err)
	}
	defer rows.Close()

	return scanInvestmentRecords(rows)
}

// GetByClientProduct retrieves a client's records for one product.
func (s *InvestmentStore) GetByClientProduct(ctx context.Context, clientID, productID string) ([]*domain.InvestmentRecord, error) {
	query := selectInvestments + `
		WHERE client_id = $1 AND product_id = $2
		ORDER BY invested_at ASC, investment_id ASC
	`

	rows, err := s.pool.Query(ctx, query, clientID, productID)
	if err != nil {
		return nil, fmt.Errorf("get investment records by client/product: %w", err)
	}
	defer rows.Close()

	return scanInvestmentRecords(rows)
}

const selectInvestments = `
	SELECT
		investment_id, client_id, product_id,
		amount_invested, invested_at, term_months,
		crisis, amount_withdrawn, created_at
	FROM investment_records
`

func scanInvestmentRecords(rows pgx.Rows) ([]*domain.InvestmentRecord, error) {
	var records []*domain.InvestmentRecord
	for rows.Next() {
		var r domain.InvestmentRecord
		err := rows.Scan(
			&r.InvestmentID, &r.ClientID, &r.ProductID,
			&r.AmountInvested, &r.InvestedAt, &r.TermMonths,
			&r.Crisis, &r.AmountWithdrawn, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan investment record row: %w", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investment record rows: %w", err)
	}
	return records, nil
}
