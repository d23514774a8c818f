package postgres

import (
	"context"
	"fmt"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

// ClientStore implements storage.ClientStore using PostgreSQL.
type ClientStore struct {
	pool *Pool
}

// NewClientStore creates a new ClientStore.
func NewClientStore(pool *Pool) *ClientStore {
	return &ClientStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ClientStore = (*ClientStore)(nil)

// Insert adds a new client. Returns ErrDuplicateKey if client_id exists.
func (s *ClientStore) Insert(ctx context.Context, c *domain.Client) error {
	query := `
		INSERT INTO clients (client_id, name, email, document, registered_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query, c.ClientID, c.Name, c.Email, c.Document, c.RegisteredAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its ID. Returns ErrNotFound if not exists.
func (s *ClientStore) GetByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, email, document, registered_at
		FROM clients
		WHERE client_id = $1
	`

	var c domain.Client
	err := s.pool.QueryRow(ctx, query, clientID).Scan(
		&c.ClientID, &c.Name, &c.Email, &c.Document, &c.RegisteredAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return &c, nil
}

// GetAll retrieves all clients ordered by registered_at ASC.
func (s *ClientStore) GetAll(ctx context.Context) ([]*domain.Client, error) {
	query := `
		SELECT client_id, name, email, document, registered_at
		FROM clients
		ORDER BY registered_at ASC, client_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ClientID, &c.Name, &c.Email, &c.Document, &c.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client rows: %w", err)
	}
	return clients, nil
}
