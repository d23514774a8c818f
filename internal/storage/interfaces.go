package storage

import (
	"context"

	"investment-panel/internal/domain"
)

// ClientStore provides access to clients storage.
type ClientStore interface {
	// Insert adds a new client. Returns ErrDuplicateKey if client_id exists.
	Insert(ctx context.Context, c *domain.Client) error

	// GetByID retrieves a client by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, clientID string) (*domain.Client, error)

	// GetAll retrieves all clients ordered by registered_at ASC.
	GetAll(ctx context.Context) ([]*domain.Client, error)
}

// InvestmentStore provides access to investment_records storage.
// Records are append-only: a withdrawal is a new record, not an update.
type InvestmentStore interface {
	// Insert adds a new record. Returns ErrDuplicateKey if investment_id exists.
	Insert(ctx context.Context, r *domain.InvestmentRecord) error

	// GetByID retrieves a record by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, investmentID string) (*domain.InvestmentRecord, error)

	// GetByClientID retrieves all records for a client, ordered by
	// invested_at ASC. May return an empty slice.
	GetByClientID(ctx context.Context, clientID string) ([]*domain.InvestmentRecord, error)

	// GetByClientProduct retrieves a client's records for one product,
	// ordered by invested_at ASC.
	GetByClientProduct(ctx context.Context, clientID, productID string) ([]*domain.InvestmentRecord, error)
}

// ProductStore provides access to the products catalog.
type ProductStore interface {
	// Insert adds a new product. Returns ErrDuplicateKey if product_id exists.
	Insert(ctx context.Context, p *domain.Product) error

	// GetByID retrieves a product by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetByType retrieves the first product of a given type code, in catalog
	// order. Returns ErrNotFound if no product has that type.
	GetByType(ctx context.Context, productType string) (*domain.Product, error)

	// GetAll retrieves all products in catalog order (name ASC).
	GetAll(ctx context.Context) ([]*domain.Product, error)
}

// RiskProfileStore provides access to the risk_profiles catalog.
type RiskProfileStore interface {
	// Insert adds a new profile. Returns ErrDuplicateKey if profile_id exists.
	Insert(ctx context.Context, p *domain.RiskProfile) error

	// GetAll retrieves all profiles in catalog order (min_score ASC).
	// May return an empty slice.
	GetAll(ctx context.Context) ([]*domain.RiskProfile, error)
}

// SimulationStore provides access to simulation_results storage.
// Results are immutable once written.
type SimulationStore interface {
	// Insert adds a new result. Returns ErrDuplicateKey if simulation_id exists.
	Insert(ctx context.Context, s *domain.SimulationResult) error

	// GetByID retrieves a result by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, simulationID string) (*domain.SimulationResult, error)

	// GetByClientID retrieves all results for a client, ordered by
	// simulated_at ASC.
	GetByClientID(ctx context.Context, clientID string) ([]*domain.SimulationResult, error)

	// GetAll retrieves all results ordered by simulated_at ASC.
	GetAll(ctx context.Context) ([]*domain.SimulationResult, error)

	// GetGroupedByDayProduct aggregates results per (UTC day, product name),
	// ordered by day ASC, product name ASC.
	GetGroupedByDayProduct(ctx context.Context) ([]*domain.SimulationDayGroup, error)
}

// TelemetryStore records per-call telemetry outside the pure core.
type TelemetryStore interface {
	// Insert appends one call record. Telemetry is best-effort; callers log
	// and drop the error instead of failing the request.
	Insert(ctx context.Context, rec *domain.CallRecord) error

	// GetByService retrieves all call records for a service, ordered by
	// called_at ASC.
	GetByService(ctx context.Context, service string) ([]*domain.CallRecord, error)
}
