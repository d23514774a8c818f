package recommendation

import (
	"context"
	"errors"

	"investment-panel/internal/domain"
	"investment-panel/internal/scoring"
	"investment-panel/internal/storage"
)

// Runner scores a client from its history and matches the catalog.
type Runner struct {
	investments storage.InvestmentStore
	products    storage.ProductStore
}

// NewRunner creates a recommendation runner.
func NewRunner(investments storage.InvestmentStore, products storage.ProductStore) *Runner {
	return &Runner{investments: investments, products: products}
}

// Run returns the products recommended for a client. Empty history and
// empty catalog both resolve to an empty list; recommendations degrade to
// nothing rather than failing.
func (r *Runner) Run(ctx context.Context, clientID string) ([]domain.RecommendedProduct, error) {
	records, err := r.investments.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	score, err := scoring.ComputeScore(records)
	if err != nil {
		if errors.Is(err, scoring.ErrNoInvestments) {
			return []domain.RecommendedProduct{}, nil
		}
		return nil, err
	}

	products, err := r.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return Match(score, products), nil
}
