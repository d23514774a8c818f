package profile

import (
	"context"
	"errors"

	"investment-panel/internal/domain"
	"investment-panel/internal/scoring"
	"investment-panel/internal/storage"
)

// Assessment is the outcome of scoring and classifying one client.
type Assessment struct {
	ClientID    string
	Score       int
	Tier        string // static-threshold tier, always set
	Description string

	// CatalogProfile is the catalog-driven match for the same score.
	// Nil when the profile catalog is empty or no range contains the score.
	CatalogProfile *domain.RiskProfile
}

// Runner wires the scoring engine and both classification paths to storage.
type Runner struct {
	investments storage.InvestmentStore
	profiles    storage.RiskProfileStore
}

// NewRunner creates a risk profile runner.
func NewRunner(investments storage.InvestmentStore, profiles storage.RiskProfileStore) *Runner {
	return &Runner{investments: investments, profiles: profiles}
}

// Run computes the client's risk assessment from its investment history.
// Returns (nil, nil) when the client has no history: insufficient data is an
// absent result, not an error. Storage failures propagate unchanged.
func (r *Runner) Run(ctx context.Context, clientID string) (*Assessment, error) {
	records, err := r.investments.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	score, err := scoring.ComputeScore(records)
	if err != nil {
		if errors.Is(err, scoring.ErrNoInvestments) {
			return nil, nil
		}
		return nil, err
	}

	tier, desc := Classify(score)

	catalog, err := r.profiles.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Assessment{
		ClientID:       clientID,
		Score:          score,
		Tier:           tier,
		Description:    desc,
		CatalogProfile: Match(score, catalog),
	}, nil
}
