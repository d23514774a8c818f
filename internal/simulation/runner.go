package simulation

import (
	"context"
	"time"

	"investment-panel/internal/domain"
	"investment-panel/internal/idhash"
	"investment-panel/internal/storage"
)

// Runner resolves products, runs the engine and persists results.
type Runner struct {
	products    storage.ProductStore
	simulations storage.SimulationStore
	now         func() time.Time
}

// RunnerOptions contains configuration for creating a Runner.
type RunnerOptions struct {
	ProductStore    storage.ProductStore
	SimulationStore storage.SimulationStore

	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// NewRunner creates a simulation runner.
func NewRunner(opts RunnerOptions) *Runner {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		products:    opts.ProductStore,
		simulations: opts.SimulationStore,
		now:         now,
	}
}

// Run simulates investing amount for termMonths in the first catalog
// product of the given type. Steps:
//
//  1. Validate amount and term (ErrInvalidInput)
//  2. Resolve product by type (propagates storage.ErrNotFound)
//  3. Project final amount and effective yield
//  4. Snapshot the product name and persist the result
//
// The persisted result is returned; identical inputs at the same instant
// produce the same simulation_id and are rejected as duplicates.
func (r *Runner) Run(ctx context.Context, clientID, productType string, amount float64, termMonths int) (*domain.SimulationResult, error) {
	if amount < 0 || termMonths < 0 {
		return nil, ErrInvalidInput
	}

	product, err := r.products.GetByType(ctx, productType)
	if err != nil {
		return nil, err // propagates storage.ErrNotFound
	}

	proj, err := Project(product.Type, product.AnnualYieldRate, amount, termMonths)
	if err != nil {
		return nil, err
	}

	simulatedAt := r.now().UnixMilli()
	result := &domain.SimulationResult{
		SimulationID:   idhash.ComputeSimulationID(clientID, product.Name, amount, termMonths, simulatedAt),
		ClientID:       clientID,
		ProductName:    product.Name,
		InitialAmount:  amount,
		TermMonths:     termMonths,
		FinalAmount:    proj.FinalAmount,
		EffectiveYield: proj.EffectiveYield,
		SimulatedAt:    simulatedAt,
	}

	if r.simulations != nil {
		if err := r.simulations.Insert(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Profitability is the verdict for a persisted simulation at a threshold.
type Profitability struct {
	Simulation    *domain.SimulationResult
	ReturnPercent float64
	Profitable    bool
}

// Profitability looks up a persisted simulation and checks its yield
// against the minimum percentage. Propagates storage.ErrNotFound for an
// unknown simulation id.
func (r *Runner) Profitability(ctx context.Context, simulationID string, minPercent float64) (*Profitability, error) {
	result, err := r.simulations.GetByID(ctx, simulationID)
	if err != nil {
		return nil, err
	}

	return &Profitability{
		Simulation:    result,
		ReturnPercent: result.ReturnPercent(),
		Profitable:    result.IsProfitable(minPercent),
	}, nil
}
