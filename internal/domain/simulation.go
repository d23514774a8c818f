package domain

// SimulationResult represents one projected investment outcome.
// ProductName is a snapshot of the product's name at simulation time, not a
// live reference. Created once per simulation call; never mutated.
// Corresponds to simulation_results table in PostgreSQL.
type SimulationResult struct {
	SimulationID   string  // PRIMARY KEY, deterministic hash
	ClientID       string
	ProductName    string  // snapshot
	InitialAmount  float64
	TermMonths     int
	FinalAmount    float64 // after tax drag on the gain
	EffectiveYield float64 // (FinalAmount - InitialAmount) / InitialAmount; 0 when InitialAmount == 0
	SimulatedAt    int64   // Unix timestamp in milliseconds
}

// ReturnPercent expresses the effective yield as a percentage.
func (s SimulationResult) ReturnPercent() float64 {
	return s.EffectiveYield * 100
}

// IsProfitable reports whether the simulated yield, as a percentage, meets
// the given minimum. Monotonic in minPercent: profitable at T implies
// profitable at every threshold below T.
func (s SimulationResult) IsProfitable(minPercent float64) bool {
	return s.ReturnPercent() >= minPercent
}
