package domain

// SimulationDayGroup aggregates simulation results per calendar day and
// product name. Derived, not persisted.
type SimulationDayGroup struct {
	Day              string  // "2006-01-02" in UTC
	ProductName      string
	SimulationCount  int
	AvgInitialAmount float64
	AvgFinalAmount   float64
}
