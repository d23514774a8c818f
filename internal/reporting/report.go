package reporting

import "time"

// Report is a per-client advisory summary.
type Report struct {
	GeneratedAt time.Time

	ClientID   string
	ClientName string

	// Assessment is nil when the client has no investment history.
	Assessment *AssessmentSection

	History     HistorySummary
	Simulations []SimulationRow

	// Recommendations is empty when the client has no history or no
	// product matches the tier.
	Recommendations []RecommendationRow

	// DayGroups aggregates all stored simulations per (day, product).
	DayGroups []DayGroupRow
}

// AssessmentSection describes the client's risk assessment.
type AssessmentSection struct {
	Score       int
	Tier        string
	Description string

	// CatalogTier is empty when no catalog range contains the score.
	CatalogTier string
}

// HistorySummary condenses a client's investment history.
type HistorySummary struct {
	TotalRecords   int
	TotalInvested  float64
	TotalWithdrawn float64
	CrisisRecords  int
}

// SimulationRow is one persisted simulation in display form.
type SimulationRow struct {
	Ref           string // short receipt code derived from the simulation id
	ProductName   string
	InitialAmount float64
	TermMonths    int
	FinalAmount   float64
	ReturnPercent float64
	SimulatedAt   int64 // Unix ms
}

// RecommendationRow is one recommended product in display form.
type RecommendationRow struct {
	Name            string
	Type            string
	AnnualYieldRate float64
	RiskLabel       string
}

// DayGroupRow is one (day, product) aggregate in display form.
type DayGroupRow struct {
	Day              string
	ProductName      string
	SimulationCount  int
	AvgInitialAmount float64
	AvgFinalAmount   float64
}
