package domain

// RecommendedProduct is a catalog product projected for presentation after
// matching a client's risk tier. Not persisted.
type RecommendedProduct struct {
	ProductID       string
	Name            string
	Type            string
	AnnualYieldRate float64
	RiskLabel       string // Low | Medium | High | Unknown
}
