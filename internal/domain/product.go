package domain

// Product type codes. Closed set plus a default branch for anything the
// catalog introduces later.
const (
	ProductTypeSavings           = "SAVINGS"             // poupança-like, fixed monthly rate
	ProductTypeCD                = "CD"                  // bank certificates (CDB/LCI/LCA)
	ProductTypeFixedIncomeFund   = "FIXED_INCOME_FUND"
	ProductTypeMultiStrategyFund = "MULTI_STRATEGY_FUND"
	ProductTypeEquity            = "EQUITY"              // equity funds and direct equities
)

// Risk level codes shared by products and recommendations.
const (
	RiskLevelLow    = 10
	RiskLevelMedium = 20
	RiskLevelHigh   = 30
)

// Risk level labels.
const (
	RiskLabelLow     = "Low"
	RiskLabelMedium  = "Medium"
	RiskLabelHigh    = "High"
	RiskLabelUnknown = "Unknown"
)

// RiskLabel maps a numeric risk code to its human label.
// Any code outside {10, 20, 30} is Unknown.
func RiskLabel(code int) string {
	switch code {
	case RiskLevelLow:
		return RiskLabelLow
	case RiskLevelMedium:
		return RiskLabelMedium
	case RiskLevelHigh:
		return RiskLabelHigh
	default:
		return RiskLabelUnknown
	}
}

// Product represents an investment product in the catalog. Immutable
// reference data. Corresponds to products table in PostgreSQL.
type Product struct {
	ProductID       string  // PRIMARY KEY, deterministic hash
	Name            string
	Type            string  // one of the ProductType* codes
	AnnualYieldRate float64 // fraction, 0.08 = 8% per year
	RiskLevel       int     // 10 | 20 | 30
	Liquidity       string  // free text, e.g. "daily", "D+30"
	Taxation        string  // free text
	Guarantee       string  // free text
	Description     string
}
