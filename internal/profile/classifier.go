// Package profile maps risk scores to risk tiers. Two classification paths
// exist and intentionally disagree at the boundaries: Classify uses fixed
// thresholds (35/65) while Match walks the catalog-managed score ranges.
// The recommender uses the fixed path; the client risk report uses the
// catalog path.
package profile

import "investment-panel/internal/domain"

// Static threshold boundaries for Classify.
const (
	conservativeMax = 35 // inclusive
	moderateMax     = 65 // inclusive
)

// Tier descriptions for the static path.
const (
	descConservative = "Low-risk profile: prioritizes capital preservation and liquidity."
	descModerate     = "Moderate-risk profile: accepts some risk in exchange for better returns."
	descAggressive   = "Aggressive-risk profile: high risk tolerance, pursues maximum returns."
)

// Classify maps a score to a tier label and description using fixed
// boundaries: <=35 Conservative, 36..65 Moderate, >=66 Aggressive.
// Total over all integers; pure.
func Classify(score int) (string, string) {
	switch {
	case score <= conservativeMax:
		return domain.TierConservative, descConservative
	case score <= moderateMax:
		return domain.TierModerate, descModerate
	default:
		return domain.TierAggressive, descAggressive
	}
}

// Match selects the first profile in catalog order whose inclusive
// [MinScore, MaxScore] range contains the score. Returns nil when no range
// matches or the catalog is empty; callers treat nil as missing data, not
// an error. First-match ordering makes overlapping ranges deterministic.
func Match(score int, profiles []*domain.RiskProfile) *domain.RiskProfile {
	for _, p := range profiles {
		if p != nil && p.Contains(score) {
			return p
		}
	}
	return nil
}

// TierRiskCode maps a tier label to the product risk code used for
// recommendation filtering. Returns 0 for unrecognized labels.
func TierRiskCode(tier string) int {
	switch tier {
	case domain.TierConservative:
		return domain.RiskLevelLow
	case domain.TierModerate:
		return domain.RiskLevelMedium
	case domain.TierAggressive:
		return domain.RiskLevelHigh
	default:
		return 0
	}
}
