// Package recommendation matches catalog products to a client's risk
// tier. Matching is a pure function over a score and a product list; the
// Runner resolves both from storage.
package recommendation

import (
	"investment-panel/internal/domain"
	"investment-panel/internal/profile"
)

// Match selects every catalog product whose risk level exactly equals the
// code for the tier implied by score. A tier without a numeric code (or a
// catalog with no products at that code) yields an empty slice, never an
// error.
func Match(score int, products []*domain.Product) []domain.RecommendedProduct {
	tier, _ := profile.Classify(score)
	return MatchTier(tier, products)
}

// MatchTier is Match with the tier already resolved.
func MatchTier(tier string, products []*domain.Product) []domain.RecommendedProduct {
	code := profile.TierRiskCode(tier)

	matched := make([]domain.RecommendedProduct, 0)
	if code == 0 {
		return matched
	}

	for _, p := range products {
		if p.RiskLevel != code {
			continue
		}
		matched = append(matched, domain.RecommendedProduct{
			ProductID:       p.ProductID,
			Name:            p.Name,
			Type:            p.Type,
			AnnualYieldRate: p.AnnualYieldRate,
			RiskLabel:       domain.RiskLabel(p.RiskLevel),
		})
	}
	return matched
}
