package domain

// Risk tier labels used by the static classifier and the recommender.
const (
	TierConservative = "Conservative"
	TierModerate     = "Moderate"
	TierAggressive   = "Aggressive"
)

// RiskProfile represents a catalog-managed risk tier with an inclusive
// score range. Corresponds to risk_profiles table in PostgreSQL.
//
// The catalog is expected to partition [0,100] without gaps or overlaps,
// but the store does not enforce it; lookups tolerate both by returning
// the first profile in catalog order whose range contains the score.
type RiskProfile struct {
	ProfileID   string // PRIMARY KEY, deterministic hash
	Name        string
	MinScore    int // inclusive
	MaxScore    int // inclusive
	Description string
}

// Contains reports whether score falls inside [MinScore, MaxScore].
func (p RiskProfile) Contains(score int) bool {
	return score >= p.MinScore && score <= p.MaxScore
}
