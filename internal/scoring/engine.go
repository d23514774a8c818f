// Package scoring converts a client's investment history into a bounded
// risk score. The computation is a pure, order-independent fold: the same
// multiset of records always yields the same score.
package scoring

import (
	"errors"

	"investment-panel/internal/domain"
)

// ErrNoInvestments is returned when the history is empty. Callers must
// treat this as "insufficient data", not as a zero score.
var ErrNoInvestments = errors.New("no investment records to score")

// Score bounds. Totals outside the range are clamped.
const (
	MinScore = 0
	MaxScore = 100
)

// Point values per record.
const (
	pointsLargeAmount  = 20 // amount >= 500
	pointsMediumAmount = 10 // amount >= 100
	pointsSmallAmount  = 5  // amount > 0

	pointsLongTerm   = 15 // term >= 24 months
	pointsMediumTerm = 10 // term >= 12 months
	pointsShortTerm  = 5  // term present, < 12 months

	penaltyCrisisWithdrawal = 15 // crisis record with withdrawn > 0
	penaltyCrisisHold       = 5  // crisis record, nothing withdrawn
)

// ComputeScore accumulates points across all records and clamps the total
// to [MinScore, MaxScore]. Each record contributes independently:
//
//   - amount tier:  >=500 → +20, >=100 → +10, >0 → +5
//   - term tier (when present): >=24 → +15, >=12 → +10, else +5
//   - crisis flag: withdrawn > 0 → -15, otherwise -5
func ComputeScore(records []*domain.InvestmentRecord) (int, error) {
	if len(records) == 0 {
		return 0, ErrNoInvestments
	}

	score := 0
	for _, rec := range records {
		score += amountPoints(rec.AmountInvested)

		if rec.TermMonths != nil {
			score += termPoints(*rec.TermMonths)
		}

		if rec.Crisis {
			if rec.AmountWithdrawn != nil && *rec.AmountWithdrawn > 0 {
				score -= penaltyCrisisWithdrawal
			} else {
				score -= penaltyCrisisHold
			}
		}
	}

	return clamp(score), nil
}

func amountPoints(amount float64) int {
	switch {
	case amount >= 500:
		return pointsLargeAmount
	case amount >= 100:
		return pointsMediumAmount
	case amount > 0:
		return pointsSmallAmount
	default:
		return 0
	}
}

func termPoints(months int) int {
	switch {
	case months >= 24:
		return pointsLongTerm
	case months >= 12:
		return pointsMediumTerm
	default:
		return pointsShortTerm
	}
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
