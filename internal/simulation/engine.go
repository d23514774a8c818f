// Package simulation projects hypothetical investment outcomes under
// product-specific growth and tax rules. The engine is pure and holds no
// state between calls; persistence is the Runner's concern.
package simulation

import (
	"errors"
	"math"

	"investment-panel/internal/domain"
)

// ErrInvalidInput is returned for a negative principal or term. Detected
// before any computation proceeds.
var ErrInvalidInput = errors.New("simulation: principal and term must be non-negative")

// Savings products grow at a fixed monthly rate regardless of the
// catalog's annual yield.
const savingsMonthlyRate = 0.005

// Tax rates applied to the gain (never the principal), by product type.
const (
	taxRateCD          = 0.15
	taxRateFixedIncome = 0.20
	taxRateMultiStrat  = 0.20
	taxRateEquity      = 0.15
)

// Projection is the outcome of one engine run.
type Projection struct {
	FinalAmount    float64
	EffectiveYield float64 // (final - principal) / principal; 0 when principal == 0
}

// Project applies compound growth and the product type's tax drag:
//
//	final = principal * (1 + monthlyRate)^termMonths
//	final -= taxRate * (final - principal)
//
// Savings use a fixed 0.5% monthly rate; every other type derives the
// monthly rate as annualYieldRate / 12. Unrecognized types compound at the
// derived rate with no tax.
func Project(productType string, annualYieldRate, principal float64, termMonths int) (Projection, error) {
	if principal < 0 || termMonths < 0 {
		return Projection{}, ErrInvalidInput
	}

	monthlyRate := annualYieldRate / 12
	taxRate := 0.0

	switch productType {
	case domain.ProductTypeSavings:
		monthlyRate = savingsMonthlyRate
	case domain.ProductTypeCD:
		taxRate = taxRateCD
	case domain.ProductTypeFixedIncomeFund:
		taxRate = taxRateFixedIncome
	case domain.ProductTypeMultiStrategyFund:
		taxRate = taxRateMultiStrat
	case domain.ProductTypeEquity:
		taxRate = taxRateEquity
	}

	final := principal * math.Pow(1+monthlyRate, float64(termMonths))
	gain := final - principal
	final -= gain * taxRate

	yield := 0.0
	if principal > 0 {
		yield = (final - principal) / principal
	}

	return Projection{FinalAmount: final, EffectiveYield: yield}, nil
}
