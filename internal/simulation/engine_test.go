package simulation

import (
	"errors"
	"math"
	"testing"

	"investment-panel/internal/domain"
)

const tolerance = 1e-9

func TestProject_CDMatchesClosedForm(t *testing.T) {
	// 1000 compounded monthly at 0.08/12 for 12 periods, minus 15% of gain.
	proj, err := Project(domain.ProductTypeCD, 0.08, 1000, 12)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	gross := 1000 * math.Pow(1+0.08/12, 12)
	wantFinal := gross - 0.15*(gross-1000)
	if math.Abs(proj.FinalAmount-wantFinal) > tolerance {
		t.Errorf("FinalAmount = %.10f, want %.10f", proj.FinalAmount, wantFinal)
	}

	wantYield := (wantFinal - 1000) / 1000
	if math.Abs(proj.EffectiveYield-wantYield) > tolerance {
		t.Errorf("EffectiveYield = %.10f, want %.10f", proj.EffectiveYield, wantYield)
	}
}

func TestProject_SavingsIgnoresAnnualRate(t *testing.T) {
	// Savings always grow 0.5% per month, untaxed.
	low, err := Project(domain.ProductTypeSavings, 0.01, 1000, 12)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	high, err := Project(domain.ProductTypeSavings, 0.50, 1000, 12)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if low.FinalAmount != high.FinalAmount {
		t.Errorf("savings projection depends on annual rate: %f vs %f", low.FinalAmount, high.FinalAmount)
	}

	want := 1000 * math.Pow(1.005, 12)
	if math.Abs(low.FinalAmount-want) > tolerance {
		t.Errorf("FinalAmount = %.10f, want %.10f (no tax)", low.FinalAmount, want)
	}
}

func TestProject_TaxRatesByType(t *testing.T) {
	gross := 1000 * math.Pow(1+0.12/12, 24)
	gain := gross - 1000

	tests := []struct {
		productType string
		taxRate     float64
	}{
		{domain.ProductTypeCD, 0.15},
		{domain.ProductTypeFixedIncomeFund, 0.20},
		{domain.ProductTypeMultiStrategyFund, 0.20},
		{domain.ProductTypeEquity, 0.15},
		{"SOMETHING_NEW", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.productType, func(t *testing.T) {
			proj, err := Project(tt.productType, 0.12, 1000, 24)
			if err != nil {
				t.Fatalf("Project failed: %v", err)
			}
			want := gross - tt.taxRate*gain
			if math.Abs(proj.FinalAmount-want) > tolerance {
				t.Errorf("FinalAmount = %.10f, want %.10f", proj.FinalAmount, want)
			}
		})
	}
}

func TestProject_ZeroPrincipal(t *testing.T) {
	proj, err := Project(domain.ProductTypeCD, 0.08, 0, 12)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if proj.FinalAmount != 0 {
		t.Errorf("FinalAmount = %f, want 0", proj.FinalAmount)
	}
	// No division by zero; yield defined as 0.
	if proj.EffectiveYield != 0 {
		t.Errorf("EffectiveYield = %f, want 0", proj.EffectiveYield)
	}
}

func TestProject_ZeroTerm(t *testing.T) {
	proj, err := Project(domain.ProductTypeCD, 0.08, 1000, 0)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if proj.FinalAmount != 1000 {
		t.Errorf("FinalAmount = %f, want 1000 (no growth, no tax on zero gain)", proj.FinalAmount)
	}
	if proj.EffectiveYield != 0 {
		t.Errorf("EffectiveYield = %f, want 0", proj.EffectiveYield)
	}
}

func TestProject_InvalidInput(t *testing.T) {
	if _, err := Project(domain.ProductTypeCD, 0.08, -1, 12); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative principal: expected ErrInvalidInput, got %v", err)
	}
	if _, err := Project(domain.ProductTypeCD, 0.08, 1000, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative term: expected ErrInvalidInput, got %v", err)
	}
}

func TestProject_Idempotent(t *testing.T) {
	first, err := Project(domain.ProductTypeEquity, 0.15, 2500, 36)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	second, err := Project(domain.ProductTypeEquity, 0.15, 2500, 36)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	if first != second {
		t.Errorf("identical inputs produced different projections: %+v vs %+v", first, second)
	}
}
