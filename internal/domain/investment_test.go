package domain

import "testing"

func TestWithUpdatedTerms_CopiesWithoutMutating(t *testing.T) {
	term := 12
	original := InvestmentRecord{
		InvestmentID:   "inv-1",
		ClientID:       "client-1",
		AmountInvested: 500,
		TermMonths:     &term,
	}

	newAmount := 750.0
	newTerm := 24
	updated := original.WithUpdatedTerms(&newAmount, &newTerm)

	if updated.AmountInvested != 750 {
		t.Errorf("updated amount = %f, want 750", updated.AmountInvested)
	}
	if updated.TermMonths == nil || *updated.TermMonths != 24 {
		t.Errorf("updated term = %v, want 24", updated.TermMonths)
	}

	// Original must be untouched
	if original.AmountInvested != 500 {
		t.Errorf("original amount mutated: %f", original.AmountInvested)
	}
	if *original.TermMonths != 12 {
		t.Errorf("original term mutated: %d", *original.TermMonths)
	}
}

func TestWithUpdatedTerms_NilLeavesFieldsUnchanged(t *testing.T) {
	original := InvestmentRecord{AmountInvested: 300}

	updated := original.WithUpdatedTerms(nil, nil)

	if updated.AmountInvested != 300 {
		t.Errorf("amount = %f, want 300", updated.AmountInvested)
	}
	if updated.TermMonths != nil {
		t.Errorf("term = %v, want nil", updated.TermMonths)
	}
}

func TestWithUpdatedTerms_NonPositiveAmountIgnored(t *testing.T) {
	original := InvestmentRecord{AmountInvested: 300}

	zero := 0.0
	updated := original.WithUpdatedTerms(&zero, nil)

	if updated.AmountInvested != 300 {
		t.Errorf("amount = %f, want 300 (zero update ignored)", updated.AmountInvested)
	}
}

func TestRealizedReturn(t *testing.T) {
	withdrawn := 1200.0
	r := InvestmentRecord{AmountInvested: 1000, AmountWithdrawn: &withdrawn}

	got := r.RealizedReturn()
	if got != 0.2 {
		t.Errorf("RealizedReturn() = %f, want 0.2", got)
	}
}

func TestRealizedReturn_NoWithdrawal(t *testing.T) {
	r := InvestmentRecord{AmountInvested: 1000}
	if got := r.RealizedReturn(); got != 0 {
		t.Errorf("RealizedReturn() = %f, want 0", got)
	}
}

func TestRealizedReturn_ZeroInvested(t *testing.T) {
	withdrawn := 50.0
	r := InvestmentRecord{AmountInvested: 0, AmountWithdrawn: &withdrawn}
	if got := r.RealizedReturn(); got != 0 {
		t.Errorf("RealizedReturn() = %f, want 0 (no division by zero)", got)
	}
}
