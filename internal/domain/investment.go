package domain

// InvestmentRecord represents a single deposit or withdrawal event in a
// client's investment history. Records are immutable once stored: a
// withdrawal is written as a new record, never as a mutation of the
// original deposit. Corresponds to investment_records table in PostgreSQL.
type InvestmentRecord struct {
	InvestmentID    string   // PRIMARY KEY, deterministic hash
	ClientID        string
	ProductID       string
	AmountInvested  float64  // non-negative; 0 for withdrawal records
	InvestedAt      int64    // Unix timestamp in milliseconds
	TermMonths      *int     // contracted term (nullable)
	Crisis          bool     // record occurred during an adverse market period
	AmountWithdrawn *float64 // nullable; set only on withdrawal records
	CreatedAt       int64    // record creation timestamp (ms)
}

// WithUpdatedTerms returns a copy of the record with a new invested amount
// and/or term. Nil arguments leave the corresponding field unchanged.
// The receiver is never mutated.
func (r InvestmentRecord) WithUpdatedTerms(amount *float64, termMonths *int) InvestmentRecord {
	out := r
	if amount != nil && *amount > 0 {
		out.AmountInvested = *amount
	}
	if termMonths != nil {
		months := *termMonths
		out.TermMonths = &months
	}
	return out
}

// RealizedReturn computes (withdrawn - invested) / invested for a record
// that has a withdrawal. Returns 0 when nothing was invested or nothing
// was withdrawn.
func (r InvestmentRecord) RealizedReturn() float64 {
	if r.AmountInvested <= 0 || r.AmountWithdrawn == nil {
		return 0
	}
	return (*r.AmountWithdrawn - r.AmountInvested) / r.AmountInvested
}
