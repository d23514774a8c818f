package recommendation

import (
	"context"
	"testing"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage/memory"
)

func seedStores(t *testing.T) (*memory.InvestmentStore, *memory.ProductStore) {
	t.Helper()
	return memory.NewInvestmentStore(), memory.NewProductStore()
}

func insertRecord(t *testing.T, store *memory.InvestmentStore, rec *domain.InvestmentRecord) {
	t.Helper()
	if err := store.Insert(context.Background(), rec); err != nil {
		t.Fatalf("seed investment failed: %v", err)
	}
}

func insertProduct(t *testing.T, store *memory.ProductStore, p *domain.Product) {
	t.Helper()
	if err := store.Insert(context.Background(), p); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
}

func TestRunnerRun_EmptyHistory(t *testing.T) {
	investments, products := seedStores(t)
	insertProduct(t, products, product("low", domain.RiskLevelLow))

	runner := NewRunner(investments, products)
	matched, err := runner.Run(context.Background(), "client-unknown")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("empty history matched %d products, want 0", len(matched))
	}
}

func TestRunnerRun_MatchesTierFromHistory(t *testing.T) {
	investments, products := seedStores(t)

	// 600 invested (+20) for 12 months (+10) scores 30, Conservative.
	term := 12
	insertRecord(t, investments, &domain.InvestmentRecord{
		InvestmentID:   "inv-1",
		ClientID:       "client-1",
		ProductID:      "prod-cdb",
		AmountInvested: 600,
		InvestedAt:     1704067200000,
		TermMonths:     &term,
		CreatedAt:      1704067200000,
	})

	insertProduct(t, products, product("low", domain.RiskLevelLow))
	insertProduct(t, products, product("high", domain.RiskLevelHigh))

	runner := NewRunner(investments, products)
	matched, err := runner.Run(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(matched) != 1 {
		t.Fatalf("got %d products, want 1", len(matched))
	}
	if matched[0].Name != "low" {
		t.Errorf("got %s, want low-risk product", matched[0].Name)
	}
}

func TestRunnerRun_EmptyCatalog(t *testing.T) {
	investments, products := seedStores(t)

	term := 12
	insertRecord(t, investments, &domain.InvestmentRecord{
		InvestmentID:   "inv-1",
		ClientID:       "client-1",
		ProductID:      "prod-cdb",
		AmountInvested: 600,
		InvestedAt:     1704067200000,
		TermMonths:     &term,
		CreatedAt:      1704067200000,
	})

	runner := NewRunner(investments, products)
	matched, err := runner.Run(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("empty catalog matched %d products, want 0", len(matched))
	}
}
