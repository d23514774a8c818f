package memory

import (
	"context"
	"errors"
	"testing"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

func TestRiskProfileStore_GetAll_MinScoreOrder(t *testing.T) {
	store := NewRiskProfileStore()
	ctx := context.Background()

	profiles := []*domain.RiskProfile{
		{ProfileID: "pr-agg", Name: domain.TierAggressive, MinScore: 71, MaxScore: 100},
		{ProfileID: "pr-con", Name: domain.TierConservative, MinScore: 0, MaxScore: 30},
		{ProfileID: "pr-mod", Name: domain.TierModerate, MinScore: 31, MaxScore: 70},
	}
	for _, p := range profiles {
		if err := store.Insert(ctx, p); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Name != domain.TierConservative || got[2].Name != domain.TierAggressive {
		t.Errorf("wrong order: %s ... %s", got[0].Name, got[2].Name)
	}
}

func TestRiskProfileStore_DuplicateAndInvalid(t *testing.T) {
	store := NewRiskProfileStore()
	ctx := context.Background()

	p := &domain.RiskProfile{ProfileID: "pr-1", Name: domain.TierConservative}
	if err := store.Insert(ctx, p); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := store.Insert(ctx, p); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	if err := store.Insert(ctx, &domain.RiskProfile{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRiskProfileStore_EmptyCatalog(t *testing.T) {
	store := NewRiskProfileStore()
	ctx := context.Background()

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty catalog, got %d", len(got))
	}
}
