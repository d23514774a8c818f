package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
	"investment-panel/internal/storage/memory"
)

type testStores struct {
	clients     *memory.ClientStore
	investments *memory.InvestmentStore
	products    *memory.ProductStore
	profiles    *memory.RiskProfileStore
	simulations *memory.SimulationStore
}

func setupTestData(t *testing.T) testStores {
	t.Helper()
	ctx := context.Background()

	s := testStores{
		clients:     memory.NewClientStore(),
		investments: memory.NewInvestmentStore(),
		products:    memory.NewProductStore(),
		profiles:    memory.NewRiskProfileStore(),
		simulations: memory.NewSimulationStore(),
	}

	err := s.clients.Insert(ctx, &domain.Client{
		ClientID:     "client-1",
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		Document:     "123",
		RegisteredAt: 1704067200000,
	})
	if err != nil {
		t.Fatalf("insert client: %v", err)
	}

	// Score 30: 600 (+20) for 12 months (+10). Conservative.
	term := 12
	err = s.investments.Insert(ctx, &domain.InvestmentRecord{
		InvestmentID:   "inv-1",
		ClientID:       "client-1",
		ProductID:      "prod-1",
		AmountInvested: 600,
		InvestedAt:     1704067200000,
		TermMonths:     &term,
		CreatedAt:      1704067200000,
	})
	if err != nil {
		t.Fatalf("insert investment: %v", err)
	}

	err = s.products.Insert(ctx, &domain.Product{
		ProductID:       "prod-1",
		Name:            "CDB Plus",
		Type:            domain.ProductTypeCD,
		AnnualYieldRate: 0.08,
		RiskLevel:       domain.RiskLevelLow,
	})
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}

	profiles := []*domain.RiskProfile{
		{ProfileID: "rp-1", Name: domain.TierConservative, MinScore: 0, MaxScore: 30},
		{ProfileID: "rp-2", Name: domain.TierModerate, MinScore: 31, MaxScore: 70},
		{ProfileID: "rp-3", Name: domain.TierAggressive, MinScore: 71, MaxScore: 100},
	}
	for _, p := range profiles {
		if err := s.profiles.Insert(ctx, p); err != nil {
			t.Fatalf("insert profile: %v", err)
		}
	}

	err = s.simulations.Insert(ctx, &domain.SimulationResult{
		SimulationID:   "sim-1",
		ClientID:       "client-1",
		ProductName:    "CDB Plus",
		InitialAmount:  1000,
		TermMonths:     12,
		FinalAmount:    1070.55,
		EffectiveYield: 0.07055,
		SimulatedAt:    1704067200000,
	})
	if err != nil {
		t.Fatalf("insert simulation: %v", err)
	}

	return s
}

func newGenerator(s testStores) *Generator {
	return NewGenerator(s.clients, s.investments, s.products, s.profiles, s.simulations).
		WithClock(func() time.Time { return time.UnixMilli(1704067200000).UTC() })
}

func TestGenerate_CompleteReport(t *testing.T) {
	s := setupTestData(t)
	report, err := newGenerator(s).Generate(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if report.ClientName != "Ana Souza" {
		t.Errorf("ClientName = %s", report.ClientName)
	}

	if report.Assessment == nil {
		t.Fatal("expected assessment")
	}
	if report.Assessment.Score != 30 {
		t.Errorf("Score = %d, want 30", report.Assessment.Score)
	}
	if report.Assessment.Tier != domain.TierConservative {
		t.Errorf("Tier = %s, want Conservative", report.Assessment.Tier)
	}

	if report.History.TotalRecords != 1 || report.History.TotalInvested != 600 {
		t.Errorf("history summary wrong: %+v", report.History)
	}

	if len(report.Simulations) != 1 {
		t.Fatalf("got %d simulations, want 1", len(report.Simulations))
	}
	if report.Simulations[0].Ref == "" {
		t.Error("simulation row missing short ref")
	}

	// Conservative maps to Low; the only product is Low risk.
	if len(report.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(report.Recommendations))
	}
	if report.Recommendations[0].RiskLabel != domain.RiskLabelLow {
		t.Errorf("RiskLabel = %s, want Low", report.Recommendations[0].RiskLabel)
	}

	if len(report.DayGroups) != 1 {
		t.Fatalf("got %d day groups, want 1", len(report.DayGroups))
	}
	if report.DayGroups[0].Day != "2024-01-01" {
		t.Errorf("Day = %s, want 2024-01-01", report.DayGroups[0].Day)
	}
}

func TestGenerate_UnknownClient(t *testing.T) {
	s := setupTestData(t)

	_, err := newGenerator(s).Generate(context.Background(), "no-such-client")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerate_ClientWithoutHistory(t *testing.T) {
	s := setupTestData(t)
	ctx := context.Background()

	err := s.clients.Insert(ctx, &domain.Client{
		ClientID:     "client-2",
		Name:         "Bruno Lima",
		Email:        "bruno@example.com",
		Document:     "456",
		RegisteredAt: 1704067200000,
	})
	if err != nil {
		t.Fatalf("insert client: %v", err)
	}

	report, err := newGenerator(s).Generate(ctx, "client-2")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if report.Assessment != nil {
		t.Errorf("expected nil assessment, got %+v", report.Assessment)
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(report.Recommendations))
	}
}

func TestRenderMarkdown(t *testing.T) {
	s := setupTestData(t)
	report, err := newGenerator(s).Generate(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	md := RenderMarkdown(report)

	for _, want := range []string{
		"# Advisory Report: Ana Souza",
		"Score: 30 / 100",
		"**Conservative**",
		"CDB Plus",
		"2024-01-01",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	s := setupTestData(t)
	report, err := newGenerator(s).Generate(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	csv := RenderSimulationsCSV(report)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d CSV lines, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ref,product_name") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "CDB Plus") {
		t.Errorf("row missing product name: %s", lines[1])
	}

	groups := RenderDayGroupsCSV(report)
	if !strings.Contains(groups, "2024-01-01,CDB Plus,1,") {
		t.Errorf("day groups CSV wrong:\n%s", groups)
	}
}

func TestCSVEscape(t *testing.T) {
	if got := csvEscape("plain"); got != "plain" {
		t.Errorf("csvEscape(plain) = %s", got)
	}
	if got := csvEscape(`Fund "A", Series 1`); got != `"Fund ""A"", Series 1"` {
		t.Errorf("csvEscape quoted = %s", got)
	}
}
