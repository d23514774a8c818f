// Package reporting produces per-client advisory reports from stored data
// and renders them as Markdown or CSV.
package reporting

import (
	"context"
	"time"

	"investment-panel/internal/idhash"
	"investment-panel/internal/profile"
	"investment-panel/internal/recommendation"
	"investment-panel/internal/storage"
)

// Generator produces reports from stored data.
type Generator struct {
	clients     storage.ClientStore
	investments storage.InvestmentStore
	products    storage.ProductStore
	profiles    storage.RiskProfileStore
	simulations storage.SimulationStore
	now         func() time.Time // injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(
	clients storage.ClientStore,
	investments storage.InvestmentStore,
	products storage.ProductStore,
	profiles storage.RiskProfileStore,
	simulations storage.SimulationStore,
) *Generator {
	return &Generator{
		clients:     clients,
		investments: investments,
		products:    products,
		profiles:    profiles,
		simulations: simulations,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete advisory report for one client.
// Propagates storage.ErrNotFound for an unknown client id.
func (g *Generator) Generate(ctx context.Context, clientID string) (*Report, error) {
	client, err := g.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		GeneratedAt: g.now(),
		ClientID:    client.ClientID,
		ClientName:  client.Name,
	}

	assessment, err := profile.NewRunner(g.investments, g.profiles).Run(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if assessment != nil {
		section := &AssessmentSection{
			Score:       assessment.Score,
			Tier:        assessment.Tier,
			Description: assessment.Description,
		}
		if assessment.CatalogProfile != nil {
			section.CatalogTier = assessment.CatalogProfile.Name
		}
		report.Assessment = section
	}

	records, err := g.investments.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		report.History.TotalRecords++
		report.History.TotalInvested += r.AmountInvested
		if r.AmountWithdrawn != nil {
			report.History.TotalWithdrawn += *r.AmountWithdrawn
		}
		if r.Crisis {
			report.History.CrisisRecords++
		}
	}

	simulations, err := g.simulations.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for _, s := range simulations {
		report.Simulations = append(report.Simulations, SimulationRow{
			Ref:           idhash.ShortRef(s.SimulationID),
			ProductName:   s.ProductName,
			InitialAmount: s.InitialAmount,
			TermMonths:    s.TermMonths,
			FinalAmount:   s.FinalAmount,
			ReturnPercent: s.ReturnPercent(),
			SimulatedAt:   s.SimulatedAt,
		})
	}

	recommended, err := recommendation.NewRunner(g.investments, g.products).Run(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for _, p := range recommended {
		report.Recommendations = append(report.Recommendations, RecommendationRow{
			Name:            p.Name,
			Type:            p.Type,
			AnnualYieldRate: p.AnnualYieldRate,
			RiskLabel:       p.RiskLabel,
		})
	}

	groups, err := g.simulations.GetGroupedByDayProduct(ctx)
	if err != nil {
		return nil, err
	}
	for _, grp := range groups {
		report.DayGroups = append(report.DayGroups, DayGroupRow{
			Day:              grp.Day,
			ProductName:      grp.ProductName,
			SimulationCount:  grp.SimulationCount,
			AvgInitialAmount: grp.AvgInitialAmount,
			AvgFinalAmount:   grp.AvgFinalAmount,
		})
	}

	return report, nil
}
