package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders a report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Advisory Report: %s\n\n", r.ClientName))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	sb.WriteString("## Risk Assessment\n\n")
	if r.Assessment != nil {
		sb.WriteString(fmt.Sprintf("Score: %d / 100\n\n", r.Assessment.Score))
		sb.WriteString(fmt.Sprintf("Profile: **%s**. %s\n\n", r.Assessment.Tier, r.Assessment.Description))
		if r.Assessment.CatalogTier != "" && r.Assessment.CatalogTier != r.Assessment.Tier {
			sb.WriteString(fmt.Sprintf("Catalog classification: %s\n\n", r.Assessment.CatalogTier))
		}
	} else {
		sb.WriteString("No investment history; assessment not available.\n\n")
	}

	sb.WriteString("## Investment History\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Records | %d |\n", r.History.TotalRecords))
	sb.WriteString(fmt.Sprintf("| Total Invested | %.2f |\n", r.History.TotalInvested))
	sb.WriteString(fmt.Sprintf("| Total Withdrawn | %.2f |\n", r.History.TotalWithdrawn))
	sb.WriteString(fmt.Sprintf("| Crisis Records | %d |\n", r.History.CrisisRecords))
	sb.WriteString("\n")

	sb.WriteString("## Simulations\n\n")
	if len(r.Simulations) > 0 {
		sb.WriteString("| Ref | Product | Initial | Term (mo) | Final | Return % |\n")
		sb.WriteString("|-----|---------|---------|-----------|-------|----------|\n")
		for _, s := range r.Simulations {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %d | %.2f | %.4f |\n",
				s.Ref, s.ProductName, s.InitialAmount, s.TermMonths, s.FinalAmount, s.ReturnPercent))
		}
	} else {
		sb.WriteString("No simulations recorded.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Recommended Products\n\n")
	if len(r.Recommendations) > 0 {
		sb.WriteString("| Product | Type | Annual Yield | Risk |\n")
		sb.WriteString("|---------|------|--------------|------|\n")
		for _, p := range r.Recommendations {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f%% | %s |\n",
				p.Name, p.Type, p.AnnualYieldRate*100, p.RiskLabel))
		}
	} else {
		sb.WriteString("No recommendations available.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Simulation Activity by Day\n\n")
	if len(r.DayGroups) > 0 {
		sb.WriteString("| Day | Product | Count | Avg Initial | Avg Final |\n")
		sb.WriteString("|-----|---------|-------|-------------|----------|\n")
		for _, g := range r.DayGroups {
			sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.2f | %.2f |\n",
				g.Day, g.ProductName, g.SimulationCount, g.AvgInitialAmount, g.AvgFinalAmount))
		}
	} else {
		sb.WriteString("No simulation activity.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
