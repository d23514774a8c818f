package reporting

import (
	"fmt"
	"strings"
)

// RenderSimulationsCSV renders the report's simulation rows as CSV.
func RenderSimulationsCSV(r *Report) string {
	var sb strings.Builder

	sb.WriteString("ref,product_name,initial_amount,term_months,final_amount,return_percent,simulated_at\n")
	for _, s := range r.Simulations {
		sb.WriteString(fmt.Sprintf("%s,%s,%.6f,%d,%.6f,%.6f,%d\n",
			s.Ref, csvEscape(s.ProductName), s.InitialAmount, s.TermMonths,
			s.FinalAmount, s.ReturnPercent, s.SimulatedAt))
	}

	return sb.String()
}

// RenderDayGroupsCSV renders the report's day aggregates as CSV.
func RenderDayGroupsCSV(r *Report) string {
	var sb strings.Builder

	sb.WriteString("day,product_name,simulation_count,avg_initial_amount,avg_final_amount\n")
	for _, g := range r.DayGroups {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,%.6f,%.6f\n",
			g.Day, csvEscape(g.ProductName), g.SimulationCount, g.AvgInitialAmount, g.AvgFinalAmount))
	}

	return sb.String()
}

// csvEscape quotes a field containing commas or quotes.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
