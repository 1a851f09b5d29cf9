package output

import (
	"fmt"
	"strings"

	"github.com/goalsim/goal-analyzer/internal/domain"
)

// ConsoleFormatter renders a human-readable summary of a goal analysis.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(analysis *domain.GoalAnalysis) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Goal: %s\n", analysis.GoalID)
	fmt.Fprintf(&b, "Simulations: %d over %d months\n\n", analysis.NumSimulations, analysis.MonthsToGoal)

	fmt.Fprintf(&b, "Success probability:      %s\n", FormatPercentage(analysis.SuccessProbability))
	fmt.Fprintf(&b, "Shortfall risk:           %s\n", FormatPercentage(analysis.ShortfallRisk))
	fmt.Fprintf(&b, "Median outcome:           %s\n", FormatCurrency(analysis.MedianOutcome))
	fmt.Fprintf(&b, "Recommended contribution: %s/month\n\n", FormatCurrency(analysis.RecommendedContribution))

	b.WriteString("Final-outcome percentiles:\n")
	for _, p := range analysis.Percentiles {
		fmt.Fprintf(&b, "  p%-3d %s\n", p.Percentile, FormatCurrency(p.Value))
	}

	b.WriteString("\nYearly projection (median, p10-p90 band):\n")
	for _, run := range analysis.SimulationRuns {
		fmt.Fprintf(&b, "  year %2d  %s  (%s - %s)\n",
			run.Year,
			FormatCurrency(run.Percentiles.P50),
			FormatCurrency(run.Percentiles.P10),
			FormatCurrency(run.Percentiles.P90))
	}

	return []byte(b.String()), nil
}
