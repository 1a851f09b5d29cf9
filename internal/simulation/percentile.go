package simulation

import (
	"sort"

	"github.com/goalsim/goal-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// finalPercentiles is the wider cut-point set reported for the
// final-outcome distribution.
var finalPercentiles = []int{5, 10, 25, 50, 75, 90, 95}

// SortValues sorts balances ascending in place.
func SortValues(values []decimal.Decimal) {
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })
}

// NearestRank picks values[len*p/100] from an ascending-sorted slice.
// Nearest-rank by floor, no interpolation; downstream thresholds
// compare against these values so the rule must hold exactly. An empty
// slice resolves to zero so rendering never sees an undefined cut point.
func NearestRank(sorted []decimal.Decimal, percentile int) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	return sorted[len(sorted)*percentile/100]
}

// Summarize reduces an ascending-sorted distribution to the named
// per-year cut points.
func Summarize(sorted []decimal.Decimal) domain.PercentileSummary {
	return domain.PercentileSummary{
		P10: NearestRank(sorted, 10),
		P25: NearestRank(sorted, 25),
		P50: NearestRank(sorted, 50),
		P75: NearestRank(sorted, 75),
		P90: NearestRank(sorted, 90),
	}
}

// SummarizeFinal reduces the sorted final-value distribution to the
// {5,10,25,50,75,90,95} set in ascending percentile order.
func SummarizeFinal(sorted []decimal.Decimal) []domain.PercentilePoint {
	points := make([]domain.PercentilePoint, 0, len(finalPercentiles))
	for _, p := range finalPercentiles {
		points = append(points, domain.PercentilePoint{Percentile: p, Value: NearestRank(sorted, p)})
	}
	return points
}
