package simulation

import (
	"github.com/goalsim/goal-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// YearlyAggregator collects end-of-year balances across trials into
// per-year distributions. Buckets are pre-initialized for every year
// in 0..horizonYears so a year no trial reached still presents a
// valid, empty percentile set. Insertion order between trials does not
// affect the statistics; percentiles sort before reading.
type YearlyAggregator struct {
	buckets [][]decimal.Decimal
}

// NewYearlyAggregator creates empty buckets for years 0..horizonYears
// inclusive.
func NewYearlyAggregator(horizonYears int) *YearlyAggregator {
	return &YearlyAggregator{buckets: make([][]decimal.Decimal, horizonYears+1)}
}

// Add merges one trial's yearly checkpoints into the buckets.
// Checkpoints outside the pre-allocated range are dropped; the horizon
// math never produces them.
func (ya *YearlyAggregator) Add(checkpoints []YearlyCheckpoint) {
	for _, cp := range checkpoints {
		if cp.Year < 0 || cp.Year >= len(ya.buckets) {
			continue
		}
		ya.buckets[cp.Year] = append(ya.buckets[cp.Year], cp.Balance)
	}
}

// Runs sorts each bucket and computes its percentiles, producing one
// SimulationRun per year in ascending year order.
func (ya *YearlyAggregator) Runs() []domain.SimulationRun {
	runs := make([]domain.SimulationRun, len(ya.buckets))
	for year, values := range ya.buckets {
		SortValues(values)
		runs[year] = domain.SimulationRun{
			Year:        year,
			Values:      values,
			Percentiles: Summarize(values),
		}
	}
	return runs
}
