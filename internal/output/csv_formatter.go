package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/goalsim/goal-analyzer/internal/domain"
)

// CSVFormatter exports the per-year percentile cone as CSV rows for
// spreadsheet import.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(analysis *domain.GoalAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"year", "p10", "p25", "p50", "p75", "p90"}); err != nil {
		return nil, err
	}
	for _, run := range analysis.SimulationRuns {
		row := []string{
			strconv.Itoa(run.Year),
			run.Percentiles.P10.StringFixed(2),
			run.Percentiles.P25.StringFixed(2),
			run.Percentiles.P50.StringFixed(2),
			run.Percentiles.P75.StringFixed(2),
			run.Percentiles.P90.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
