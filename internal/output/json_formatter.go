package output

import (
	"encoding/json"

	"github.com/goalsim/goal-analyzer/internal/domain"
)

// JSONFormatter serializes the goal analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(analysis *domain.GoalAnalysis) ([]byte, error) {
	return json.MarshalIndent(analysis, "", "  ")
}
