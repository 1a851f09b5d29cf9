package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goalsim/goal-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// GoalFile is the YAML document listing the goals to analyze.
type GoalFile struct {
	Goals []domain.FinancialGoal `yaml:"goals"`
}

// InputParser handles parsing of goal input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a goal file from YAML.
func (ip *InputParser) LoadFromFile(filename string) (*GoalFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file GoalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateGoalFile(&file); err != nil {
		return nil, fmt.Errorf("goal file validation failed: %w", err)
	}

	return &file, nil
}

// ValidateGoalFile validates the loaded goal file.
func (ip *InputParser) ValidateGoalFile(file *GoalFile) error {
	if len(file.Goals) == 0 {
		return fmt.Errorf("no goals provided")
	}

	seen := make(map[string]bool, len(file.Goals))
	for i := range file.Goals {
		goal := &file.Goals[i]
		if goal.ID == "" {
			return fmt.Errorf("goal %d: id is required", i)
		}
		if seen[goal.ID] {
			return fmt.Errorf("goal %d: duplicate id %q", i, goal.ID)
		}
		seen[goal.ID] = true

		if err := goal.Validate(); err != nil {
			return fmt.Errorf("goal %q: %w", goal.ID, err)
		}
		if goal.TargetDate.IsZero() {
			return fmt.Errorf("goal %q: target date is required", goal.ID)
		}
	}

	return nil
}

// CreateExampleGoalFile creates a starter goal file with a realistic
// long-horizon goal.
func (ip *InputParser) CreateExampleGoalFile() *GoalFile {
	targetDate := time.Now().AddDate(15, 0, 0)

	return &GoalFile{
		Goals: []domain.FinancialGoal{
			{
				ID:                  "retirement",
				Name:                "Retirement nest egg",
				TargetAmount:        decimal.NewFromInt(5000000),
				CurrentAmount:       decimal.NewFromInt(1850000),
				TargetDate:          targetDate,
				MonthlyContribution: decimal.NewFromInt(8500),
				ExpectedReturn:      decimal.NewFromFloat(0.07),
				InflationRate:       decimal.NewFromFloat(0.025),
			},
		},
	}
}
