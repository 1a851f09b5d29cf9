package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialGoal represents a single savings goal to be analyzed.
// It is immutable for the duration of one analysis; editing a parameter
// means discarding the previous GoalAnalysis and computing a new one.
type FinancialGoal struct {
	ID                  string          `yaml:"id" json:"id"`
	Name                string          `yaml:"name,omitempty" json:"name,omitempty"`
	TargetAmount        decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	CurrentAmount       decimal.Decimal `yaml:"current_amount" json:"current_amount"`
	TargetDate          time.Time       `yaml:"target_date" json:"target_date"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	ExpectedReturn      decimal.Decimal `yaml:"expected_return" json:"expected_return"` // annualized drift, e.g. 0.07
	InflationRate       decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
}

// Validate checks the goal parameters that would otherwise propagate
// NaN-like garbage through thousands of trials. Horizon problems are
// not errors; past target dates clamp to a 1-year minimum instead.
func (g *FinancialGoal) Validate() error {
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("invalid goal parameters: target amount must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("invalid goal parameters: current amount cannot be negative, got %s", g.CurrentAmount)
	}
	if g.MonthlyContribution.IsNegative() {
		return fmt.Errorf("invalid goal parameters: monthly contribution cannot be negative, got %s", g.MonthlyContribution)
	}
	if g.ExpectedReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("invalid goal parameters: expected return cannot be -100%% or lower, got %s", g.ExpectedReturn)
	}
	return nil
}

// PercentileSummary holds the named percentile cut points for one
// year's distribution of simulated balances.
type PercentileSummary struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// PercentilePoint is a single cut point in the final-outcome distribution.
type PercentilePoint struct {
	Percentile int             `json:"percentile"`
	Value      decimal.Decimal `json:"value"`
}

// SimulationRun is the per-year distribution of balances across all
// Monte Carlo trials: one entry in Values per trial that reached the
// year, plus the percentiles computed once all trials are collected.
type SimulationRun struct {
	Year        int               `json:"year"`
	Values      []decimal.Decimal `json:"values"`
	Percentiles PercentileSummary `json:"percentiles"`
}

// GoalAnalysis is the complete result of one analysis invocation.
type GoalAnalysis struct {
	GoalID                  string            `json:"goal_id"`
	SuccessProbability      decimal.Decimal   `json:"success_probability"`
	MedianOutcome           decimal.Decimal   `json:"median_outcome"`
	ShortfallRisk           decimal.Decimal   `json:"shortfall_risk"`
	RecommendedContribution decimal.Decimal   `json:"recommended_contribution"`
	Percentiles             []PercentilePoint `json:"percentiles"`
	SimulationRuns          []SimulationRun   `json:"simulation_runs"`
	NumSimulations          int               `json:"num_simulations"`
	MonthsToGoal            int               `json:"months_to_goal"`
}
