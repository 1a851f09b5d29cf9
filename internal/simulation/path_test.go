package simulation

import (
	"testing"
	"time"

	"github.com/goalsim/goal-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

func driftOnlyGoal(current, contribution int64, annualReturn float64) *domain.FinancialGoal {
	return &domain.FinancialGoal{
		ID:                  "test-goal",
		TargetAmount:        decimal.NewFromInt(1),
		CurrentAmount:       decimal.NewFromInt(current),
		TargetDate:          time.Now().AddDate(1, 0, 0),
		MonthlyContribution: decimal.NewFromInt(contribution),
		ExpectedReturn:      decimal.NewFromFloat(annualReturn),
	}
}

func TestPathSimulatorClosedFormCompounding(t *testing.T) {
	// 1000 start, 100/month, 12% annual -> exactly 1% per month with a
	// drift-only source. Closed form:
	//   final = 1000*1.01^12 + 100*(1.01^12 - 1)/0.01
	goal := driftOnlyGoal(1000, 100, 0.12)
	sim := NewPathSimulator(DriftReturnSource{}, decimal.Zero)

	result := sim.Simulate(goal, 12)

	growth := decimal.NewFromFloat(1.01).Pow(decimal.NewFromInt(12))
	principal := decimal.NewFromInt(1000).Mul(growth)
	annuity := decimal.NewFromInt(100).Mul(growth.Sub(decimal.NewFromInt(1))).Div(decimal.NewFromFloat(0.01))
	expected := principal.Add(annuity)

	if diff := result.FinalValue.Sub(expected).Abs(); diff.GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("final value %s differs from closed form %s by %s", result.FinalValue, expected, diff)
	}

	if len(result.YearlyCheckpoints) != 2 {
		t.Fatalf("expected year-0 and year-1 checkpoints, got %d", len(result.YearlyCheckpoints))
	}
	if !result.YearlyCheckpoints[0].Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("year-0 checkpoint should be the starting balance, got %s", result.YearlyCheckpoints[0].Balance)
	}
	if !result.YearlyCheckpoints[1].Balance.Equal(result.FinalValue) {
		t.Errorf("12-month final value should equal the year-1 checkpoint")
	}
}

func TestPathSimulatorPureCompounding(t *testing.T) {
	// No contributions: final compounds purely by (1+drift/12)^months.
	goal := driftOnlyGoal(10000, 0, 0.06)
	sim := NewPathSimulator(DriftReturnSource{}, decimal.Zero)

	result := sim.Simulate(goal, 36)

	expected := decimal.NewFromInt(10000).Mul(decimal.NewFromFloat(1.005).Pow(decimal.NewFromInt(36)))
	if diff := result.FinalValue.Sub(expected).Abs(); diff.GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("final value %s differs from closed form %s by %s", result.FinalValue, expected, diff)
	}
}

func TestPathSimulatorCheckpointCadence(t *testing.T) {
	goal := driftOnlyGoal(5000, 200, 0.05)
	sim := NewPathSimulator(DriftReturnSource{}, decimal.Zero)

	// 30 months: checkpoints at years 0, 1 and 2; the trailing 6 months
	// only show up in the final value.
	result := sim.Simulate(goal, 30)

	if len(result.YearlyCheckpoints) != 3 {
		t.Fatalf("expected 3 checkpoints for 30 months, got %d", len(result.YearlyCheckpoints))
	}
	for i, cp := range result.YearlyCheckpoints {
		if cp.Year != i {
			t.Errorf("checkpoint %d: expected year %d, got %d", i, i, cp.Year)
		}
	}
	if result.FinalValue.Equal(result.YearlyCheckpoints[2].Balance) {
		t.Error("final value after 30 months should differ from the year-2 checkpoint")
	}
}
