package simulation

import (
	"github.com/goalsim/goal-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// YearlyCheckpoint records a trial's balance at a year boundary.
type YearlyCheckpoint struct {
	Year    int
	Balance decimal.Decimal
}

// PathResult is the outcome of one simulated trial.
type PathResult struct {
	FinalValue        decimal.Decimal
	YearlyCheckpoints []YearlyCheckpoint
}

// PathSimulator walks one goal forward month-by-month from now to the
// target date, compounding the balance with each month's sampled
// return and adding the contribution after the return is applied.
type PathSimulator struct {
	returns    ReturnSource
	volatility decimal.Decimal
}

// NewPathSimulator creates a path simulator using the given return
// source and annualized volatility assumption.
func NewPathSimulator(returns ReturnSource, volatility decimal.Decimal) *PathSimulator {
	return &PathSimulator{returns: returns, volatility: volatility}
}

// Simulate runs a single trial over monthsToGoal months. The year-0
// checkpoint anchors the projection at the starting balance; every
// completed 12-month block records one more checkpoint.
func (ps *PathSimulator) Simulate(goal *domain.FinancialGoal, monthsToGoal int) PathResult {
	value := goal.CurrentAmount

	checkpoints := make([]YearlyCheckpoint, 0, monthsToGoal/12+1)
	checkpoints = append(checkpoints, YearlyCheckpoint{Year: 0, Balance: value})

	for m := 0; m < monthsToGoal; m++ {
		monthlyReturn := ps.returns.MonthlyReturn(goal.ExpectedReturn, ps.volatility)
		value = value.Mul(decimalOne.Add(monthlyReturn)).Add(goal.MonthlyContribution)

		if (m+1)%12 == 0 {
			checkpoints = append(checkpoints, YearlyCheckpoint{Year: (m + 1) / 12, Balance: value})
		}
	}

	return PathResult{FinalValue: value, YearlyCheckpoints: checkpoints}
}
