package simulation

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/goalsim/goal-analyzer/internal/domain"
	"github.com/goalsim/goal-analyzer/pkg/dateutil"
	"github.com/shopspring/decimal"
)

const defaultNumWorkers = 10

// AnalyzerConfig holds configuration for the outcome analyzer.
// Zero-valued fields fall back to defaults.
type AnalyzerConfig struct {
	// Seed for the Monte Carlo random streams; 0 means a time-based seed.
	Seed int64
	// NumWorkers bounds trial concurrency; 0 means 10.
	NumWorkers int
	// AnnualVolatility overrides the fixed 15% volatility assumption.
	AnnualVolatility decimal.Decimal
	// ReturnSourceFactory builds the per-trial return source; nil means
	// NewUniformReturnSource. Trial i is seeded with Seed+i so results
	// are independent of worker scheduling.
	ReturnSourceFactory func(seed int64) ReturnSource
	// Now is the evaluation instant for horizon math; zero means time.Now().
	Now time.Time
	// Logger defaults to NopLogger.
	Logger Logger
}

// OutcomeAnalyzer orchestrates N independent trials of a goal and
// derives success probability, shortfall risk, median outcome and a
// recommended contribution adjustment. Analyses share no state; the
// analyzer can be reused across goals.
type OutcomeAnalyzer struct {
	config AnalyzerConfig
	logger Logger
}

// NewOutcomeAnalyzer creates an analyzer, applying defaults for any
// zero-valued configuration field.
func NewOutcomeAnalyzer(config AnalyzerConfig) *OutcomeAnalyzer {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaultNumWorkers
	}
	if config.AnnualVolatility.IsZero() {
		config.AnnualVolatility = DefaultAnnualVolatility
	}
	if config.ReturnSourceFactory == nil {
		config.ReturnSourceFactory = func(seed int64) ReturnSource { return NewUniformReturnSource(seed) }
	}
	if config.Now.IsZero() {
		config.Now = time.Now()
	}
	if config.Logger == nil {
		config.Logger = NopLogger{}
	}

	return &OutcomeAnalyzer{config: config, logger: config.Logger}
}

// Analyze runs numSimulations independent trials of the goal and
// packages the aggregate outcome. It either completes all trials or
// returns the context's error; there is no partial result.
func (oa *OutcomeAnalyzer) Analyze(ctx context.Context, goal *domain.FinancialGoal, numSimulations int) (*domain.GoalAnalysis, error) {
	if goal == nil {
		return nil, fmt.Errorf("invalid goal parameters: goal is nil")
	}
	if err := goal.Validate(); err != nil {
		return nil, err
	}
	if numSimulations < 1 {
		return nil, fmt.Errorf("number of simulations must be at least 1, got %d", numSimulations)
	}

	yearsToGoal := dateutil.YearsToTarget(oa.config.Now, goal.TargetDate)
	monthsToGoal := dateutil.MonthsForYears(yearsToGoal)
	horizonYears := int(math.Ceil(yearsToGoal))

	oa.logger.Debugf("analyzing goal %s: %d trials over %d months (%d workers)",
		goal.ID, numSimulations, monthsToGoal, oa.config.NumWorkers)

	results := make([]PathResult, numSimulations)
	trials := make(chan int)
	var wg sync.WaitGroup

	workers := oa.config.NumWorkers
	if workers > numSimulations {
		workers = numSimulations
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range trials {
				source := oa.config.ReturnSourceFactory(oa.config.Seed + int64(i))
				sim := NewPathSimulator(source, oa.config.AnnualVolatility)
				results[i] = sim.Simulate(goal, monthsToGoal)
			}
		}()
	}

	// Feed trial indices, checking for cancellation between trials.
feed:
	for i := 0; i < numSimulations; i++ {
		select {
		case <-ctx.Done():
			break feed
		case trials <- i:
		}
	}
	close(trials)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	// Merge per-trial results.
	aggregator := NewYearlyAggregator(horizonYears)
	finalValues := make([]decimal.Decimal, numSimulations)
	successCount := 0
	for i, result := range results {
		finalValues[i] = result.FinalValue
		if result.FinalValue.GreaterThanOrEqual(goal.TargetAmount) {
			successCount++
		}
		aggregator.Add(result.YearlyCheckpoints)
	}

	SortValues(finalValues)

	numSims := decimal.NewFromInt(int64(numSimulations))
	successProbability := decimal.NewFromInt(int64(successCount)).Div(numSims)
	shortfallRisk := decimalOne.Sub(successProbability)
	medianOutcome := finalValues[numSimulations/2]

	// Spread the gap between target and median evenly across the
	// remaining months; never recommend less than the current plan.
	recommendedContribution := goal.MonthlyContribution
	shortfall := goal.TargetAmount.Sub(medianOutcome)
	if shortfall.IsPositive() {
		recommendedContribution = recommendedContribution.Add(shortfall.Div(decimal.NewFromInt(int64(monthsToGoal))))
	}

	oa.logger.Infof("goal %s: success probability %s, median outcome %s",
		goal.ID, successProbability.StringFixed(4), medianOutcome.StringFixed(2))

	return &domain.GoalAnalysis{
		GoalID:                  goal.ID,
		SuccessProbability:      successProbability,
		MedianOutcome:           medianOutcome,
		ShortfallRisk:           shortfallRisk,
		RecommendedContribution: recommendedContribution,
		Percentiles:             SummarizeFinal(finalValues),
		SimulationRuns:          aggregator.Runs(),
		NumSimulations:          numSimulations,
		MonthsToGoal:            monthsToGoal,
	}, nil
}
