package simulation

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
	sqrtTwelve    = decimal.NewFromFloat(math.Sqrt(12))
)

// DefaultAnnualVolatility is the fixed volatility assumption applied to
// every goal regardless of its own risk profile. 15% annualized; a
// simplification, not derived from asset allocation.
var DefaultAnnualVolatility = decimal.NewFromFloat(0.15)

// ReturnSource supplies one monthly stochastic return sample given
// annualized drift and volatility assumptions.
type ReturnSource interface {
	MonthlyReturn(annualDrift, annualVolatility decimal.Decimal) decimal.Decimal
}

// UniformReturnSource draws monthly noise from a symmetric uniform
// variate in [-1, 1], scaled by annualVolatility/sqrt(12). Uniform
// rather than Gaussian understates tail risk; kept deliberately for
// parity with the original engine.
type UniformReturnSource struct {
	rng *rand.Rand
}

// NewUniformReturnSource creates a return source with its own seeded
// random stream, so each trial is independent of worker scheduling.
func NewUniformReturnSource(seed int64) *UniformReturnSource {
	return &UniformReturnSource{rng: rand.New(rand.NewSource(seed))}
}

// MonthlyReturn returns monthly drift plus uniform noise.
func (s *UniformReturnSource) MonthlyReturn(annualDrift, annualVolatility decimal.Decimal) decimal.Decimal {
	monthlyDrift := annualDrift.Div(decimalTwelve)
	u := s.rng.Float64()*2 - 1
	noise := annualVolatility.Div(sqrtTwelve).Mul(decimal.NewFromFloat(u))
	return monthlyDrift.Add(noise)
}

// DriftReturnSource returns exactly the monthly drift with zero noise.
// Used for drift-only projections and closed-form tests.
type DriftReturnSource struct{}

// MonthlyReturn returns annualDrift/12, ignoring volatility.
func (DriftReturnSource) MonthlyReturn(annualDrift, _ decimal.Decimal) decimal.Decimal {
	return annualDrift.Div(decimalTwelve)
}
