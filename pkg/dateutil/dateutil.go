package dateutil

import (
	"time"
)

const daysPerYear = 365

// MinimumHorizonYears is the floor applied to a goal horizon. A target
// date that is today or already past still simulates a 12-month path
// rather than erroring; this leniency is intentional.
const MinimumHorizonYears = 1.0

// YearsToTarget calculates the goal horizon in fractional years,
// clamped to MinimumHorizonYears.
func YearsToTarget(now, targetDate time.Time) float64 {
	years := targetDate.Sub(now).Hours() / 24 / daysPerYear
	if years < MinimumHorizonYears {
		return MinimumHorizonYears
	}
	return years
}

// MonthsForYears converts a fractional-year horizon to whole months,
// flooring partial months.
func MonthsForYears(years float64) int {
	return int(years * 12)
}

// MonthsToTarget calculates the goal horizon in whole months.
func MonthsToTarget(now, targetDate time.Time) int {
	return MonthsForYears(YearsToTarget(now, targetDate))
}
