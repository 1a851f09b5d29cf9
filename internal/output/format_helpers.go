package output

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested
// in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a fractional decimal (0.87 -> "87.00%").
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(oneHundred).StringFixed(2) + "%"
}
