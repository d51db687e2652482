package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	frenchPrinter = message.NewPrinter(language.French)
)

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsPerYear)
}

// Monthly converts an annual amount to monthly
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(monthsPerYear)
}

// TruncateUnit drops everything below the whole currency unit.
// Amounts handled here are non-negative, so this is a floor.
func TruncateUnit(amount decimal.Decimal) decimal.Decimal {
	return amount.Floor()
}

// ClampZero returns amount, or zero when amount is negative.
func ClampZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// FormatEuro renders a whole-euro amount with French digit grouping, e.g. "12 500 €".
func FormatEuro(amount decimal.Decimal) string {
	return frenchPrinter.Sprintf("%v €", number.Decimal(amount.Round(0).IntPart()))
}

// FormatEuroCents renders an amount with two decimals, e.g. "1 416,67 €".
func FormatEuroCents(amount decimal.Decimal) string {
	return frenchPrinter.Sprintf("%v €", number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}
