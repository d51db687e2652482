package output

import (
	"strings"

	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole euros, French style.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatEuro(amount) }

// FormatCents formats a decimal as euros with cents, French style.
func FormatCents(amount decimal.Decimal) string { return money.FormatEuroCents(amount) }

// FormatPercentage formats a rate (0.25) as a percentage with 1 decimal.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(1) + "%"
}

var decimalHundred = decimal.NewFromInt(100)

// bar renders amount as a horizontal bar scaled against peak.
func bar(amount, peak decimal.Decimal, width int) string {
	if !peak.IsPositive() || !amount.IsPositive() {
		return ""
	}
	n := int(amount.Div(peak).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}
