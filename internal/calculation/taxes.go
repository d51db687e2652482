package calculation

import (
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// INCOME TAX ASSUMPTIONS:
//
// 1. Scale: 2024 brackets (revenus 2023), held constant
// 2. Standard deduction: flat 10% of net taxable salary, without the legal
//    floor and ceiling
// 3. Quotient familial: the scale applies per share, no capping of the
//    advantage per half share
// 4. Result truncated to the whole euro

// IncomeTaxCalculator computes French personal income tax (impôt sur le revenu)
type IncomeTaxCalculator struct {
	Year                  int
	StandardDeductionRate decimal.Decimal
	Brackets              []domain.TaxBracket
}

// NewIncomeTaxCalculator2024 creates an income tax calculator for the 2024 scale
func NewIncomeTaxCalculator2024() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Year:                  2024,
		StandardDeductionRate: decimal.NewFromFloat(0.10),
		Brackets:              domain.DefaultIncomeTaxBrackets(),
	}
}

// NewIncomeTaxCalculator creates an income tax calculator with configurable values
func NewIncomeTaxCalculator(year int, config domain.IncomeTaxConfig) *IncomeTaxCalculator {
	brackets := append([]domain.TaxBracket(nil), config.Brackets...)
	if len(brackets) == 0 { // fallback defaults
		return NewIncomeTaxCalculator2024()
	}
	return &IncomeTaxCalculator{Year: year, StandardDeductionRate: config.StandardDeductionRate, Brackets: brackets}
}

// CalculateIncomeTax returns the household tax for an annual net taxable income.
// shareCount is the number of fiscal shares (1, 1.5, 2, ...); callers guarantee it is positive.
func (itc *IncomeTaxCalculator) CalculateIncomeTax(taxableAnnualIncome, shareCount decimal.Decimal) decimal.Decimal {
	assessed := taxableAnnualIncome.Mul(decimal.NewFromInt(1).Sub(itc.StandardDeductionRate))
	quotient := assessed.Div(shareCount)

	taxPerShare := decimal.Zero
	for _, bracket := range itc.Brackets {
		if quotient.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := quotient
		if !bracket.Unbounded() {
			upper = decimal.Min(quotient, bracket.Max)
		}
		taxPerShare = taxPerShare.Add(upper.Sub(bracket.Min).Mul(bracket.Rate))
	}

	return money.TruncateUnit(taxPerShare.Mul(shareCount))
}

// MarginalRate returns the rate of the bracket the per-share quotient falls in.
func (itc *IncomeTaxCalculator) MarginalRate(taxableAnnualIncome, shareCount decimal.Decimal) decimal.Decimal {
	quotient := taxableAnnualIncome.Mul(decimal.NewFromInt(1).Sub(itc.StandardDeductionRate)).Div(shareCount)
	rate := decimal.Zero
	for _, bracket := range itc.Brackets {
		if quotient.LessThan(bracket.Min) {
			break
		}
		rate = bracket.Rate
	}
	return rate
}
