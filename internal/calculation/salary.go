package calculation

import (
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// SalaryInverter recovers the payslip that yields a target net amount after income tax.
// Income tax is piecewise and truncated, so the taxable base is found by bisection.
type SalaryInverter struct {
	TaxCalc *IncomeTaxCalculator
	Payroll domain.PayrollConfig
	Solver  domain.SolverConfig
	Logger  Logger
}

// NewSalaryInverter creates a salary inverter
func NewSalaryInverter(taxCalc *IncomeTaxCalculator, payroll domain.PayrollConfig, solver domain.SolverConfig) *SalaryInverter {
	return &SalaryInverter{
		TaxCalc: taxCalc,
		Payroll: payroll,
		Solver:  solver,
		Logger:  NopLogger{},
	}
}

var two = decimal.NewFromInt(2)

// InvertSalary finds the gross salary and employer cost for a monthly net cash
// target. monthlyBenefitInKind is taxed like salary but never paid in cash.
func (si *SalaryInverter) InvertSalary(targetMonthlyNetCash, shareCount, monthlyBenefitInKind decimal.Decimal) domain.SalaryQuote {
	annualBenefit := money.Annual(monthlyBenefitInKind)
	targetTotal := money.Annual(targetMonthlyNetCash).Add(annualBenefit)

	low := targetTotal
	high := targetTotal.Mul(si.Solver.UpperBoundFactor)

	iterations := 0
	converged := false
	for iterations < si.Solver.MaxIterations {
		iterations++
		mid := low.Add(high).Div(two)
		netValue := mid.Sub(si.TaxCalc.CalculateIncomeTax(mid, shareCount))

		if netValue.Sub(targetTotal).Abs().LessThan(si.Solver.Tolerance) {
			converged = true
			break
		}
		if netValue.LessThan(targetTotal) {
			low = mid
		} else {
			high = mid
		}
	}
	if !converged {
		si.Logger.Warnf("salary bisection stopped after %d iterations without reaching tolerance (target %s)", iterations, targetTotal.StringFixed(2))
	}

	annualNetTaxable := low.Add(high).Div(two)
	annualTax := si.TaxCalc.CalculateIncomeTax(annualNetTaxable, shareCount)
	marginalRate := si.TaxCalc.MarginalRate(annualNetTaxable, shareCount)

	annualNetCashBeforeTax := annualNetTaxable.Sub(annualBenefit)
	// gross includes the benefit in kind, so do the employer charges
	annualGross := annualNetTaxable.Div(si.Payroll.NetTaxableToGrossRatio)
	employerCharges := annualGross.Mul(si.Payroll.EmployerChargeRate)
	employerCost := annualGross.Add(employerCharges)
	cashOut := employerCost.Sub(annualBenefit)

	si.Logger.Debugf("salary inverted: target=%s taxable=%s tax=%s gross=%s iterations=%d",
		targetMonthlyNetCash.StringFixed(2), annualNetTaxable.StringFixed(2), annualTax.String(), annualGross.StringFixed(2), iterations)

	return domain.SalaryQuote{
		MonthlyNetCashAfterTax:   targetMonthlyNetCash,
		MonthlyBenefitInKind:     monthlyBenefitInKind,
		MonthlyIncomeTax:         money.Monthly(annualTax),
		MonthlyNetCashBeforeTax:  money.Monthly(annualNetCashBeforeTax),
		MonthlyGross:             money.Monthly(annualGross),
		MonthlyEmployerCostTotal: money.Monthly(employerCost),
		MonthlySalaryCashOut:     money.Monthly(cashOut),
		AnnualNetTaxable:         annualNetTaxable,
		AnnualIncomeTax:          annualTax,
		AnnualGross:              annualGross,
		AnnualEmployerCharges:    employerCharges,
		AnnualEmployerCostTotal:  employerCost,
		AnnualSalaryCashOut:      cashOut,
		MarginalTaxRate:          marginalRate,
		Iterations:               iterations,
		Converged:                converged,
	}
}
