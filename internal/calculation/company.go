package calculation

import (
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// CompanyResultCalculator turns revenue and costs into corporate tax and net dividends
type CompanyResultCalculator struct {
	CorporateTax domain.CorporateTaxConfig
	Dividends    domain.DividendConfig
}

// NewCompanyResultCalculator creates a company result calculator
func NewCompanyResultCalculator(corporateTax domain.CorporateTaxConfig, dividends domain.DividendConfig) *CompanyResultCalculator {
	return &CompanyResultCalculator{CorporateTax: corporateTax, Dividends: dividends}
}

// CalculateCorporateTax applies the reduced rate up to the threshold and the standard rate above it
func (crc *CompanyResultCalculator) CalculateCorporateTax(fiscalResult decimal.Decimal) decimal.Decimal {
	if fiscalResult.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	threshold := crc.CorporateTax.ReducedRateThreshold
	reduced := decimal.Min(fiscalResult, threshold).Mul(crc.CorporateTax.ReducedRate)
	standard := decimal.Max(decimal.Zero, fiscalResult.Sub(threshold)).Mul(crc.CorporateTax.StandardRate)
	return reduced.Add(standard)
}

// CalculateCompanyResult computes the yearly waterfall. It never fails: negative
// results saturate at zero.
//
// Corporate tax is assessed on the fiscal result but deducted from the accounting
// result, since non-deductible spend has already left the company.
func (crc *CompanyResultCalculator) CalculateCompanyResult(annualRevenue, annualOperatingExpenses, annualSalaryCashCost, annualVehicleCashCost, annualVehicleNonDeductible decimal.Decimal) domain.CompanyResult {
	accounting := annualRevenue.Sub(annualOperatingExpenses).Sub(annualSalaryCashCost).Sub(annualVehicleCashCost)
	fiscal := accounting.Add(annualVehicleNonDeductible)
	corporateTax := crc.CalculateCorporateTax(fiscal)

	postTax := money.ClampZero(accounting.Sub(corporateTax))
	dividendTax := decimal.Zero
	dividends := decimal.Zero
	if !postTax.IsZero() {
		dividendTax = postTax.Mul(crc.Dividends.FlatTaxRate)
		dividends = postTax.Sub(dividendTax)
	}

	return domain.CompanyResult{
		AccountingResult:     accounting,
		NonDeductibleAddBack: annualVehicleNonDeductible,
		FiscalResult:         fiscal,
		CorporateTax:         corporateTax,
		PostTaxResult:        postTax,
		DividendTax:          dividendTax,
		DividendsNet:         dividends,
	}
}
