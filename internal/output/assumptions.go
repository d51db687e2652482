package output

import (
	"fmt"

	"github.com/sasusim/remuneration-simulator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a result, from the active rules.
func GenerateAssumptions(rules domain.FiscalRules) []string {
	return []string{
		fmt.Sprintf("Barème IR %d, abattement forfaitaire de %s", rules.Year, FormatPercentage(rules.IncomeTax.StandardDeductionRate)),
		fmt.Sprintf("Net imposable ≈ %s du brut", FormatPercentage(rules.Payroll.NetTaxableToGrossRatio)),
		fmt.Sprintf("Charges patronales ≈ %s du brut", FormatPercentage(rules.Payroll.EmployerChargeRate)),
		fmt.Sprintf("IS : %s jusqu'à %s, %s au-delà",
			FormatPercentage(rules.CorporateTax.ReducedRate), FormatCurrency(rules.CorporateTax.ReducedRateThreshold), FormatPercentage(rules.CorporateTax.StandardRate)),
		fmt.Sprintf("Flat tax sur dividendes : %s", FormatPercentage(rules.Dividends.FlatTaxRate)),
	}
}
