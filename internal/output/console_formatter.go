package output

import (
	"bytes"
	"fmt"

	"github.com/sasusim/remuneration-simulator/internal/domain"
)

// ConsoleFormatter provides a concise one-line-per-scenario summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SIMULATION SASU - RÉSUMÉ")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range results.Scenarios {
		r := sc.Result
		fmt.Fprintf(&buf, "%s: Salaire=%s Dividendes=%s Total=%s/mois\n",
			sc.Name,
			FormatCurrency(r.Salary.MonthlyNetCashAfterTax),
			FormatCurrency(r.Company.DividendsNet),
			FormatCurrency(r.MonthlyAverage),
		)
	}
	if len(results.Scenarios) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommandé : %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.MonthlyChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatOptimization(result *domain.OptimizationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "OPTIMISATION SASU - %d points\n", len(result.Points))
	fmt.Fprintf(&buf, "Optimum : Salaire=%s Dividendes=%s Total=%s/mois\n",
		FormatCurrency(result.Best.TargetNetMonthly),
		FormatCurrency(result.Best.DividendsMonthly),
		FormatCurrency(result.Best.MonthlyAverage),
	)
	return buf.Bytes(), nil
}
