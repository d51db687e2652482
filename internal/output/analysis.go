package output

import (
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	MonthlyAverage   decimal.Decimal
	MonthlyChange    decimal.Decimal // versus the first scenario
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios compares the best scenario against the first one listed.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	baseline := results.Scenarios[0].Result.MonthlyAverage
	best := results.Scenarios[0]
	for _, sc := range results.Scenarios {
		if sc.Name == results.BestScenario {
			best = sc
			break
		}
	}
	delta := best.Result.MonthlyAverage.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline)
	}
	return Recommendation{ScenarioName: best.Name, MonthlyAverage: best.Result.MonthlyAverage, MonthlyChange: delta, PercentageChange: pct}
}
