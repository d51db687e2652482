package calculation

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates a simulation: vehicle reduction, salary
// inversion, company result and the personal income totals.
// It holds no mutable state once built and may be shared across goroutines.
type CalculationEngine struct {
	Rules          domain.FiscalRules
	TaxCalc        *IncomeTaxCalculator
	SalaryInverter *SalaryInverter
	CompanyCalc    *CompanyResultCalculator
	Logger         Logger
}

// NewCalculationEngine creates an engine with the default fiscal rules
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(domain.DefaultFiscalRules())
}

// NewCalculationEngineWithConfig creates an engine from partially filled fiscal rules.
// Zero values fall back to the defaults.
func NewCalculationEngineWithConfig(rules domain.FiscalRules) *CalculationEngine {
	return NewCalculationEngineWithRules(rules.WithDefaults())
}

// NewCalculationEngineWithRules creates an engine from complete fiscal rules, used as given.
// A zero rate means a zero rate.
func NewCalculationEngineWithRules(rules domain.FiscalRules) *CalculationEngine {
	taxCalc := NewIncomeTaxCalculator(rules.Year, rules.IncomeTax)
	engine := &CalculationEngine{
		Rules:          rules,
		TaxCalc:        taxCalc,
		SalaryInverter: NewSalaryInverter(taxCalc, rules.Payroll, rules.Solver),
		CompanyCalc:    NewCompanyResultCalculator(rules.CorporateTax, rules.Dividends),
	}
	engine.SetLogger(nil)
	return engine
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	l = orNop(l)
	ce.Logger = l
	ce.SalaryInverter.Logger = l
}

var one = decimal.NewFromInt(1)

// RunSimulation runs one simulation. Inputs are expected to be validated by the caller;
// fiscal shares below 1 are read as a single share.
func (ce *CalculationEngine) RunSimulation(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shares := input.FiscalShares
	if shares.LessThan(one) {
		shares = one
	}

	vehicle := VehicleAnnualCost(input.Vehicle)
	quote := ce.SalaryInverter.InvertSalary(input.TargetNetMonthly, shares, vehicle.MonthlyBenefitInKind)

	annualRevenue := money.Annual(input.MonthlyRevenue)
	annualExpenses := money.Annual(input.MonthlyExpenses)
	company := ce.CompanyCalc.CalculateCompanyResult(annualRevenue, annualExpenses, quote.AnnualSalaryCashOut, vehicle.Annual, vehicle.NonDeductible)

	totalAnnual := money.Annual(quote.MonthlyNetCashAfterTax).Add(company.DividendsNet)
	monthlyAverage := money.Monthly(totalAnnual)

	ce.Logger.Debugf("simulation: revenue=%s salary_cash_out=%s corporate_tax=%s dividends=%s monthly_average=%s",
		annualRevenue.StringFixed(0), quote.AnnualSalaryCashOut.StringFixed(0), company.CorporateTax.StringFixed(0),
		company.DividendsNet.StringFixed(0), monthlyAverage.StringFixed(2))

	return &domain.SimulationResult{
		Input:               input,
		AnnualRevenue:       annualRevenue,
		AnnualExpense:       annualExpenses,
		Vehicle:             vehicle,
		Salary:              quote,
		Company:             company,
		TotalAnnualPersonal: totalAnnual,
		MonthlyAverage:      monthlyAverage,
		DividendUplift:      monthlyAverage.Sub(input.TargetNetMonthly),
		Composition: []domain.ChartPoint{
			{Label: domain.SeriesNetSalary, Amount: quote.MonthlyNetCashAfterTax},
			{Label: domain.SeriesDividends, Amount: money.Monthly(company.DividendsNet)},
		},
	}, nil
}

// RunScenarios runs every scenario of a configuration and flags the one with
// the highest monthly average (first wins on ties).
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		GeneratedAt: nowFunc(),
		RulesYear:   ce.Rules.Year,
	}
	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		result, err := ce.RunSimulation(ctx, sc.SimulationInput)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %q: %w", sc.Name, err)
		}
		ce.Logger.Infof("scenario %q: monthly average %s", sc.Name, result.MonthlyAverage.StringFixed(2))
		comparison.Scenarios = append(comparison.Scenarios, domain.ScenarioSummary{Name: sc.Name, Result: *result})
	}
	if len(comparison.Scenarios) > 0 {
		best := lo.MaxBy(comparison.Scenarios, func(a, b domain.ScenarioSummary) bool {
			return a.Result.MonthlyAverage.GreaterThan(b.Result.MonthlyAverage)
		})
		comparison.BestScenario = best.Name
	}
	return comparison, nil
}
