package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrInvalidSweep is returned for sweep bounds that cannot produce any point.
var ErrInvalidSweep = errors.New("invalid optimization sweep")

// maxSweepPoints caps the work of a single optimization request.
const maxSweepPoints = 2000

// OptimizeOptions bounds the target salary sweep (monthly net after income tax).
type OptimizeOptions struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Step decimal.Decimal
}

// Validate checks the sweep bounds.
func (o OptimizeOptions) Validate() error {
	if o.Min.IsNegative() {
		return fmt.Errorf("%w: min must not be negative", ErrInvalidSweep)
	}
	if o.Step.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: step must be positive", ErrInvalidSweep)
	}
	if o.Max.LessThan(o.Min) {
		return fmt.Errorf("%w: max %s is below min %s", ErrInvalidSweep, o.Max, o.Min)
	}
	if o.Max.Sub(o.Min).Div(o.Step).GreaterThan(decimal.NewFromInt(maxSweepPoints)) {
		return fmt.Errorf("%w: more than %d points", ErrInvalidSweep, maxSweepPoints)
	}
	return nil
}

// Optimize sweeps the target net salary and reports the split between salary
// and dividends that maximizes the monthly average income.
func (ce *CalculationEngine) Optimize(ctx context.Context, input domain.SimulationInput, opts OptimizeOptions) (*domain.OptimizationResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var points []domain.OptimizationPoint
	for target := opts.Min; target.LessThanOrEqual(opts.Max); target = target.Add(opts.Step) {
		run := input
		run.TargetNetMonthly = target
		result, err := ce.RunSimulation(ctx, run)
		if err != nil {
			return nil, err
		}
		points = append(points, domain.OptimizationPoint{
			TargetNetMonthly: target,
			DividendsMonthly: money.Monthly(result.Company.DividendsNet),
			MonthlyAverage:   result.MonthlyAverage,
			SalaryCashOut:    result.Salary.AnnualSalaryCashOut,
			CorporateTax:     result.Company.CorporateTax,
		})
	}

	best := lo.MaxBy(points, func(a, b domain.OptimizationPoint) bool {
		return a.MonthlyAverage.GreaterThan(b.MonthlyAverage)
	})
	ce.Logger.Infof("optimization: %d points, best target %s gives %s per month",
		len(points), best.TargetNetMonthly.StringFixed(0), best.MonthlyAverage.StringFixed(2))

	return &domain.OptimizationResult{Input: input, Points: points, Best: best}, nil
}
