package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeOptionsValidate(t *testing.T) {
	d := decimal.NewFromInt
	tests := []struct {
		name string
		opts OptimizeOptions
	}{
		{"zero step", OptimizeOptions{Min: d(0), Max: d(1000), Step: d(0)}},
		{"negative min", OptimizeOptions{Min: d(-100), Max: d(1000), Step: d(100)}},
		{"max below min", OptimizeOptions{Min: d(2000), Max: d(1000), Step: d(100)}},
		{"too many points", OptimizeOptions{Min: d(0), Max: d(100000), Step: d(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.opts.Validate(), ErrInvalidSweep)
		})
	}
	assert.NoError(t, OptimizeOptions{Min: d(0), Max: d(0), Step: d(100)}.Validate())
}

func TestOptimize(t *testing.T) {
	engine := NewCalculationEngine()
	opts := OptimizeOptions{Min: decimal.Zero, Max: decimal.NewFromInt(6000), Step: decimal.NewFromInt(500)}

	res, err := engine.Optimize(context.Background(), defaultInput(), opts)
	require.NoError(t, err)
	require.Len(t, res.Points, 13)
	assert.True(t, res.Points[0].TargetNetMonthly.IsZero())
	assert.True(t, res.Points[12].TargetNetMonthly.Equal(decimal.NewFromInt(6000)))

	for _, p := range res.Points {
		assert.True(t, res.Best.MonthlyAverage.GreaterThanOrEqual(p.MonthlyAverage), "best %s below point %s", res.Best.MonthlyAverage, p.MonthlyAverage)
		assert.False(t, p.DividendsMonthly.IsNegative())
	}
	// salary cash-out grows with the target
	for i := 1; i < len(res.Points); i++ {
		assert.True(t, res.Points[i].SalaryCashOut.GreaterThan(res.Points[i-1].SalaryCashOut))
	}
}

func TestOptimize_InvalidOptions(t *testing.T) {
	_, err := NewCalculationEngine().Optimize(context.Background(), defaultInput(), OptimizeOptions{Step: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidSweep)
}
