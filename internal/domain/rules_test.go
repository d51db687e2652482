package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFiscalRules(t *testing.T) {
	r := DefaultFiscalRules()

	require.NoError(t, ValidateBrackets(r.IncomeTax.Brackets))
	assert.Equal(t, 2024, r.Year)
	assert.True(t, r.IncomeTax.StandardDeductionRate.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, r.Payroll.NetTaxableToGrossRatio.Equal(decimal.NewFromFloat(0.78)))
	assert.True(t, r.Payroll.EmployerChargeRate.Equal(decimal.NewFromFloat(0.45)))
	assert.True(t, r.CorporateTax.ReducedRateThreshold.Equal(decimal.NewFromInt(42500)))
	assert.True(t, r.Dividends.FlatTaxRate.Equal(decimal.NewFromFloat(0.30)))
	assert.Equal(t, 50, r.Solver.MaxIterations)
	assert.True(t, r.IncomeTax.Brackets[len(r.IncomeTax.Brackets)-1].Unbounded())
}

func TestWithDefaults(t *testing.T) {
	t.Run("empty rules become defaults", func(t *testing.T) {
		got := FiscalRules{}.WithDefaults()
		want := DefaultFiscalRules()
		assert.Equal(t, want.Year, got.Year)
		assert.Len(t, got.IncomeTax.Brackets, len(want.IncomeTax.Brackets))
		assert.True(t, got.CorporateTax.StandardRate.Equal(want.CorporateTax.StandardRate))
		assert.True(t, got.Solver.UpperBoundFactor.Equal(want.Solver.UpperBoundFactor))
	})

	t.Run("overrides survive", func(t *testing.T) {
		got := FiscalRules{
			Year:      2025,
			Dividends: DividendConfig{FlatTaxRate: decimal.NewFromFloat(0.314)},
			Solver:    SolverConfig{MaxIterations: 80},
		}.WithDefaults()
		assert.Equal(t, 2025, got.Year)
		assert.True(t, got.Dividends.FlatTaxRate.Equal(decimal.NewFromFloat(0.314)))
		assert.Equal(t, 80, got.Solver.MaxIterations)
		assert.True(t, got.Payroll.EmployerChargeRate.Equal(decimal.NewFromFloat(0.45)))
	})

	t.Run("explicit bracket table keeps zero deduction", func(t *testing.T) {
		got := FiscalRules{IncomeTax: IncomeTaxConfig{Brackets: []TaxBracket{{Min: decimal.Zero, Rate: decimal.NewFromFloat(0.2)}}}}.WithDefaults()
		assert.True(t, got.IncomeTax.StandardDeductionRate.IsZero())
		assert.Len(t, got.IncomeTax.Brackets, 1)
	})
}

func TestValidateBrackets(t *testing.T) {
	d := decimal.NewFromInt
	tests := []struct {
		name     string
		brackets []TaxBracket
		wantErr  string
	}{
		{"empty", nil, "at least one bracket"},
		{"not starting at zero", []TaxBracket{{Min: d(10), Rate: decimal.Zero}}, "must start at 0"},
		{"gap", []TaxBracket{{Min: d(0), Max: d(10)}, {Min: d(11), Rate: decimal.NewFromFloat(0.1)}}, "previous bracket ends"},
		{"decreasing rate", []TaxBracket{{Min: d(0), Max: d(10), Rate: decimal.NewFromFloat(0.2)}, {Min: d(10), Rate: decimal.NewFromFloat(0.1)}}, "lower than previous"},
		{"bounded top", []TaxBracket{{Min: d(0), Max: d(10)}}, "no upper bound"},
		{"rate too high", []TaxBracket{{Min: d(0), Rate: d(1)}}, "rate must be"},
		{"inverted bounds", []TaxBracket{{Min: d(0), Max: d(10)}, {Min: d(10), Max: d(5)}, {Min: d(5)}}, "max must be greater"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBrackets(tt.brackets)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
