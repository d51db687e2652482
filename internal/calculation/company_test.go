package calculation

import (
	"testing"

	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newDefaultCompanyCalc() *CompanyResultCalculator {
	rules := domain.DefaultFiscalRules()
	return NewCompanyResultCalculator(rules.CorporateTax, rules.Dividends)
}

func TestCalculateCorporateTax(t *testing.T) {
	calc := newDefaultCompanyCalc()
	tests := []struct {
		name     string
		fiscal   decimal.Decimal
		expected decimal.Decimal
	}{
		{"loss", decimal.NewFromInt(-5000), decimal.Zero},
		{"zero", decimal.Zero, decimal.Zero},
		{"reduced rate only", decimal.NewFromInt(30000), decimal.NewFromInt(4500)},
		{"exactly at threshold", decimal.NewFromInt(42500), decimal.NewFromInt(6375)},
		{"both tiers", decimal.NewFromInt(100000), decimal.NewFromInt(20750)}, // 6375 + 57500*0.25
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CalculateCorporateTax(tt.fiscal)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCalculateCompanyResult_NoSalary(t *testing.T) {
	calc := newDefaultCompanyCalc()
	r := calc.CalculateCompanyResult(decimal.NewFromInt(120000), decimal.NewFromInt(6000), decimal.Zero, decimal.Zero, decimal.Zero)

	assert.True(t, r.AccountingResult.Equal(decimal.NewFromInt(114000)))
	assert.True(t, r.FiscalResult.Equal(decimal.NewFromInt(114000)))
	assert.True(t, r.CorporateTax.Equal(decimal.NewFromInt(24250)), "6375 + 71500*0.25, got %s", r.CorporateTax)
	assert.True(t, r.PostTaxResult.Equal(decimal.NewFromInt(89750)))
	assert.True(t, r.DividendsNet.Equal(decimal.NewFromInt(62825)))
	assert.True(t, r.DividendTax.Equal(decimal.NewFromInt(26925)))
}

func TestCalculateCompanyResult_NonDeductibleAddBack(t *testing.T) {
	calc := newDefaultCompanyCalc()
	r := calc.CalculateCompanyResult(decimal.NewFromInt(60000), decimal.NewFromInt(5000), decimal.NewFromInt(20000), decimal.NewFromInt(6000), decimal.NewFromInt(2000))

	assert.True(t, r.AccountingResult.Equal(decimal.NewFromInt(29000)))
	assert.True(t, r.FiscalResult.Equal(decimal.NewFromInt(31000)))
	assert.True(t, r.FiscalResult.Sub(r.AccountingResult).Equal(r.NonDeductibleAddBack))
	assert.True(t, r.CorporateTax.Equal(decimal.NewFromInt(4650)), "tax on fiscal base, got %s", r.CorporateTax)
	assert.True(t, r.PostTaxResult.Equal(decimal.NewFromInt(24350)), "tax deducted from accounting result")
	assert.True(t, r.DividendsNet.Equal(decimal.NewFromInt(17045)))
}

func TestCalculateCompanyResult_Saturation(t *testing.T) {
	calc := newDefaultCompanyCalc()

	t.Run("loss", func(t *testing.T) {
		r := calc.CalculateCompanyResult(decimal.NewFromInt(10000), decimal.NewFromInt(5000), decimal.NewFromInt(30000), decimal.Zero, decimal.Zero)
		assert.True(t, r.AccountingResult.Equal(decimal.NewFromInt(-25000)))
		assert.True(t, r.CorporateTax.IsZero())
		assert.True(t, r.PostTaxResult.IsZero())
		assert.True(t, r.DividendsNet.IsZero())
	})

	t.Run("add-back taxes a company without accounting profit", func(t *testing.T) {
		r := calc.CalculateCompanyResult(decimal.NewFromInt(10000), decimal.Zero, decimal.NewFromInt(9000), decimal.NewFromInt(1000), decimal.NewFromInt(4000))
		assert.True(t, r.AccountingResult.IsZero())
		assert.True(t, r.CorporateTax.Equal(decimal.NewFromInt(600)))
		assert.True(t, r.PostTaxResult.IsZero())
		assert.True(t, r.DividendsNet.IsZero())
	})

	t.Run("never negative", func(t *testing.T) {
		for revenue := int64(0); revenue <= 300000; revenue += 25000 {
			for salary := int64(0); salary <= 200000; salary += 40000 {
				r := calc.CalculateCompanyResult(decimal.NewFromInt(revenue), decimal.NewFromInt(3000), decimal.NewFromInt(salary), decimal.NewFromInt(2000), decimal.NewFromInt(1500))
				assert.False(t, r.PostTaxResult.IsNegative())
				assert.False(t, r.DividendsNet.IsNegative())
				assert.False(t, r.CorporateTax.IsNegative())
			}
		}
	})
}
