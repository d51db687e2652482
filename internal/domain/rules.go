package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FiscalRules groups every approximation constant used by the engine.
// Values are revised once per tax year; the algorithms never inline them.
type FiscalRules struct {
	Year int `yaml:"year" json:"year"`

	IncomeTax    IncomeTaxConfig    `yaml:"income_tax" json:"income_tax"`
	Payroll      PayrollConfig      `yaml:"payroll" json:"payroll"`
	CorporateTax CorporateTaxConfig `yaml:"corporate_tax" json:"corporate_tax"`
	Dividends    DividendConfig     `yaml:"dividends" json:"dividends"`
	Solver       SolverConfig       `yaml:"solver" json:"solver"`
}

// TaxBracket is one slice of the progressive scale, applied per household share.
// A zero Max marks the open-ended top bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper bound.
func (b TaxBracket) Unbounded() bool { return b.Max.IsZero() }

// IncomeTaxConfig describes personal income tax (impôt sur le revenu).
type IncomeTaxConfig struct {
	StandardDeductionRate decimal.Decimal `yaml:"standard_deduction_rate" json:"standard_deduction_rate"` // Default: 0.10
	Brackets              []TaxBracket    `yaml:"brackets" json:"brackets"`
}

// PayrollConfig holds the salary ratios of the "assimilé salarié" status.
type PayrollConfig struct {
	NetTaxableToGrossRatio decimal.Decimal `yaml:"net_taxable_to_gross_ratio" json:"net_taxable_to_gross_ratio"` // Default: 0.78
	EmployerChargeRate     decimal.Decimal `yaml:"employer_charge_rate" json:"employer_charge_rate"`             // Default: 0.45 of gross
}

// CorporateTaxConfig describes the two-tier corporate tax (impôt sur les sociétés).
type CorporateTaxConfig struct {
	ReducedRateThreshold decimal.Decimal `yaml:"reduced_rate_threshold" json:"reduced_rate_threshold"` // Default: 42500
	ReducedRate          decimal.Decimal `yaml:"reduced_rate" json:"reduced_rate"`                     // Default: 0.15
	StandardRate         decimal.Decimal `yaml:"standard_rate" json:"standard_rate"`                   // Default: 0.25
}

// DividendConfig holds the flat tax withheld on distributions.
type DividendConfig struct {
	FlatTaxRate decimal.Decimal `yaml:"flat_tax_rate" json:"flat_tax_rate"` // Default: 0.30
}

// SolverConfig bounds the salary bisection.
type SolverConfig struct {
	MaxIterations    int             `yaml:"max_iterations" json:"max_iterations"`         // Default: 50
	Tolerance        decimal.Decimal `yaml:"tolerance" json:"tolerance"`                   // Default: 1 currency unit per year
	UpperBoundFactor decimal.Decimal `yaml:"upper_bound_factor" json:"upper_bound_factor"` // Default: 3
}

// DefaultIncomeTaxBrackets returns the 2024 scale (revenus 2023), per share.
func DefaultIncomeTaxBrackets() []TaxBracket {
	return []TaxBracket{
		{Min: decimal.Zero, Max: decimal.NewFromInt(11294), Rate: decimal.Zero},
		{Min: decimal.NewFromInt(11294), Max: decimal.NewFromInt(28797), Rate: decimal.NewFromFloat(0.11)},
		{Min: decimal.NewFromInt(28797), Max: decimal.NewFromInt(82341), Rate: decimal.NewFromFloat(0.30)},
		{Min: decimal.NewFromInt(82341), Max: decimal.NewFromInt(177106), Rate: decimal.NewFromFloat(0.41)},
		{Min: decimal.NewFromInt(177106), Rate: decimal.NewFromFloat(0.45)},
	}
}

// DefaultFiscalRules returns the rules the simulator ships with.
func DefaultFiscalRules() FiscalRules {
	return FiscalRules{
		Year: 2024,
		IncomeTax: IncomeTaxConfig{
			StandardDeductionRate: decimal.NewFromFloat(0.10),
			Brackets:              DefaultIncomeTaxBrackets(),
		},
		Payroll: PayrollConfig{
			NetTaxableToGrossRatio: decimal.NewFromFloat(0.78),
			EmployerChargeRate:     decimal.NewFromFloat(0.45),
		},
		CorporateTax: CorporateTaxConfig{
			ReducedRateThreshold: decimal.NewFromInt(42500),
			ReducedRate:          decimal.NewFromFloat(0.15),
			StandardRate:         decimal.NewFromFloat(0.25),
		},
		Dividends: DividendConfig{
			FlatTaxRate: decimal.NewFromFloat(0.30),
		},
		Solver: SolverConfig{
			MaxIterations:    50,
			Tolerance:        decimal.NewFromInt(1),
			UpperBoundFactor: decimal.NewFromInt(3),
		},
	}
}

// WithDefaults fills every unset field from DefaultFiscalRules.
// The standard deduction rate is only defaulted together with the brackets,
// so an explicit table may be combined with a zero deduction.
func (r FiscalRules) WithDefaults() FiscalRules {
	def := DefaultFiscalRules()
	if r.Year == 0 {
		r.Year = def.Year
	}
	if len(r.IncomeTax.Brackets) == 0 {
		r.IncomeTax.Brackets = def.IncomeTax.Brackets
		if r.IncomeTax.StandardDeductionRate.IsZero() {
			r.IncomeTax.StandardDeductionRate = def.IncomeTax.StandardDeductionRate
		}
	}
	if r.Payroll.NetTaxableToGrossRatio.IsZero() {
		r.Payroll.NetTaxableToGrossRatio = def.Payroll.NetTaxableToGrossRatio
	}
	if r.Payroll.EmployerChargeRate.IsZero() {
		r.Payroll.EmployerChargeRate = def.Payroll.EmployerChargeRate
	}
	if r.CorporateTax.ReducedRateThreshold.IsZero() {
		r.CorporateTax.ReducedRateThreshold = def.CorporateTax.ReducedRateThreshold
	}
	if r.CorporateTax.ReducedRate.IsZero() {
		r.CorporateTax.ReducedRate = def.CorporateTax.ReducedRate
	}
	if r.CorporateTax.StandardRate.IsZero() {
		r.CorporateTax.StandardRate = def.CorporateTax.StandardRate
	}
	if r.Dividends.FlatTaxRate.IsZero() {
		r.Dividends.FlatTaxRate = def.Dividends.FlatTaxRate
	}
	if r.Solver.MaxIterations <= 0 {
		r.Solver.MaxIterations = def.Solver.MaxIterations
	}
	if r.Solver.Tolerance.LessThanOrEqual(decimal.Zero) {
		r.Solver.Tolerance = def.Solver.Tolerance
	}
	if r.Solver.UpperBoundFactor.LessThanOrEqual(decimal.NewFromInt(1)) {
		r.Solver.UpperBoundFactor = def.Solver.UpperBoundFactor
	}
	return r
}

// ValidateBrackets checks that a bracket table starts at zero, is contiguous,
// ends with an open bracket and never lowers the marginal rate.
func ValidateBrackets(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", brackets[0].Min)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be in [0, 1), got %s", i, b.Rate)
		}
		last := i == len(brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("bracket %d: last bracket must have no upper bound", i)
			}
			break
		}
		if b.Unbounded() || b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max must be greater than min", i)
		}
		next := brackets[i+1]
		if !next.Min.Equal(b.Max) {
			return fmt.Errorf("bracket %d: starts at %s but previous bracket ends at %s", i+1, next.Min, b.Max)
		}
		if next.Rate.LessThan(b.Rate) {
			return fmt.Errorf("bracket %d: rate %s is lower than previous rate %s", i+1, next.Rate, b.Rate)
		}
	}
	return nil
}
