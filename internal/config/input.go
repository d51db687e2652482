package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput marks validation failures of user supplied values.
var ErrInvalidInput = errors.New("invalid input")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file (YAML, or the same document written as JSON)
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document. Unknown keys are rejected.
// A fiscal_rules block is merged onto DefaultFiscalRules, so omitted keys keep
// their default and explicit values, zero included, are kept as written.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	rules := domain.DefaultFiscalRules()
	config := domain.Configuration{FiscalRules: &rules}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// applyDefaults fills omitted optional values
func (ip *InputParser) applyDefaults(config *domain.Configuration) {
	for i := range config.Scenarios {
		ApplyInputDefaults(&config.Scenarios[i].SimulationInput)
	}
}

// ApplyInputDefaults sets a single fiscal share and smoothed vehicle mode when omitted.
func ApplyInputDefaults(in *domain.SimulationInput) {
	if in.FiscalShares.IsZero() {
		in.FiscalShares = decimal.NewFromInt(1)
	}
	if in.Vehicle != nil && in.Vehicle.Mode == "" {
		in.Vehicle.Mode = domain.VehicleModeSmoothed
	}
}

// ValidateConfiguration validates the loaded configuration.
// Fiscal rules, when present, must be complete: Parse merges them onto the defaults.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", ErrInvalidInput)
	}

	names := make(map[string]struct{}, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("%w: scenario %d: name is required", ErrInvalidInput, i)
		}
		if _, dup := names[scenario.Name]; dup {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrInvalidInput, scenario.Name)
		}
		names[scenario.Name] = struct{}{}
		if err := ip.ValidateSimulationInput(&scenario.SimulationInput); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	if config.FiscalRules != nil {
		if err := ip.validateFiscalRules(config.FiscalRules); err != nil {
			return fmt.Errorf("fiscal rules validation failed: %w", err)
		}
	}

	return nil
}

// ValidateSimulationInput rejects values the engine does not accept
func (ip *InputParser) ValidateSimulationInput(in *domain.SimulationInput) error {
	if in.MonthlyRevenue.IsNegative() {
		return fmt.Errorf("%w: monthly revenue cannot be negative", ErrInvalidInput)
	}
	if in.MonthlyExpenses.IsNegative() {
		return fmt.Errorf("%w: monthly expenses cannot be negative", ErrInvalidInput)
	}
	if in.TargetNetMonthly.IsNegative() {
		return fmt.Errorf("%w: target net monthly salary cannot be negative", ErrInvalidInput)
	}
	if in.FiscalShares.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: fiscal shares must be at least 1", ErrInvalidInput)
	}
	if !in.FiscalShares.Mul(decimal.NewFromInt(2)).IsInteger() {
		return fmt.Errorf("%w: fiscal shares must be a multiple of 0.5, got %s", ErrInvalidInput, in.FiscalShares)
	}
	if in.Vehicle != nil && in.Vehicle.Enabled {
		if err := ip.validateVehicle(in.Vehicle); err != nil {
			return fmt.Errorf("vehicle: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateVehicle(v *domain.VehicleInput) error {
	if v.Mode != domain.VehicleModeSmoothed && v.Mode != domain.VehicleModeYearOne {
		return fmt.Errorf("%w: mode must be '%s' or '%s'", ErrInvalidInput, domain.VehicleModeSmoothed, domain.VehicleModeYearOne)
	}
	if v.MonthlyLease.IsNegative() || v.InitialContribution.IsNegative() {
		return fmt.Errorf("%w: lease and contribution cannot be negative", ErrInvalidInput)
	}
	if v.DurationMonths < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidInput)
	}
	if v.Mode == domain.VehicleModeSmoothed && v.DurationMonths == 0 && v.InitialContribution.IsPositive() {
		return fmt.Errorf("%w: smoothing a contribution requires a duration", ErrInvalidInput)
	}
	if v.AnnualNonDeductible.IsNegative() {
		return fmt.Errorf("%w: non-deductible part cannot be negative", ErrInvalidInput)
	}
	if v.MonthlyBenefitInKind.IsNegative() {
		return fmt.Errorf("%w: benefit in kind cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (ip *InputParser) validateFiscalRules(rules *domain.FiscalRules) error {
	if len(rules.IncomeTax.Brackets) > 0 {
		if err := domain.ValidateBrackets(rules.IncomeTax.Brackets); err != nil {
			return fmt.Errorf("%w: income tax: %v", ErrInvalidInput, err)
		}
	}
	unitRates := map[string]decimal.Decimal{
		"income_tax.standard_deduction_rate": rules.IncomeTax.StandardDeductionRate,
		"payroll.employer_charge_rate":       rules.Payroll.EmployerChargeRate,
		"corporate_tax.reduced_rate":         rules.CorporateTax.ReducedRate,
		"corporate_tax.standard_rate":        rules.CorporateTax.StandardRate,
		"dividends.flat_tax_rate":            rules.Dividends.FlatTaxRate,
	}
	for name, rate := range unitRates {
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: %s must be in [0, 1)", ErrInvalidInput, name)
		}
	}
	ratio := rules.Payroll.NetTaxableToGrossRatio
	if !ratio.IsPositive() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: payroll.net_taxable_to_gross_ratio must be in (0, 1]", ErrInvalidInput)
	}
	if rules.CorporateTax.ReducedRateThreshold.IsNegative() {
		return fmt.Errorf("%w: corporate_tax.reduced_rate_threshold cannot be negative", ErrInvalidInput)
	}
	if rules.Solver.MaxIterations < 1 || rules.Solver.MaxIterations > 200 {
		return fmt.Errorf("%w: solver.max_iterations must be between 1 and 200", ErrInvalidInput)
	}
	if !rules.Solver.Tolerance.IsPositive() {
		return fmt.Errorf("%w: solver.tolerance must be positive", ErrInvalidInput)
	}
	if rules.Solver.UpperBoundFactor.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: solver.upper_bound_factor must be at least 1", ErrInvalidInput)
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	rules := domain.DefaultFiscalRules()
	return &domain.Configuration{
		FiscalRules: &rules,
		Scenarios: []domain.Scenario{
			{
				Name: "Salaire minimal",
				SimulationInput: domain.SimulationInput{
					MonthlyRevenue:   decimal.NewFromInt(10000),
					MonthlyExpenses:  decimal.NewFromInt(500),
					TargetNetMonthly: decimal.NewFromInt(1700),
					FiscalShares:     decimal.NewFromInt(1),
				},
			},
			{
				Name: "Salaire confortable",
				SimulationInput: domain.SimulationInput{
					MonthlyRevenue:   decimal.NewFromInt(10000),
					MonthlyExpenses:  decimal.NewFromInt(500),
					TargetNetMonthly: decimal.NewFromInt(3500),
					FiscalShares:     decimal.NewFromInt(1),
				},
			},
			{
				Name: "Véhicule de société",
				SimulationInput: domain.SimulationInput{
					MonthlyRevenue:   decimal.NewFromInt(10000),
					MonthlyExpenses:  decimal.NewFromInt(500),
					TargetNetMonthly: decimal.NewFromInt(1700),
					FiscalShares:     decimal.NewFromFloat(1.5),
					Vehicle: &domain.VehicleInput{
						Enabled:              true,
						MonthlyLease:         decimal.NewFromInt(500),
						DurationMonths:       36,
						InitialContribution:  decimal.NewFromInt(3000),
						Mode:                 domain.VehicleModeSmoothed,
						AnnualNonDeductible:  decimal.NewFromInt(1200),
						MonthlyBenefitInKind: decimal.NewFromInt(200),
					},
				},
			},
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
