package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle cost modes
const (
	VehicleModeSmoothed = "smoothed" // contribution spread over the lease duration
	VehicleModeYearOne  = "year_one" // contribution paid as a first-year cash event
)

// Chart series labels rendered next to the headline figure
const (
	SeriesNetSalary = "Salaire Net"
	SeriesDividends = "Dividendes (Lissés)"
)

// VehicleInput describes an optional company car lease
type VehicleInput struct {
	Enabled              bool            `yaml:"enabled" json:"enabled"`
	MonthlyLease         decimal.Decimal `yaml:"monthly_lease" json:"monthly_lease"`
	DurationMonths       int             `yaml:"duration_months" json:"duration_months"`
	InitialContribution  decimal.Decimal `yaml:"initial_contribution" json:"initial_contribution"`
	Mode                 string          `yaml:"mode" json:"mode"`                                       // smoothed | year_one
	AnnualNonDeductible  decimal.Decimal `yaml:"annual_non_deductible" json:"annual_non_deductible"`     // excess depreciation added back
	MonthlyBenefitInKind decimal.Decimal `yaml:"monthly_benefit_in_kind" json:"monthly_benefit_in_kind"` // avantage en nature
}

// VehicleCost is the vehicle input reduced to the scalars the engine consumes
type VehicleCost struct {
	Monthly              decimal.Decimal `json:"monthly"`
	Annual               decimal.Decimal `json:"annual"`
	NonDeductible        decimal.Decimal `json:"non_deductible"`
	MonthlyBenefitInKind decimal.Decimal `json:"monthly_benefit_in_kind"`
}

// SimulationInput is everything collected from the user for one run
type SimulationInput struct {
	MonthlyRevenue   decimal.Decimal `yaml:"monthly_revenue" json:"monthly_revenue"`
	MonthlyExpenses  decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	TargetNetMonthly decimal.Decimal `yaml:"target_net_monthly" json:"target_net_monthly"` // net after income tax
	FiscalShares     decimal.Decimal `yaml:"fiscal_shares" json:"fiscal_shares"`
	Vehicle          *VehicleInput   `yaml:"vehicle,omitempty" json:"vehicle,omitempty"`
}

// SalaryQuote is the payslip reconstructed from a target net amount
type SalaryQuote struct {
	MonthlyNetCashAfterTax   decimal.Decimal `json:"monthly_net_cash_after_tax"`
	MonthlyBenefitInKind     decimal.Decimal `json:"monthly_benefit_in_kind"`
	MonthlyIncomeTax         decimal.Decimal `json:"monthly_income_tax"`
	MonthlyNetCashBeforeTax  decimal.Decimal `json:"monthly_net_cash_before_tax"`
	MonthlyGross             decimal.Decimal `json:"monthly_gross"`
	MonthlyEmployerCostTotal decimal.Decimal `json:"monthly_employer_cost_total"`
	MonthlySalaryCashOut     decimal.Decimal `json:"monthly_salary_cash_out"`

	AnnualNetTaxable        decimal.Decimal `json:"annual_net_taxable"`
	AnnualIncomeTax         decimal.Decimal `json:"annual_income_tax"`
	AnnualGross             decimal.Decimal `json:"annual_gross"`
	AnnualEmployerCharges   decimal.Decimal `json:"annual_employer_charges"`
	AnnualEmployerCostTotal decimal.Decimal `json:"annual_employer_cost_total"`
	AnnualSalaryCashOut     decimal.Decimal `json:"annual_salary_cash_out"`
	MarginalTaxRate         decimal.Decimal `json:"marginal_tax_rate"` // bracket rate of the per-share quotient

	// Solver diagnostics; a non-converged quote is still the best midpoint found
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// CompanyResult is the yearly profit, tax and dividend waterfall
type CompanyResult struct {
	AccountingResult     decimal.Decimal `json:"accounting_result"`
	NonDeductibleAddBack decimal.Decimal `json:"non_deductible_add_back"`
	FiscalResult         decimal.Decimal `json:"fiscal_result"`
	CorporateTax         decimal.Decimal `json:"corporate_tax"`
	PostTaxResult        decimal.Decimal `json:"post_tax_result"`
	DividendTax          decimal.Decimal `json:"dividend_tax"`
	DividendsNet         decimal.Decimal `json:"dividends_net"`
}

// ChartPoint is one bar of the income composition chart
type ChartPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// SimulationResult aggregates one full run
type SimulationResult struct {
	Input         SimulationInput `json:"input"`
	AnnualRevenue decimal.Decimal `json:"annual_revenue"`
	AnnualExpense decimal.Decimal `json:"annual_expenses"`
	Vehicle       VehicleCost     `json:"vehicle"`
	Salary        SalaryQuote     `json:"salary"`
	Company       CompanyResult   `json:"company"`

	TotalAnnualPersonal decimal.Decimal `json:"total_annual_personal"`
	MonthlyAverage      decimal.Decimal `json:"monthly_average"`
	DividendUplift      decimal.Decimal `json:"dividend_uplift"` // monthly average above the salary target
	Composition         []ChartPoint    `json:"composition"`
}

// Scenario is a named simulation input in a configuration file.
// The input fields sit next to the name in both YAML and JSON.
type Scenario struct {
	Name            string `yaml:"name" json:"name"`
	SimulationInput `yaml:",inline"`
}

// Configuration is the content of a scenario file
type Configuration struct {
	FiscalRules *FiscalRules `yaml:"fiscal_rules,omitempty" json:"fiscal_rules,omitempty"`
	Scenarios   []Scenario   `yaml:"scenarios" json:"scenarios"`
}

// ScenarioSummary pairs a scenario name with its result
type ScenarioSummary struct {
	Name   string           `json:"name"`
	Result SimulationResult `json:"result"`
}

// ScenarioComparison is the outcome of running every scenario of a configuration
type ScenarioComparison struct {
	GeneratedAt  time.Time         `json:"generated_at"`
	RulesYear    int               `json:"rules_year"`
	Scenarios    []ScenarioSummary `json:"scenarios"`
	BestScenario string            `json:"best_scenario"`
}

// OptimizationPoint is one target salary of a sweep
type OptimizationPoint struct {
	TargetNetMonthly decimal.Decimal `json:"target_net_monthly"`
	DividendsMonthly decimal.Decimal `json:"dividends_monthly"`
	MonthlyAverage   decimal.Decimal `json:"monthly_average"`
	SalaryCashOut    decimal.Decimal `json:"annual_salary_cash_out"`
	CorporateTax     decimal.Decimal `json:"corporate_tax"`
}

// OptimizationResult lists every swept point and the best one
type OptimizationResult struct {
	Input  SimulationInput     `json:"input"`
	Points []OptimizationPoint `json:"points"`
	Best   OptimizationPoint   `json:"best"`
}
