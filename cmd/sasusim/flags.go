package main

import (
	"fmt"

	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// decimalValue adapts decimal.Decimal to pflag.Value.
type decimalValue struct{ d *decimal.Decimal }

func newDecimalValue(p *decimal.Decimal, def decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{d: p}
}

func (v *decimalValue) Type() string { return "decimal" }

func (v *decimalValue) String() string {
	if v == nil || v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a decimal number: %q", s)
	}
	*v.d = d
	return nil
}

// inputFlags collects a simulation input from the command line.
type inputFlags struct {
	input   domain.SimulationInput
	vehicle domain.VehicleInput
}

func (f *inputFlags) register(fs *pflag.FlagSet, withTarget bool) {
	fs.Var(newDecimalValue(&f.input.MonthlyRevenue, decimal.Zero), "revenue", "monthly revenue excluding VAT")
	fs.Var(newDecimalValue(&f.input.MonthlyExpenses, decimal.Zero), "expenses", "monthly operating expenses")
	if withTarget {
		fs.Var(newDecimalValue(&f.input.TargetNetMonthly, decimal.Zero), "target-net", "target monthly net salary after income tax")
	}
	fs.Var(newDecimalValue(&f.input.FiscalShares, decimal.NewFromInt(1)), "shares", "household fiscal shares (parts), multiple of 0.5")

	fs.BoolVar(&f.vehicle.Enabled, "vehicle", false, "include a company car lease")
	fs.Var(newDecimalValue(&f.vehicle.MonthlyLease, decimal.Zero), "vehicle-lease", "monthly lease payment")
	fs.IntVar(&f.vehicle.DurationMonths, "vehicle-duration", 36, "lease duration in months")
	fs.Var(newDecimalValue(&f.vehicle.InitialContribution, decimal.Zero), "vehicle-contribution", "initial contribution")
	fs.StringVar(&f.vehicle.Mode, "vehicle-mode", domain.VehicleModeSmoothed, "contribution treatment: smoothed or year_one")
	fs.Var(newDecimalValue(&f.vehicle.AnnualNonDeductible, decimal.Zero), "vehicle-non-deductible", "annual non-deductible depreciation added back")
	fs.Var(newDecimalValue(&f.vehicle.MonthlyBenefitInKind, decimal.Zero), "vehicle-benefit", "monthly benefit in kind")
}

// build returns the simulation input described by the flags.
func (f *inputFlags) build() domain.SimulationInput {
	in := f.input
	if f.vehicle.Enabled {
		v := f.vehicle
		in.Vehicle = &v
	}
	return in
}
