package calculation

import (
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// VehicleAnnualCost reduces a company car lease to the annual cash cost, the
// non-deductible add-back and the monthly benefit in kind.
//
// In year_one mode the contribution is treated as the first rent, so the year
// holds the contribution plus 11 regular rents.
func VehicleAnnualCost(v *domain.VehicleInput) domain.VehicleCost {
	if v == nil || !v.Enabled {
		return domain.VehicleCost{Monthly: decimal.Zero, Annual: decimal.Zero, NonDeductible: decimal.Zero, MonthlyBenefitInKind: decimal.Zero}
	}

	var monthly, annual decimal.Decimal
	switch v.Mode {
	case domain.VehicleModeYearOne:
		annual = v.InitialContribution.Add(v.MonthlyLease.Mul(decimal.NewFromInt(11)))
		monthly = money.Monthly(annual)
	default:
		if v.DurationMonths > 0 {
			monthly = v.MonthlyLease.Add(v.InitialContribution.Div(decimal.NewFromInt(int64(v.DurationMonths))))
			annual = money.Annual(monthly)
		} else {
			annual = money.Annual(v.MonthlyLease).Add(v.InitialContribution)
			monthly = money.Monthly(annual)
		}
	}

	return domain.VehicleCost{
		Monthly:              monthly,
		Annual:               annual,
		NonDeductible:        v.AnnualNonDeductible,
		MonthlyBenefitInKind: v.MonthlyBenefitInKind,
	}
}
