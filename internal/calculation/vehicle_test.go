package calculation

import (
	"testing"

	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVehicleAnnualCost(t *testing.T) {
	lease := decimal.NewFromInt(500)
	contribution := decimal.NewFromInt(3600)

	tests := []struct {
		name           string
		vehicle        *domain.VehicleInput
		expectedAnnual decimal.Decimal
		expectedMonth  decimal.Decimal
		description    string
	}{
		{
			name:           "No vehicle",
			vehicle:        nil,
			expectedAnnual: decimal.Zero,
			expectedMonth:  decimal.Zero,
			description:    "nil vehicle reduces to zero",
		},
		{
			name:           "Disabled vehicle",
			vehicle:        &domain.VehicleInput{Enabled: false, MonthlyLease: lease, DurationMonths: 36},
			expectedAnnual: decimal.Zero,
			expectedMonth:  decimal.Zero,
			description:    "disabled vehicle is ignored",
		},
		{
			name:           "Smoothed",
			vehicle:        &domain.VehicleInput{Enabled: true, MonthlyLease: lease, DurationMonths: 36, InitialContribution: contribution, Mode: domain.VehicleModeSmoothed},
			expectedAnnual: decimal.NewFromInt(7200),
			expectedMonth:  decimal.NewFromInt(600),
			description:    "500 + 3600/36 per month",
		},
		{
			name:           "Smoothed without duration",
			vehicle:        &domain.VehicleInput{Enabled: true, MonthlyLease: lease, InitialContribution: contribution, Mode: domain.VehicleModeSmoothed},
			expectedAnnual: decimal.NewFromInt(9600),
			expectedMonth:  decimal.NewFromInt(800),
			description:    "contribution counted once when there is nothing to spread it over",
		},
		{
			name:           "Year one",
			vehicle:        &domain.VehicleInput{Enabled: true, MonthlyLease: lease, DurationMonths: 36, InitialContribution: contribution, Mode: domain.VehicleModeYearOne},
			expectedAnnual: decimal.NewFromInt(9100),
			expectedMonth:  decimal.NewFromInt(9100).Div(decimal.NewFromInt(12)),
			description:    "contribution + 11 rents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := VehicleAnnualCost(tt.vehicle)
			assert.True(t, cost.Annual.Equal(tt.expectedAnnual), "%s: annual %s, want %s", tt.description, cost.Annual, tt.expectedAnnual)
			assert.True(t, cost.Monthly.Equal(tt.expectedMonth), "%s: monthly %s, want %s", tt.description, cost.Monthly, tt.expectedMonth)
		})
	}
}

func TestVehicleAnnualCost_PassThrough(t *testing.T) {
	cost := VehicleAnnualCost(&domain.VehicleInput{
		Enabled:              true,
		MonthlyLease:         decimal.NewFromInt(450),
		DurationMonths:       48,
		AnnualNonDeductible:  decimal.NewFromInt(1200),
		MonthlyBenefitInKind: decimal.NewFromInt(200),
	})
	assert.True(t, cost.NonDeductible.Equal(decimal.NewFromInt(1200)))
	assert.True(t, cost.MonthlyBenefitInKind.Equal(decimal.NewFromInt(200)))
	assert.True(t, cost.Annual.Equal(decimal.NewFromInt(5400)))
}
