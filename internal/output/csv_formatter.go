package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sasusim/remuneration-simulator/internal/domain"
)

// CSVFormatter writes one row per scenario, in configuration order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "TargetNetMonthly", "MonthlyIncomeTax", "AnnualGross", "AnnualEmployerCost", "AnnualSalaryCashOut",
		"AccountingResult", "FiscalResult", "CorporateTax", "PostTaxResult", "DividendsNet", "MonthlyAverage"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		r := sc.Result
		row := []string{
			sc.Name,
			r.Salary.MonthlyNetCashAfterTax.StringFixed(2),
			r.Salary.MonthlyIncomeTax.StringFixed(2),
			r.Salary.AnnualGross.StringFixed(2),
			r.Salary.AnnualEmployerCostTotal.StringFixed(2),
			r.Salary.AnnualSalaryCashOut.StringFixed(2),
			r.Company.AccountingResult.StringFixed(2),
			r.Company.FiscalResult.StringFixed(2),
			r.Company.CorporateTax.StringFixed(2),
			r.Company.PostTaxResult.StringFixed(2),
			r.Company.DividendsNet.StringFixed(2),
			r.MonthlyAverage.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatOptimization(result *domain.OptimizationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"TargetNetMonthly", "DividendsMonthly", "MonthlyAverage", "AnnualSalaryCashOut", "CorporateTax", "Best"}); err != nil {
		return nil, err
	}
	for _, p := range result.Points {
		best := "false"
		if p.TargetNetMonthly.Equal(result.Best.TargetNetMonthly) {
			best = "true"
		}
		row := []string{
			p.TargetNetMonthly.StringFixed(2),
			p.DividendsMonthly.StringFixed(2),
			p.MonthlyAverage.StringFixed(2),
			p.SalaryCashOut.StringFixed(2),
			p.CorporateTax.StringFixed(2),
			best,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
