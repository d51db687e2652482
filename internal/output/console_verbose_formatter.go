package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the full salary and company breakdown of every scenario.
type ConsoleVerboseFormatter struct {
	// Assumptions are printed at the end when set.
	Assumptions []string
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const chartWidth = 40

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SIMULATEUR FISCAL SASU")
	fmt.Fprintln(&buf, "==========================================================")
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeScenario(&buf, sc)
	}
	if len(results.Scenarios) > 1 && results.BestScenario != "" {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Meilleur scénario : %s (%s/mois, Δ %s)\n", rec.ScenarioName, FormatCurrency(rec.MonthlyAverage), FormatCurrency(rec.MonthlyChange))
	}
	if len(c.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Hypothèses :")
		for _, a := range c.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeScenario(w io.Writer, sc domain.ScenarioSummary) {
	r := sc.Result
	vehicle := r.Input.Vehicle != nil && r.Input.Vehicle.Enabled

	fmt.Fprintf(w, "%s\n", sc.Name)
	fmt.Fprintln(w, "----------------------------------------------------------")
	fmt.Fprintf(w, "Rémunération mensuelle moyenne (net) : %s\n", FormatCurrency(r.MonthlyAverage))
	fmt.Fprintf(w, "  dont %s via dividendes\n", FormatCurrency(r.DividendUplift))
	if vehicle {
		fmt.Fprintln(w, "  (salaire net cash + dividendes, hors avantage en nature)")
	}
	fmt.Fprintln(w)

	peak := decimal.Zero
	for _, p := range r.Composition {
		peak = decimal.Max(peak, p.Amount)
	}
	for _, p := range r.Composition {
		fmt.Fprintf(w, "  %-20s %12s  %s\n", p.Label, FormatCurrency(p.Amount), bar(p.Amount, peak, chartWidth))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Dividendes de fin d'année")
	fmt.Fprintf(w, "  Bénéfice (avant IS)        %s\n", FormatCurrency(r.Company.AccountingResult))
	fmt.Fprintf(w, "  IS (impôt sociétés)        %s\n", FormatCurrency(r.Company.CorporateTax))
	fmt.Fprintf(w, "  Dividendes nets (poche)    %s\n", FormatCurrency(r.Company.DividendsNet))
	fmt.Fprintln(w)

	q := r.Salary
	fmt.Fprintln(w, "Fiche de paie (mensuel)")
	fmt.Fprintf(w, "  Net après impôt            %s\n", FormatCents(q.MonthlyNetCashAfterTax))
	fmt.Fprintf(w, "  Net avant impôt (cash)     %s\n", FormatCents(q.MonthlyNetCashBeforeTax))
	fmt.Fprintf(w, "  Impôt sur le revenu (est.) %s\n", FormatCents(q.MonthlyIncomeTax))
	fmt.Fprintf(w, "  Taux marginal d'imposition %s\n", FormatPercentage(q.MarginalTaxRate))
	if vehicle {
		fmt.Fprintf(w, "  Avantage en nature         %s\n", FormatCents(q.MonthlyBenefitInKind))
	}
	fmt.Fprintf(w, "  Salaire brut               %s\n", FormatCents(q.MonthlyGross))
	fmt.Fprintf(w, "  Total chargé               %s\n", FormatCents(q.MonthlyEmployerCostTotal))
	fmt.Fprintf(w, "  Sortie cash salaire        %s\n", FormatCents(q.MonthlySalaryCashOut))
	if !q.Converged {
		fmt.Fprintf(w, "  (approximation : tolérance non atteinte après %d itérations)\n", q.Iterations)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Compte de résultat simplifié (annuel)")
	fmt.Fprintf(w, "  + Chiffre d'affaires        %s\n", FormatCurrency(r.AnnualRevenue))
	fmt.Fprintf(w, "  - Charges externes          %s\n", FormatCurrency(r.AnnualExpense))
	fmt.Fprintf(w, "  - Masse salariale (cash)    %s\n", FormatCurrency(q.AnnualSalaryCashOut))
	if vehicle {
		fmt.Fprintf(w, "  - Véhicule                  %s\n", FormatCurrency(r.Vehicle.Annual))
	}
	fmt.Fprintf(w, "  = Résultat comptable        %s\n", FormatCurrency(r.Company.AccountingResult))
	if r.Company.NonDeductibleAddBack.IsPositive() {
		fmt.Fprintf(w, "    dont réintégration fiscale %s\n", FormatCurrency(r.Company.NonDeductibleAddBack))
	}
	fmt.Fprintf(w, "  - Impôt sur les sociétés    %s\n", FormatCurrency(r.Company.CorporateTax))
	fmt.Fprintf(w, "  = Bénéfice net              %s\n", FormatCurrency(r.Company.PostTaxResult))
}

func (c ConsoleVerboseFormatter) FormatOptimization(result *domain.OptimizationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "OPTIMISATION SALAIRE / DIVIDENDES")
	fmt.Fprintln(&buf, "==========================================================")
	fmt.Fprintf(&buf, "%12s %12s %12s\n", "Salaire net", "Dividendes", "Total/mois")
	peak := result.Best.MonthlyAverage
	for _, p := range result.Points {
		marker := " "
		if p.TargetNetMonthly.Equal(result.Best.TargetNetMonthly) {
			marker = "*"
		}
		fmt.Fprintf(&buf, "%12s %12s %12s %s %s\n",
			FormatCurrency(p.TargetNetMonthly), FormatCurrency(p.DividendsMonthly), FormatCurrency(p.MonthlyAverage), marker, bar(p.MonthlyAverage, peak, chartWidth))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Optimum : salaire net de %s/mois pour %s/mois au total\n", FormatCurrency(result.Best.TargetNetMonthly), FormatCurrency(result.Best.MonthlyAverage))
	return buf.Bytes(), nil
}
