package main

import (
	"github.com/sasusim/remuneration-simulator/internal/calculation"
	"github.com/sasusim/remuneration-simulator/internal/config"
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/internal/logging"
	"github.com/spf13/cobra"
)

// app carries what every command resolves before it runs.
type app struct {
	settings *config.Settings
	logger   *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "sasusim",
		Short:         "Simulateur de rémunération pour dirigeant de SASU",
		Long:          "Simule le salaire, l'impôt sur le revenu, l'impôt sur les sociétés et les dividendes d'un dirigeant de SASU.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			a.settings = settings
			a.logger = logging.New(logging.Config{Env: settings.Env, Level: settings.LogLevel, Output: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().String("env", "development", "environment: development or production (SASUSIM_ENV)")
	root.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error (SASUSIM_LOG_LEVEL)")

	root.AddCommand(
		newSimulateCmd(a),
		newCompareCmd(a),
		newOptimizeCmd(a),
		newExampleConfigCmd(),
		newServeCmd(a),
	)
	return root
}

// engine builds a calculation engine for rules loaded from a scenario file, defaults when nil.
func (a *app) engine(rules *domain.FiscalRules) *calculation.CalculationEngine {
	var ce *calculation.CalculationEngine
	if rules != nil {
		ce = calculation.NewCalculationEngineWithRules(*rules)
	} else {
		ce = calculation.NewCalculationEngine()
	}
	ce.SetLogger(a.logger.With("engine"))
	return ce
}
