package main

import (
	"fmt"

	"github.com/sasusim/remuneration-simulator/internal/config"
	"github.com/sasusim/remuneration-simulator/internal/domain"
	"github.com/sasusim/remuneration-simulator/internal/output"
	"github.com/spf13/cobra"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		flags      inputFlags
		configFile string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate one remuneration from flags or a scenario file",
		Example: `  sasusim simulate --revenue 12000 --expenses 500 --target-net 1700
  sasusim simulate --config scenarios.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				return a.runScenarioFile(cmd, configFile, format)
			}
			in := flags.build()
			parser := config.NewInputParser()
			if err := parser.ValidateSimulationInput(&in); err != nil {
				return err
			}
			cfg := &domain.Configuration{Scenarios: []domain.Scenario{{Name: "Simulation", SimulationInput: in}}}
			return a.runConfiguration(cmd, cfg, format)
		},
	}
	flags.register(cmd.Flags(), true)
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, console-lite, csv, json")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		configFile string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scenario of a file and flag the best one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScenarioFile(cmd, configFile, format)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, console-lite, csv, json")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func (a *app) runScenarioFile(cmd *cobra.Command, filename, format string) error {
	cfg, err := config.NewInputParser().LoadFromFile(filename)
	if err != nil {
		return err
	}
	a.logger.Debugf("loaded %d scenarios from %s", len(cfg.Scenarios), filename)
	return a.runConfiguration(cmd, cfg, format)
}

func (a *app) runConfiguration(cmd *cobra.Command, cfg *domain.Configuration, format string) error {
	engine := a.engine(cfg.FiscalRules)
	results, err := engine.RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	return output.Render(cmd.OutOrStdout(), format, results, output.GenerateAssumptions(engine.Rules))
}
