package main

import (
	"fmt"

	"github.com/sasusim/remuneration-simulator/internal/calculation"
	"github.com/sasusim/remuneration-simulator/internal/config"
	"github.com/sasusim/remuneration-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(a *app) *cobra.Command {
	var (
		flags  inputFlags
		opts   calculation.OptimizeOptions
		format string
	)
	cmd := &cobra.Command{
		Use:     "optimize",
		Short:   "Sweep the target net salary to find the best salary/dividend split",
		Example: `  sasusim optimize --revenue 10000 --expenses 1000 --min 0 --max 6000 --step 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := flags.build()
			if err := config.NewInputParser().ValidateSimulationInput(&in); err != nil {
				return err
			}
			result, err := a.engine(nil).Optimize(cmd.Context(), in, opts)
			if err != nil {
				return fmt.Errorf("optimization failed: %w", err)
			}
			return output.RenderOptimization(cmd.OutOrStdout(), format, result)
		},
	}
	flags.register(cmd.Flags(), false)
	cmd.Flags().Var(newDecimalValue(&opts.Min, decimal.Zero), "min", "lowest monthly net salary tried")
	cmd.Flags().Var(newDecimalValue(&opts.Max, decimal.NewFromInt(6000)), "max", "highest monthly net salary tried")
	cmd.Flags().Var(newDecimalValue(&opts.Step, decimal.NewFromInt(100)), "step", "sweep increment")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, console-lite, csv, json")
	return cmd
}
