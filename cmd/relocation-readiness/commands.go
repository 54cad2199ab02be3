package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/movewise/relocation-readiness/internal/config"
	"github.com/movewise/relocation-readiness/internal/montecarlo"
	"github.com/movewise/relocation-readiness/internal/vtc"
	"github.com/movewise/relocation-readiness/pkg/constants"
	"github.com/movewise/relocation-readiness/pkg/output"
	"github.com/movewise/relocation-readiness/pkg/validation"
)

// setup loads the configuration, builds the logger, resolves the output
// format, and surfaces configuration warnings. Shared by all subcommands.
func setup() (*config.Configuration, *zap.Logger, string, error) {
	conf, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load configuration at %s: %w", cfgFile, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevelOverride)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	// CLI override takes precedence over config.
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return nil, nil, "", err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	return conf, logger, outputFormat, nil
}

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate planned transactions against a spending-control profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, logger, outputFormat, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			runEvaluation(conf, logger, outputFormat)
			return nil
		},
	}
}

func simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Project 12-month savings outcomes across randomized strategies",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, logger, outputFormat, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			runSimulation(conf, logger, outputFormat)
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run both simulators and print the combined readiness report",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf, logger, outputFormat, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			runEvaluation(conf, logger, outputFormat)
			fmt.Println()
			runSimulation(conf, logger, outputFormat)
			return nil
		},
	}
}

func runEvaluation(conf *config.Configuration, logger *zap.Logger, outputFormat string) {
	results, summary, recommendations := vtc.EvaluateAndSummarize(
		logger, conf.Transactions(), conf.VTC.Profile, conf.VTC.DailySpent)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyEvaluation(results, summary, recommendations)
	case constants.OutputFormatCSV:
		output.CsvEvaluation(results)
	}
}

func runSimulation(conf *config.Configuration, logger *zap.Logger, outputFormat string) {
	bundle := montecarlo.Run(logger, montecarlo.Input{
		BaseSalary:   conf.Simulation.BaseSalary,
		BaseExpenses: conf.Simulation.BaseExpenses,
		Levers: montecarlo.Levers{
			SalaryBoosts:      conf.Simulation.Levers.SalaryBoosts,
			ExpenseReductions: conf.Simulation.Levers.ExpenseReductions,
			SideIncomes:       conf.Simulation.Levers.SideIncomes,
		},
		NumSamples: conf.Simulation.Samples,
		Seed:       conf.Simulation.Seed,
	})

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettySimulation(bundle)
	case constants.OutputFormatCSV:
		output.CsvSimulation(bundle)
	}
}
