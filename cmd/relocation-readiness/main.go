package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/movewise/relocation-readiness/pkg/constants"
)

var (
	cfgFile          string
	logLevelOverride string
	outputFormatFlag string
	version          = "dev"

	rootCmd = &cobra.Command{
		Use:   "relocation-readiness",
		Short: "Financial readiness simulators for moving abroad",
		Long: `relocation-readiness evaluates how prepared you are to move abroad:
it simulates which of your planned transactions would survive spending
controls, and projects a distribution of 12-month savings outcomes across
randomized career, expense, and side-income strategies.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outputFormatFlag, "output-format", "", "type of output override: pretty, csv")

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("relocation-readiness %s\n", version)
		},
	}
}
