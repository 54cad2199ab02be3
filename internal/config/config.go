// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/movewise/relocation-readiness/internal/vtc"
	"github.com/movewise/relocation-readiness/pkg/constants"
)

// Configuration holds all configuration for relocation-readiness.
type Configuration struct {
	VTC        VTCConfig        `mapstructure:"vtc"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
}

// VTCConfig holds the transaction-control evaluation inputs.
type VTCConfig struct {
	Profile      string              `mapstructure:"profile"`
	DailySpent   float64             `mapstructure:"dailySpent"`
	Transactions []TransactionConfig `mapstructure:"transactions"`
}

// TransactionConfig is one planned transaction as written in the config
// file. Category and location are free-form text parsed into the typed
// enumerations with unknown/domestic fallbacks.
type TransactionConfig struct {
	Description string  `mapstructure:"description"`
	Amount      float64 `mapstructure:"amount"`
	Category    string  `mapstructure:"category"`
	Location    string  `mapstructure:"location"`
}

// SimulationConfig holds the Monte Carlo run parameters.
type SimulationConfig struct {
	BaseSalary   float64      `mapstructure:"baseSalary"`
	BaseExpenses float64      `mapstructure:"baseExpenses"`
	Samples      int          `mapstructure:"samples"`
	Seed         *int64       `mapstructure:"seed"`
	Levers       LeversConfig `mapstructure:"levers"`
}

// LeversConfig holds the candidate value sets for the three simulation
// levers. Empty sets fall back to the engine defaults.
type LeversConfig struct {
	SalaryBoosts      []float64 `mapstructure:"salaryBoosts"`
	ExpenseReductions []float64 `mapstructure:"expenseReductions"`
	SideIncomes       []float64 `mapstructure:"sideIncomes"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()

	return &configuration, nil
}

// applyDefaults fills unset fields with their documented defaults.
func (c *Configuration) applyDefaults() {
	if c.VTC.Profile == "" {
		c.VTC.Profile = vtc.ProfileStandard
	}
	if c.Simulation.Samples == 0 {
		c.Simulation.Samples = constants.DefaultNumSamples
	}
}

// Transactions converts the configured transaction list into evaluator
// inputs, parsing categories and locations. An empty list yields the bundled
// sample transactions so the demo mode works without any config.
func (c *Configuration) Transactions() []vtc.Transaction {
	if len(c.VTC.Transactions) == 0 {
		return vtc.SampleTransactions()
	}

	transactions := make([]vtc.Transaction, 0, len(c.VTC.Transactions))
	for _, tx := range c.VTC.Transactions {
		transactions = append(transactions, vtc.Transaction{
			Description: tx.Description,
			Amount:      tx.Amount,
			Category:    vtc.ParseCategory(tx.Category),
			Location:    vtc.ParseLocation(tx.Location),
		})
	}
	return transactions
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings are advisory; every flagged condition has a
// defined fallback at evaluation time.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	known := false
	for _, name := range vtc.ProfileNames() {
		if c.VTC.Profile == name {
			known = true
			break
		}
	}
	if !known {
		warnings = append(warnings, fmt.Sprintf("unknown VTC profile %q; the standard profile will be used", c.VTC.Profile))
	}

	if c.VTC.DailySpent < 0 {
		warnings = append(warnings, "vtc.dailySpent is negative; transactions will be evaluated against extra daily budget")
	}

	for i, tx := range c.VTC.Transactions {
		if tx.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("transaction %d (%q) has a negative amount", i, tx.Description))
		}
		if tx.Category != "" && vtc.ParseCategory(tx.Category) == vtc.CategoryUnknown {
			warnings = append(warnings, fmt.Sprintf("transaction %d (%q) has unrecognized category %q; treating as unknown", i, tx.Description, tx.Category))
		}
	}

	if c.Simulation.BaseSalary <= 0 {
		warnings = append(warnings, "simulation.baseSalary is not positive; scenario scoring will be degenerate")
	}
	if c.Simulation.BaseExpenses <= 0 {
		warnings = append(warnings, "simulation.baseExpenses is not positive; a sentinel salary/expense ratio will be used")
	}
	if c.Simulation.Samples <= 0 {
		warnings = append(warnings, "simulation.samples is not positive; the simulation will produce an empty bundle")
	}

	return warnings
}
