// Package constants provides shared constants for the relocation-readiness application.
package constants

// Financial constants
const (
	// MonthsPerYear is the projection horizon for savings simulations
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// VisaFundTarget is the savings level used as the visa fund proof
	// heuristic, in reference currency units.
	VisaFundTarget = 11208.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Simulation defaults
const (
	// DefaultNumSamples is the number of Monte Carlo draws when the caller
	// does not specify one.
	DefaultNumSamples = 100

	// DefaultTopPaths is how many distinct paths are surfaced from a
	// simulation run.
	DefaultTopPaths = 3

	// DistinctSalaryGap is the minimum effective-salary separation between
	// two surfaced paths, in reference currency units.
	DistinctSalaryGap = 200.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
