// Package constants provides shared constants for the realkredit-compare application.
package constants

// Payment frequency constants
const (
	// QuartersPerYear is the number of payment terms per year for quarterly-paying loans
	QuartersPerYear = 4

	// MonthsPerYear is the number of payment terms per year for monthly-paying loans
	MonthsPerYear = 12
)

// Tax deduction constants (Danish rules, 2023)
const (
	// DeductibleSingle is the yearly interest deduction cap for a single filer, in DKK
	DeductibleSingle = 50000.0

	// DeductibleCouple is the yearly interest deduction cap for a couple, in DKK
	DeductibleCouple = 2 * DeductibleSingle

	// ExtraDeductiblePercentBelowCap is the statutory extra deduction rate, in
	// percentage points, applied to deductible interest below the cap
	ExtraDeductiblePercentBelowCap = 8.0
)

// Contribution charge constants
const (
	// CustomerKronerRebate is the KundeKroner rebate on the contribution
	// charge, in percentage points
	CustomerKronerRebate = 0.15

	// RDQuarterlyPaymentSurcharge is the per-tier surcharge, in percentage
	// points, Realkredit Danmark applies when paying quarterly instead of monthly
	RDQuarterlyPaymentSurcharge = 0.05
)

// Refinancing constants
const (
	// ParBondPrice is the bond price at par; a refinancing can always be
	// settled at par, so market prices above it are clamped
	ParBondPrice = 100.0

	// NewLoanInstalmentFreeYears is the instalment-free window granted on a
	// new loan when the instalment-free election is made
	NewLoanInstalmentFreeYears = 10
)

// Financial constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 øre)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
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
	// DefaultConfigFile is the default scenario configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the JSON API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
