// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/avjensen/realkredit-compare/internal/compare"
	"github.com/avjensen/realkredit-compare/pkg/constants"
	"github.com/avjensen/realkredit-compare/pkg/rates"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for realkredit-compare.
type Configuration struct {
	Loan    compare.AllLoanInfo
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate checks the loan input for errors that would make a calculation
// meaningless: unknown enum keys are configuration errors and fail fast.
func (conf *Configuration) Validate() error {
	if !rates.IsMunicipality(string(conf.Loan.Municipality)) {
		return fmt.Errorf("unknown municipality %q", conf.Loan.Municipality)
	}
	if !rates.IsInstitute(string(conf.Loan.Institute)) {
		return fmt.Errorf("unknown lending institute %q", conf.Loan.Institute)
	}
	if conf.Loan.YearsLeft <= 0 {
		return fmt.Errorf("loan must have at least one year left, got %d", conf.Loan.YearsLeft)
	}
	return nil
}

// ValidateConfiguration inspects the loan input and returns warnings for
// values that are suspicious but not fatal.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Loan.Principal <= 0 {
		warnings = append(warnings, fmt.Sprintf("principal %.2f is not positive; the schedules will be empty of payments", conf.Loan.Principal))
	}
	if conf.Loan.EstimatedPrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("estimated property value %.2f is not positive; the new loan's contribution charge will be 0", conf.Loan.EstimatedPrice))
	}
	if conf.Loan.CurrentPrice > constants.ParBondPrice {
		warnings = append(warnings, fmt.Sprintf("current bond price %.2f is above par and will be clamped to %.0f", conf.Loan.CurrentPrice, constants.ParBondPrice))
	}
	if ltv := conf.Loan.Principal / conf.Loan.EstimatedPrice; conf.Loan.EstimatedPrice > 0 && ltv > 0.8 {
		warnings = append(warnings, fmt.Sprintf("loan-to-value %.2f exceeds the highest published charge tier; the top tier's rate applies to the excess", ltv))
	}
	if conf.Loan.RDQuarterlyPayments && conf.Loan.Institute != rates.InstituteRD {
		warnings = append(warnings, "rdQuarterlyPayments only affects Realkredit Danmark loans")
	}

	return warnings
}
