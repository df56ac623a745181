// =============================================================================
// VFD Stock List Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration: file locations, report cosmetics, and the declarative rule
// tables that drive filtering and price resolution.
//
// CONFIGURATION SOURCES (highest precedence first):
//   1. Command-line flags (applied by the cmd package after Load returns)
//   2. Environment variables (VFDREPORT_*), optionally via a .env file
//   3. The YAML config file (default: config.yaml; absent file is fine)
//   4. Built-in defaults
//
// The rule tables live here rather than in code so that new SKU exclusions,
// legacy renames and series equivalences ship as configuration changes.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY AND SOURCE SETTINGS
	// =========================================================================

	// DataDir is the directory containing the three source files.
	// Default: "data"
	DataDir string `yaml:"data_dir"`

	// InventoryFile is the inventory source (model, qty, total cost).
	// CSV and XLSX files are both accepted; the format is chosen by extension.
	// Default: "VFD_PRICE_LAST.csv"
	InventoryFile string `yaml:"inventory_file"`

	// SecondaryFile is the source carrying the per-model 1.27 price column.
	// Default: "VFD_PRICE_JULY_2025.csv"
	SecondaryFile string `yaml:"secondary_file"`

	// PricelistFile is the master list-price source.
	// Default: "VFD_Price_SISL_Final.csv"
	PricelistFile string `yaml:"pricelist_file"`

	// InventorySheet, SecondarySheet and PricelistSheet select the worksheet
	// when the corresponding source is an XLSX file. Empty means the first
	// sheet in the workbook. Ignored for CSV sources.
	InventorySheet string `yaml:"inventory_sheet"`
	SecondarySheet string `yaml:"secondary_sheet"`
	PricelistSheet string `yaml:"pricelist_sheet"`

	// SecondaryColumn overrides auto-detection of the 1.27 price column in
	// the secondary source. Empty means detect by the "1.27" header marker.
	SecondaryColumn string `yaml:"secondary_column"`

	// OutputDir is the directory where generated PDF reports are placed.
	// Created on demand if it does not exist.
	// Default: "pdf_reports"
	OutputDir string `yaml:"output_dir"`

	// Timezone is the IANA zone used for the report date and the date tag in
	// output file names.
	// Default: "Asia/Dhaka"
	Timezone string `yaml:"timezone"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is an optional log file written in addition to stderr.
	// Default: "" (stderr only)
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// SECTIONED SETTINGS
	// =========================================================================

	// CSV contains settings for parsing CSV sources.
	CSV CSVSettings `yaml:"csv"`

	// Report contains the report title block and file naming settings.
	Report ReportSettings `yaml:"report"`

	// Rules contains the declarative filtering and resolution rule tables.
	Rules RulesConfig `yaml:"rules"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing CSV source files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields in the CSV.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// =============================================================================
// REPORT SETTINGS STRUCTURE
// =============================================================================

// ReportSettings contains the title block text and output naming settings.
type ReportSettings struct {
	// Title is the report heading printed at the top of the PDF.
	// Default: "VFD STOCK LIST"
	Title string `yaml:"title"`

	// Company is the company line printed under the report date.
	// Default: "Smart Industrial Solution Ltd."
	Company string `yaml:"company"`

	// FilenamePrefix is the leading segment of the versioned output name
	// <prefix>_<YYMMDD>_V.<NN>.pdf.
	// Default: "SISL_VFD_PL"
	FilenamePrefix string `yaml:"filename_prefix"`
}

// =============================================================================
// RULE TABLES
// =============================================================================

// RulesConfig holds the declarative rule tables consulted by the filter
// stage and the price-resolution cascade. Every table can be overridden from
// the config file; a table that is omitted entirely falls back to the
// built-in default, while an explicitly empty list disables the table.
type RulesConfig struct {
	// ExcludedModels lists SKUs dropped from the report regardless of stock,
	// matched case-insensitively against the full model string.
	// Default: ["FR-S520SE-0.2K-19"]
	ExcludedModels []string `yaml:"excluded_models"`

	// ExcludedSubstrings drops any model containing one of these fragments,
	// matched case-insensitively anywhere in the model string.
	// Default: ["PEC"]
	ExcludedSubstrings []string `yaml:"excluded_substrings"`

	// Renames maps legacy model spellings to their canonical form. Applied
	// during ingestion, before any lookup or rule sees the data.
	// Default: empty
	Renames map[string]string `yaml:"renames"`

	// FallbackSeries is the cross-series equivalence group and its priority
	// order for the final resolution stage. A model participates only when
	// its own series letter is a member.
	// Default: [A, E, F, D]
	FallbackSeries []string `yaml:"fallback_series"`

	// FamilyRules drives the family-equivalence resolution stage. Rules are
	// tried in order; the first whose constructed equivalent is priced wins.
	FamilyRules []FamilyRule `yaml:"family_rules"`
}

// FamilyRule declares one family equivalence: a model whose series letter and
// family code match Series/Family may be priced as the TargetSeries model
// with the same capacity.
type FamilyRule struct {
	// Series is the source series letter (e.g. "D").
	Series string `yaml:"series"`

	// Family is the source family code (e.g. "720"). Quoted in YAML so the
	// digits stay a string.
	Family string `yaml:"family"`

	// TargetSeries is the series letter substituted into the equivalent
	// model string (e.g. "A").
	TargetSeries string `yaml:"target_series"`

	// TargetFamily optionally remaps the family code in the equivalent
	// model string. Empty keeps the source family code.
	TargetFamily string `yaml:"target_family,omitempty"`

	// Suffix is optionally appended to the constructed equivalent, for price
	// sheets that tag variants (e.g. "-1").
	Suffix string `yaml:"suffix,omitempty"`
}

// DefaultRules returns the built-in rule tables: the documented D/E-to-A
// family equivalences for the 720 and 740 families, the A, E, F, D fallback
// group, and the standing SKU exclusions.
func DefaultRules() RulesConfig {
	return RulesConfig{
		ExcludedModels:     []string{"FR-S520SE-0.2K-19"},
		ExcludedSubstrings: []string{"PEC"},
		Renames:            map[string]string{},
		FallbackSeries:     []string{"A", "E", "F", "D"},
		FamilyRules: []FamilyRule{
			{Series: "D", Family: "720", TargetSeries: "A"},
			{Series: "E", Family: "720", TargetSeries: "A"},
			{Series: "D", Family: "740", TargetSeries: "A"},
			{Series: "E", Family: "740", TargetSeries: "A"},
		},
	}
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load loads the application configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. A missing file is not
//     an error; the built-in defaults are used instead.
//
// RETURNS:
//   - A pointer to the MainConfig struct with defaults and environment
//     overrides applied.
//   - An error if the file exists but cannot be read or parsed, or if the
//     resulting configuration is invalid.
func Load(configPath string) (*MainConfig, error) {
	// Pick up a local .env file if one exists. Missing files are fine.
	_ = godotenv.Load()

	var config MainConfig

	// Read the configuration file. An absent file means run on defaults.
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Environment beats the file, defaults fill the rest.
	applyEnvOverrides(&config)
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyEnvOverrides overwrites file-sourced values with VFDREPORT_*
// environment variables when set.
func applyEnvOverrides(config *MainConfig) {
	config.DataDir = getenvWithDefault("VFDREPORT_DATA_DIR", config.DataDir)
	config.OutputDir = getenvWithDefault("VFDREPORT_OUTPUT_DIR", config.OutputDir)
	config.LogLevel = getenvWithDefault("VFDREPORT_LOG_LEVEL", config.LogLevel)
	config.Timezone = getenvWithDefault("VFDREPORT_TIMEZONE", config.Timezone)
}

// getenvWithDefault returns the environment variable's value when set and
// non-empty, otherwise the fallback.
func getenvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// applyDefaults sets default values for any unset configuration options.
// Rule tables default only when omitted (nil); an explicitly empty list is
// respected so operators can disable a table.
func applyDefaults(config *MainConfig) {
	if config.DataDir == "" {
		config.DataDir = "data"
	}
	if config.InventoryFile == "" {
		config.InventoryFile = "VFD_PRICE_LAST.csv"
	}
	if config.SecondaryFile == "" {
		config.SecondaryFile = "VFD_PRICE_JULY_2025.csv"
	}
	if config.PricelistFile == "" {
		config.PricelistFile = "VFD_Price_SISL_Final.csv"
	}
	if config.OutputDir == "" {
		config.OutputDir = "pdf_reports"
	}
	if config.Timezone == "" {
		config.Timezone = "Asia/Dhaka"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.CSV.Delimiter == "" {
		config.CSV.Delimiter = ","
	}
	if config.Report.Title == "" {
		config.Report.Title = "VFD STOCK LIST"
	}
	if config.Report.Company == "" {
		config.Report.Company = "Smart Industrial Solution Ltd."
	}
	if config.Report.FilenamePrefix == "" {
		config.Report.FilenamePrefix = "SISL_VFD_PL"
	}

	defaults := DefaultRules()
	if config.Rules.ExcludedModels == nil {
		config.Rules.ExcludedModels = defaults.ExcludedModels
	}
	if config.Rules.ExcludedSubstrings == nil {
		config.Rules.ExcludedSubstrings = defaults.ExcludedSubstrings
	}
	if config.Rules.Renames == nil {
		config.Rules.Renames = defaults.Renames
	}
	if config.Rules.FallbackSeries == nil {
		config.Rules.FallbackSeries = defaults.FallbackSeries
	}
	if config.Rules.FamilyRules == nil {
		config.Rules.FamilyRules = defaults.FamilyRules
	}
}

// validateConfig validates the assembled configuration.
func validateConfig(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", config.LogLevel)
	}

	sources := map[string]string{
		"inventory_file": config.InventoryFile,
		"secondary_file": config.SecondaryFile,
		"pricelist_file": config.PricelistFile,
	}
	for key, name := range sources {
		if name == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	if len(config.Rules.FallbackSeries) == 0 {
		return fmt.Errorf("rules.fallback_series must list at least one series")
	}

	for i, rule := range config.Rules.FamilyRules {
		if rule.Series == "" || rule.Family == "" || rule.TargetSeries == "" {
			return fmt.Errorf("rules.family_rules[%d]: series, family and target_series are all required", i)
		}
	}

	return nil
}
