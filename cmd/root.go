// =============================================================================
// VFD Stock List Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (vfdreport)
//   ├── generateCmd (vfdreport generate)
//   ├── validateCmd (vfdreport validate)
//   └── versionCmd (vfdreport version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file for subcommands
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/pkg/logger"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug-level logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "vfdreport",

	Short: "VFD Stock List Generator - Build the priced drive stock list PDF",

	Long: `VFD Stock List Generator builds the priced stock list PDF from three source
files: the inventory export, the master price list, and the 1.27 price list.

Key Features:
  - Three-stage price resolution (exact match, family fallback, series fallback)
  - Configurable exclusion, rename and equivalence rule tables
  - Versioned PDF output with a per-run summary log
  - Source validation with per-row issue reporting

Example Usage:
  vfdreport generate                   # Generate the stock list PDF
  vfdreport generate --dry-run         # Run the pipeline, write nothing
  vfdreport generate --preview         # Also print the table to the terminal
  vfdreport validate                   # Check the source files for problems`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the persistent flags shared by all subcommands.
func init() {
	// --config flag: Path to the configuration file. The VFDREPORT_CONFIG
	// environment variable supplies the default so deployments can relocate
	// the file without passing a flag.
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		defaultConfigPath(),
		"Path to the main configuration file",
	)

	// --verbose flag: Forces debug-level logging regardless of log_level.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// defaultConfigPath resolves the config file default: the VFDREPORT_CONFIG
// environment variable when set, otherwise config.yaml in the working
// directory.
func defaultConfigPath() string {
	if path := os.Getenv("VFDREPORT_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// setup loads the configuration and builds the logger used by subcommands.
//
// RETURNS:
//   - The loaded configuration.
//   - The configured logger (debug level when --verbose is set).
//   - An error if the configuration cannot be loaded or is invalid.
func setup() (*config.MainConfig, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	log, err := logger.New(level, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
