// =============================================================================
// VFD Stock List Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the full report
// pipeline and writes the versioned stock list PDF.
//
// COMMAND USAGE:
//   vfdreport generate [flags]
//
// FLAGS:
//   --dry-run  : Run the full pipeline but write no files
//   --preview  : Print the report table to the terminal
//
// PIPELINE:
//   1. Load configuration
//   2. Run the report pipeline (load, index, filter, resolve, sort, write)
//   3. Print the run summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sisl-bd/vfdreport/internal/pipeline"
	"github.com/sisl-bd/vfdreport/internal/report"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun runs the pipeline without writing output files.
var dryRun bool

// preview prints the report table to the terminal after the run.
var preview bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the priced stock list PDF",
	Long: `The generate command loads the inventory, master price list and 1.27 price
list from the data directory, resolves a list price for every stocked drive,
and writes the priced stock list as a versioned PDF in the output directory.

Rows whose price cannot be resolved are kept in the report with blank price
cells and counted in the run summary; they never abort the run. A one-line
summary of each successful run is appended to generation.log in the output
directory.

Use --dry-run to exercise the whole pipeline without writing anything, and
--preview to inspect the report table in the terminal.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the full pipeline but write no files",
	)

	generateCmd.Flags().BoolVar(
		&preview,
		"preview",
		false,
		"Print the report table to the terminal",
	)
}

// =============================================================================
// MAIN GENERATE FUNCTION
// =============================================================================

// runGenerate executes the report pipeline and prints the run summary.
func runGenerate() error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== VFD Stock List Generator ===")
	fmt.Println("Loading configuration...")

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	// =========================================================================
	// STEP 2: RUN THE PIPELINE
	// =========================================================================

	fmt.Println("Generating report...")

	result, err := pipeline.Run(cfg, log, pipeline.Options{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	// =========================================================================
	// STEP 3: PRINT RESULTS
	// =========================================================================

	if preview {
		fmt.Println()
		if err := report.WriteTable(os.Stdout, result.Rows); err != nil {
			return fmt.Errorf("failed to render preview table: %w", err)
		}
	}

	if dryRun {
		fmt.Println("\nDry run: no files written.")
	} else {
		fmt.Printf("\n  ✓ %s\n", result.OutputFile)
	}

	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Inventory rows:  %d\n", result.Stats.InventoryRows)
	fmt.Printf("Excluded:        %d\n", result.Stats.ExcludedRows)
	fmt.Printf("Report rows:     %d\n", result.Stats.ReportRows)
	fmt.Printf("Exact prices:    %d\n", result.Stats.ExactMatches)
	fmt.Printf("Family fallback: %d\n", result.Stats.FamilyMatches)
	fmt.Printf("Series fallback: %d\n", result.Stats.SeriesMatches)
	fmt.Printf("Unresolved:      %d\n", result.Stats.Unresolved)
	fmt.Printf("Time elapsed:    %s\n", result.Elapsed)

	return nil
}
