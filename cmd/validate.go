// =============================================================================
// VFD Stock List Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the three source
// files and reports every data problem found, without generating a report.
//
// COMMAND USAGE:
//   vfdreport validate
//
// EXIT CODES:
//   0 - Sources loaded and no error-severity issues found
//   1 - Sources unreadable, or at least one error-severity issue found
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/sisl-bd/vfdreport/internal/ingest"
	"github.com/sisl-bd/vfdreport/internal/validation"
)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the source files for data problems",
	Long: `The validate command loads the inventory, master price list and 1.27 price
list exactly as generate would, runs every source check, and prints the
collected issues as a table.

Checks include unparseable numeric cells, blank and duplicate models,
negative quantities, models whose price no cascade stage can resolve, and
1.27 models missing from the master price list. Warnings are informational;
the command exits 1 only when error-severity issues are present.

No output files are written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// =============================================================================
// MAIN VALIDATE FUNCTION
// =============================================================================

// runValidate loads the sources, runs the checks, and prints the findings.
func runValidate() error {
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
	// STEP 2: LOAD SOURCE FILES
	// =========================================================================

	fmt.Println("Loading source files...")

	loader := ingest.NewLoader(cfg, log)
	src, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	// =========================================================================
	// STEP 3: RUN CHECKS AND PRINT FINDINGS
	// =========================================================================

	result := validation.CheckSources(src, cfg.Rules)

	if len(result.Issues) == 0 {
		fmt.Println("\nNo issues found.")
		return nil
	}

	fmt.Println()
	if err := writeIssueTable(os.Stdout, result.Issues); err != nil {
		return fmt.Errorf("failed to render issue table: %w", err)
	}

	fmt.Printf("\n%s\n", result.Summary())

	if result.ErrorCount > 0 {
		os.Exit(1)
	}
	return nil
}

// =============================================================================
// ISSUE TABLE RENDERING
// =============================================================================

// writeIssueTable renders validation issues as a terminal table.
func writeIssueTable(w io.Writer, issues []validation.Issue) error {
	aligns := []tw.Align{
		tw.AlignLeft,  // Severity
		tw.AlignLeft,  // Source
		tw.AlignRight, // Row
		tw.AlignLeft,  // Field
		tw.AlignLeft,  // Rule
		tw.AlignLeft,  // Message
	}

	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: aligns}
	config.Row.Alignment = tw.CellAlignment{PerColumn: aligns}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	table.Header("Severity", "Source", "Row", "Field", "Rule", "Message")

	for _, issue := range issues {
		// File-level issues carry no row number.
		row := ""
		if issue.Row > 0 {
			row = strconv.Itoa(issue.Row)
		}
		err := table.Append(issue.Severity, issue.Source, row, issue.Field, issue.Rule, issue.Message)
		if err != nil {
			return err
		}
	}

	return table.Render()
}
