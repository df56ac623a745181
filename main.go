// =============================================================================
// VFD Stock List Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the VFD Stock List Generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   vfdreport generate      - Build the priced stock list PDF
//   vfdreport validate      - Check the source files without writing output
//   vfdreport version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities (logging, output files)
//   - data/          : Holds the three source files read by each run
//   - pdf_reports/   : Receives the versioned PDF output and run log
//
// =============================================================================

package main

import (
	"github.com/sisl-bd/vfdreport/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
