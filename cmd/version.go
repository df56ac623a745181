// =============================================================================
// VFD Stock List Generator - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the application
// version and build information.
//
// COMMAND USAGE:
//   vfdreport version
//
// OUTPUT:
//   VFD Stock List Generator
//   Version:    0.8.0
//   Build Date: 2025-08-18
//   Go Version: go1.24.0
//   Platform:   linux/amd64
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/sisl-bd/vfdreport/cmd.Version=0.8.0' \
//     -X 'github.com/sisl-bd/vfdreport/cmd.BuildDate=2025-08-18'"

// Version is the application version.
// Set at build time using ldflags.
var Version = "0.8.0"

// BuildDate is the date the application was built.
// Set at build time using ldflags.
var BuildDate = "unknown"

// =============================================================================
// VERSION COMMAND DEFINITION
// =============================================================================

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, Go runtime version and platform.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("VFD Stock List Generator")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
		fmt.Printf("Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
