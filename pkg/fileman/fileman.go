// =============================================================================
// VFD Stock List Generator - Output File Manager
// =============================================================================
//
// This module manages the report output directory:
//   - Directory creation
//   - Versioned output file naming
//   - Run summary log generation
//
// NAMING SCHEME:
//   Reports are named <prefix>_<YYMMDD>_V.<NN>.pdf, where the date tag is
//   rendered in the report timezone and NN is a zero-padded two-digit version
//   number scoped to that day. The next version is one greater than the
//   highest version parsed from existing filenames, so numbering stays
//   correct even when earlier files are deleted.
//
// =============================================================================

package fileman

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// RunLogName is the file name of the run summary log inside the output
// directory.
const RunLogName = "generation.log"

// versionPattern extracts the version number from a report file name.
var versionPattern = regexp.MustCompile(`_V\.(\d+)\.pdf$`)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles output file operations for the report generator.
type FileManager struct {
	// OutputDir is the directory where generated reports are placed.
	OutputDir string
}

// NewFileManager creates a FileManager for the given output directory.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{OutputDir: outputDir}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates the output directory if it does not exist.
//
// RETURNS:
//   - An error if the directory cannot be created.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// NextVersionedName generates the file name for the next report of the day.
//
// PARAMETERS:
//   - prefix: The report name prefix (e.g., "SISL_VFD_PL").
//   - date: The report date; its YYMMDD rendering becomes the date tag.
//
// RETURNS:
//   - The bare file name (no directory), e.g. "SISL_VFD_PL_250818_V.03.pdf".
//   - An error if the output directory cannot be scanned.
func (fm *FileManager) NextVersionedName(prefix string, date time.Time) (string, error) {
	tag := date.Format("060102")

	// Find reports already generated for this date tag.
	pattern := filepath.Join(fm.OutputDir, fmt.Sprintf("%s_%s_V.*.pdf", prefix, tag))
	existing, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("failed to scan output directory: %w", err)
	}

	// The next version is one greater than the highest existing version,
	// not the file count, so deleted reports never cause a name collision.
	highest := 0
	for _, path := range existing {
		match := versionPattern.FindStringSubmatch(filepath.Base(path))
		if match == nil {
			continue
		}
		version, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if version > highest {
			highest = version
		}
	}

	return fmt.Sprintf("%s_%s_V.%02d.pdf", prefix, tag, highest+1), nil
}

// =============================================================================
// RUN LOG
// =============================================================================

// AppendRunLog appends a one-line run summary to the generation log in the
// output directory, creating the log file on first use.
//
// PARAMETERS:
//   - line: The summary line; a trailing newline is added if missing.
//
// RETURNS:
//   - An error if the log file cannot be opened or written.
func (fm *FileManager) AppendRunLog(line string) error {
	logPath := filepath.Join(fm.OutputDir, RunLogName)

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer file.Close()

	if len(line) == 0 || line[len(line)-1] != '\n' {
		line += "\n"
	}
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write run log: %w", err)
	}

	return nil
}
