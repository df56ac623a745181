// =============================================================================
// VFD Stock List Generator - Cell Cleaning
// =============================================================================
//
// Helpers for turning raw spreadsheet cell text into typed values. The sheets
// carry digit-grouping commas, stray whitespace and the occasional fractional
// quantity; all of that is absorbed here. Parse failures never abort a load:
// the loader keeps the row with a zero value and records a CellIssue for the
// validation layer to report.
//
// =============================================================================

package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CellIssue records a cell-level problem found while loading a source.
// Loading continues; the validate command surfaces these.
type CellIssue struct {
	// Row is the 1-based row in the source file (the header is row 1).
	Row int

	// Column is the header of the offending column.
	Column string

	// Value is the raw cell text.
	Value string

	// Severity is "error" for parse failures and "warning" for skipped rows.
	Severity string

	// Rule names the check that failed ("numeric_cell", "blank_model").
	Rule string

	// Message describes the problem.
	Message string
}

// ParseMoney parses a monetary cell after stripping digit-grouping commas
// and whitespace. A blank cell is zero. The second return is false when the
// cell holds text that is not a number.
func ParseMoney(cell string) (decimal.Decimal, bool) {
	cleaned := cleanNumeric(cell)
	if cleaned == "" {
		return decimal.Zero, true
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// ParseQty parses a stock quantity cell. A blank cell is zero. Whole-number
// decimals ("3.0") are accepted; fractional quantities are not.
func ParseQty(cell string) (int, bool) {
	cleaned := cleanNumeric(cell)
	if cleaned == "" {
		return 0, true
	}

	if qty, err := strconv.Atoi(cleaned); err == nil {
		return qty, true
	}

	// Workbook cells frequently render integers as "3.0".
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value != math.Trunc(value) {
		return 0, false
	}
	return int(value), true
}

// cleanNumeric strips digit-grouping commas and all whitespace from a cell.
func cleanNumeric(cell string) string {
	cell = strings.ReplaceAll(cell, ",", "")
	return strings.Join(strings.Fields(cell), "")
}
