// =============================================================================
// VFD Stock List Generator - Source Table Reader
// =============================================================================
//
// This module reads the raw source spreadsheets. It handles the formats the
// price and inventory sheets actually arrive in:
//   - CSV with configurable delimiters (comma, pipe, tab, semicolon)
//   - XLSX/XLSM workbooks, first sheet or a named sheet
//
// Both readers produce the same Table shape, so column detection and record
// extraction downstream are format-agnostic. Cell values are the displayed
// values: formula cells in workbooks yield their computed result.
//
// =============================================================================

package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// TABLE DATA STRUCTURE
// =============================================================================

// Table represents one parsed source file.
type Table struct {
	// Headers contains the cleaned column headers from the first row.
	Headers []string

	// Rows contains the data rows, padded to the header width. Row k of the
	// slice is row k+2 of the source file (the header is row 1).
	Rows [][]string

	// SourceFile is the path to the source file.
	SourceFile string

	// RowCount is the total number of data rows (excluding the header).
	RowCount int

	// ColumnCount is the number of columns in the table.
	ColumnCount int
}

// ReadOptions carries the per-source reader settings.
type ReadOptions struct {
	// Delimiter is the CSV field separator. Accepts a literal character or
	// one of the aliases "tab", "pipe", "semicolon". Ignored for workbooks.
	Delimiter string

	// Sheet selects the worksheet of an XLSX/XLSM source. Empty means the
	// first sheet. Ignored for CSV.
	Sheet string
}

// =============================================================================
// READER DISPATCH
// =============================================================================

// ReadTable reads a source file into a Table, choosing the reader by file
// extension.
//
// PARAMETERS:
//   - path: The path to the source file (.csv, .xlsx or .xlsm).
//   - opts: Reader settings; zero value means comma-delimited, first sheet.
//
// RETURNS:
//   - A pointer to the Table containing headers and data rows.
//   - An error if the file cannot be read, has no header row, or has an
//     unsupported extension.
func ReadTable(path string, opts ReadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path, opts)
	case ".xlsx", ".xlsm":
		return readWorkbook(path, opts)
	default:
		return nil, fmt.Errorf("unsupported source format %q (want .csv, .xlsx or .xlsm)", filepath.Ext(path))
	}
}

// =============================================================================
// CSV READER
// =============================================================================

// readCSV reads a delimited text file. The first row is the header row.
func readCSV(path string, opts ReadOptions) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, opts.Delimiter)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	return buildTable(path, allRows[0], allRows[1:]), nil
}

// configureReader configures the CSV reader for the source sheets we see in
// practice: ragged rows, sloppy quoting, padded cells.
func configureReader(reader *csv.Reader, delimiter string) {
	// Set the delimiter, handling the common spelled-out aliases.
	switch delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(delimiter) > 0 {
			reader.Comma = rune(delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Allow variable numbers of fields per row; rows are padded afterwards.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true

	// Trim leading space from fields.
	reader.TrimLeadingSpace = true
}

// =============================================================================
// WORKBOOK READER
// =============================================================================

// readWorkbook reads one sheet of an XLSX/XLSM workbook. The first row is
// the header row.
func readWorkbook(path string, opts ReadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s is empty", sheet, path)
	}

	return buildTable(path, rows[0], rows[1:]), nil
}

// =============================================================================
// TABLE ASSEMBLY
// =============================================================================

// buildTable cleans the header row and pads every data row to the header
// width. Data rows are kept in source order, including empty ones, so that
// slice position maps directly to a source row number.
func buildTable(path string, header []string, dataRows [][]string) *Table {
	headers := cleanHeaders(header)

	rows := make([][]string, len(dataRows))
	for i, row := range dataRows {
		rows[i] = padRow(row, len(headers))
	}

	return &Table{
		Headers:     headers,
		Rows:        rows,
		SourceFile:  path,
		RowCount:    len(rows),
		ColumnCount: len(headers),
	}
}

// cleanHeaders trims header cells and replaces blank headers with positional
// Column_N placeholders so every column stays addressable.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// padRow extends a row with empty cells up to the header width. Cells beyond
// the header width are preserved but unaddressed.
func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

// IsRowEmpty checks if a row contains only empty values.
func IsRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
