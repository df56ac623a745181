// =============================================================================
// VFD Stock List Generator - Report Layout
// =============================================================================
//
// The fixed 11-column table layout shared by the PDF and terminal sinks.
// Widths are millimetres on an A4 portrait page inside 15.24mm margins; the
// column set and its order are part of the report's contract with its
// readers and do not change between sinks.
//
// =============================================================================

package report

// Column describes one report column: header text, PDF width in mm, and
// horizontal alignment ("L", "C" or "R").
type Column struct {
	Header string
	Width  float64
	Align  string
}

// Columns is the report table layout. Model is the only left-aligned
// column; everything else is numeric and centered on the page.
var Columns = []Column{
	{Header: "SL", Width: 8, Align: "C"},
	{Header: "Model", Width: 34, Align: "L"},
	{Header: "Qty", Width: 8, Align: "C"},
	{Header: "ListPrice", Width: 17, Align: "C"},
	{Header: "20%", Width: 17, Align: "C"},
	{Header: "25%", Width: 17, Align: "C"},
	{Header: "30%", Width: 17, Align: "C"},
	{Header: "GP%", Width: 11, Align: "C"},
	{Header: "COGS", Width: 17, Align: "C"},
	{Header: "COGSx1.75", Width: 18, Align: "C"},
	{Header: "1.27", Width: 17, Align: "C"},
}

// Headers returns the column header texts in layout order.
func Headers() []string {
	headers := make([]string, len(Columns))
	for i, col := range Columns {
		headers[i] = col.Header
	}
	return headers
}
