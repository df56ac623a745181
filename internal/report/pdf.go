// =============================================================================
// VFD Stock List Generator - PDF Sink
// =============================================================================
//
// Renders the ordered report rows into a paginated A4 portrait document:
// centered title block (title, report date, company), then the bordered
// 11-column table with alternating light-gray row banding. Page geometry is
// fixed: 15.24mm (0.6") margins and an automatic page break 15mm above the
// bottom edge.
//
// The sink consumes ordered rows only and writes to an io.Writer; file
// naming and placement belong to the output file manager.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sisl-bd/vfdreport/internal/types"
)

// Page geometry (mm).
const (
	pageMargin      = 15.24
	bottomBreak     = 15
	titleHeight     = 8
	subtitleHeight  = 5
	headerRowHeight = 6
	dataRowHeight   = 5
)

// PDFOptions carries the title block content.
type PDFOptions struct {
	// Title is the report heading.
	Title string

	// Company is the company line under the date.
	Company string

	// Date is the report date, already in the reporting timezone.
	Date time.Time
}

// WritePDF renders rows into a PDF document on w.
//
// PARAMETERS:
//   - w: Destination for the finished document.
//   - rows: The report rows, already filtered and sorted; SL numbers are
//     assigned from slice order.
//   - opts: Title block content.
//
// RETURNS:
//   - An error if document construction or writing fails.
func WritePDF(w io.Writer, rows []types.ResolvedRow, opts PDFOptions) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()
	doc.SetAutoPageBreak(true, bottomBreak)

	writeTitleBlock(doc, opts)
	writeHeaderRow(doc)
	writeDataRows(doc, rows)

	if err := doc.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// writeTitleBlock renders the centered heading: title, date, company.
func writeTitleBlock(doc *fpdf.Fpdf, opts PDFOptions) {
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, titleHeight, opts.Title, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, subtitleHeight, opts.Date.Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	doc.CellFormat(0, subtitleHeight, opts.Company, "", 1, "C", false, 0, "")
	doc.Ln(3)
}

// writeHeaderRow renders the bordered column header row.
func writeHeaderRow(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 7)
	for _, col := range Columns {
		doc.CellFormat(col.Width, headerRowHeight, col.Header, "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)
}

// writeDataRows renders the bordered data cells with alternating light-gray
// banding, starting unfilled.
func writeDataRows(doc *fpdf.Fpdf, rows []types.ResolvedRow) {
	doc.SetFont("Helvetica", "", 7)
	doc.SetFillColor(235, 235, 235)

	fill := false
	for i, row := range rows {
		cells := RowCells(i+1, row)
		for c, col := range Columns {
			doc.CellFormat(col.Width, dataRowHeight, cells[c], "1", 0, col.Align, fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}
