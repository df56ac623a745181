// =============================================================================
// VFD Stock List Generator - Terminal Table Sink
// =============================================================================
//
// This module renders report rows as a terminal table for previews and
// dry-run summaries. The layout mirrors the PDF sink: same eleven columns in
// the same order, with the same cell formatting. Alignment differs: the PDF
// centers numeric cells, the terminal right-aligns them.
//
// =============================================================================

package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sisl-bd/vfdreport/internal/types"
)

// WriteTable renders rows as a bordered terminal table in report order.
//
// PARAMETERS:
//   - w: The destination writer (typically os.Stdout).
//   - rows: Assembled rows, already sorted into report order.
//
// RETURNS:
//   - An error if table construction or rendering fails.
func WriteTable(w io.Writer, rows []types.ResolvedRow) error {
	aligns := make([]tw.Align, len(Columns))
	for i, col := range Columns {
		if col.Align == "L" {
			aligns[i] = tw.AlignLeft
		} else {
			aligns[i] = tw.AlignRight
		}
	}

	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: aligns}
	config.Row.Alignment = tw.CellAlignment{PerColumn: aligns}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	headers := make([]any, len(Columns))
	for i, h := range Headers() {
		headers[i] = h
	}
	table.Header(headers...)

	for i, row := range rows {
		cells := RowCells(i+1, row)
		rowData := make([]any, len(cells))
		for j, cell := range cells {
			rowData[j] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}
