package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sisl-bd/vfdreport/internal/ingest"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTableCSV(t *testing.T) {
	t.Run("reads headers and pads ragged rows", func(t *testing.T) {
		path := writeFile(t, "stock.csv", "Model,Qty,Total Cost\nFR-D720S-0.4K,3,300\nFR-A840-11K,1\n")

		table, err := ingest.ReadTable(path, ingest.ReadOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{"Model", "Qty", "Total Cost"}, table.Headers)
		assert.Equal(t, 3, table.ColumnCount)
		require.Equal(t, 2, table.RowCount)
		assert.Equal(t, []string{"FR-D720S-0.4K", "3", "300"}, table.Rows[0])
		assert.Equal(t, []string{"FR-A840-11K", "1", ""}, table.Rows[1], "short row should be padded")
	})

	t.Run("blank headers become positional placeholders", func(t *testing.T) {
		path := writeFile(t, "stock.csv", "Model,,Qty\nFR-D720S-0.4K,x,3\n")

		table, err := ingest.ReadTable(path, ingest.ReadOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{"Model", "Column_2", "Qty"}, table.Headers)
	})

	t.Run("honors delimiter aliases", func(t *testing.T) {
		path := writeFile(t, "stock.csv", "Model|Qty\nFR-D720S-0.4K|3\n")

		table, err := ingest.ReadTable(path, ingest.ReadOptions{Delimiter: "pipe"})
		require.NoError(t, err)

		assert.Equal(t, []string{"Model", "Qty"}, table.Headers)
		assert.Equal(t, []string{"FR-D720S-0.4K", "3"}, table.Rows[0])
	})

	t.Run("empty file is an error", func(t *testing.T) {
		path := writeFile(t, "stock.csv", "")

		_, err := ingest.ReadTable(path, ingest.ReadOptions{})
		assert.Error(t, err)
	})
}

func TestReadTableWorkbook(t *testing.T) {
	// Build a two-sheet workbook: stock data on "Stock", noise on the
	// default first sheet.
	path := filepath.Join(t.TempDir(), "stock.xlsx")

	f := excelize.NewFile()
	_, err := f.NewSheet("Stock")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Notes"}))
	require.NoError(t, f.SetSheetRow("Stock", "A1", &[]interface{}{"Model", "Qty", "Total Cost"}))
	require.NoError(t, f.SetSheetRow("Stock", "A2", &[]interface{}{"FR-D720S-0.4K", 3, 300}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	t.Run("named sheet is read", func(t *testing.T) {
		table, err := ingest.ReadTable(path, ingest.ReadOptions{Sheet: "Stock"})
		require.NoError(t, err)

		assert.Equal(t, []string{"Model", "Qty", "Total Cost"}, table.Headers)
		require.Equal(t, 1, table.RowCount)
		assert.Equal(t, []string{"FR-D720S-0.4K", "3", "300"}, table.Rows[0])
	})

	t.Run("first sheet is the default", func(t *testing.T) {
		table, err := ingest.ReadTable(path, ingest.ReadOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{"Notes"}, table.Headers)
	})
}

func TestReadTableUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "stock.ods", "Model\n")

	_, err := ingest.ReadTable(path, ingest.ReadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".ods")
}

func TestFindColumns(t *testing.T) {
	t.Run("model aliases match case and spacing insensitively", func(t *testing.T) {
		for _, header := range []string{"Model", "MODEL NAME", "  Material   Name ", "Item", "material"} {
			idx, ok := ingest.FindModelColumn([]string{"SL", header})
			assert.True(t, ok, header)
			assert.Equal(t, 1, idx, header)
		}
	})

	t.Run("list price prefers a list+price header", func(t *testing.T) {
		idx, ok := ingest.FindListPriceColumn([]string{"Model", "Price", "List Price (BDT)"})
		require.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("bare price header is accepted as a fallback", func(t *testing.T) {
		idx, ok := ingest.FindListPriceColumn([]string{"Model", "Price"})
		require.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("unit price alone is not a list price column", func(t *testing.T) {
		_, ok := ingest.FindListPriceColumn([]string{"Model", "Unit Price"})
		assert.False(t, ok)
	})

	t.Run("secondary column matches the 1.27 marker", func(t *testing.T) {
		idx, ok := ingest.FindSecondaryPriceColumn([]string{"Model", "Price x 1.27"}, "")
		require.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("secondary column override wins over the marker", func(t *testing.T) {
		idx, ok := ingest.FindSecondaryPriceColumn([]string{"Model", "Price x 1.27", "Special"}, "special")
		require.True(t, ok)
		assert.Equal(t, 2, idx)
	})
}
