package report_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisl-bd/vfdreport/internal/report"
	"github.com/sisl-bd/vfdreport/internal/types"
)

var pdfDate = time.Date(2025, time.August, 18, 0, 0, 0, 0, time.UTC)

func sampleRows(n int) []types.ResolvedRow {
	rows := make([]types.ResolvedRow, n)
	for i := range rows {
		rows[i] = types.ResolvedRow{
			Model:     fmt.Sprintf("FR-A840-%dK", i+1),
			Qty:       i + 1,
			COGS:      decimal.NewFromInt(1000),
			COGSx175:  decimal.NewFromInt(1750),
			ListPrice: types.SomeMoney(decimal.NewFromInt(88000)),
			Disc20:    types.SomeMoney(decimal.NewFromInt(70400)),
			Disc25:    types.SomeMoney(decimal.NewFromInt(66000)),
			Disc30:    types.SomeMoney(decimal.NewFromInt(61600)),
			GPPercent: types.SomeMoney(decimal.NewFromFloat(98.86)),
			Price127:  types.SomeMoney(decimal.NewFromInt(111760)),
		}
	}
	return rows
}

func writeSample(t *testing.T, rows []types.ResolvedRow) []byte {
	t.Helper()

	var buf bytes.Buffer
	err := report.WritePDF(&buf, rows, report.PDFOptions{
		Title:   "VFD STOCK LIST",
		Company: "Smart Industrial Solution Ltd.",
		Date:    pdfDate,
	})
	require.NoError(t, err)
	return buf.Bytes()
}

func TestWritePDF(t *testing.T) {
	t.Run("produces a well-formed document", func(t *testing.T) {
		out := writeSample(t, sampleRows(3))

		require.Greater(t, len(out), 500)
		assert.Equal(t, "%PDF-", string(out[:5]))
		assert.True(t, bytes.Contains(out, []byte("%%EOF")))
	})

	t.Run("an empty row set still renders the header block", func(t *testing.T) {
		out := writeSample(t, nil)
		assert.Equal(t, "%PDF-", string(out[:5]))
	})

	t.Run("unresolved rows render without error", func(t *testing.T) {
		rows := []types.ResolvedRow{{
			Model:    "FR-B999-55K",
			Qty:      1,
			COGS:     decimal.NewFromInt(5000),
			COGSx175: decimal.NewFromInt(8750),
		}}
		out := writeSample(t, rows)
		assert.Equal(t, "%PDF-", string(out[:5]))
	})

	t.Run("long reports paginate instead of failing", func(t *testing.T) {
		small := writeSample(t, sampleRows(3))
		large := writeSample(t, sampleRows(200))

		// 200 data rows cannot fit one A4 page; the document must grow.
		assert.Greater(t, len(large), len(small))
	})
}
