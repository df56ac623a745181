package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisl-bd/vfdreport/internal/report"
	"github.com/sisl-bd/vfdreport/internal/types"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"zero", "0", "0"},
		{"three digits stay plain", "999", "999"},
		{"four digits gain a comma", "1000", "1,000"},
		{"millions group every three digits", "1234567", "1,234,567"},
		{"fractions round away", "1234567.4", "1,234,567"},
		{"fractions round up past half", "1234567.6", "1,234,568"},
		{"negative amounts keep the sign outside the groups", "-1234", "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.FormatMoney(amount))
		})
	}
}

func TestFormatNullableMoney(t *testing.T) {
	t.Run("invalid renders blank", func(t *testing.T) {
		assert.Equal(t, "", report.FormatNullableMoney(types.NoMoney()))
	})

	t.Run("valid renders grouped", func(t *testing.T) {
		v := types.SomeMoney(decimal.NewFromInt(88000))
		assert.Equal(t, "88,000", report.FormatNullableMoney(v))
	})
}

func TestFormatPercent(t *testing.T) {
	t.Run("two decimals and a percent sign", func(t *testing.T) {
		v := types.SomeMoney(decimal.NewFromFloat(12.3456))
		assert.Equal(t, "12.35%", report.FormatPercent(v))
	})

	t.Run("whole percentages keep the decimals", func(t *testing.T) {
		v := types.SomeMoney(decimal.NewFromInt(80))
		assert.Equal(t, "80.00%", report.FormatPercent(v))
	})

	t.Run("invalid renders blank", func(t *testing.T) {
		assert.Equal(t, "", report.FormatPercent(types.NoMoney()))
	})
}

func TestFormatQty(t *testing.T) {
	assert.Equal(t, "0", report.FormatQty(0))
	assert.Equal(t, "7", report.FormatQty(7))
	assert.Equal(t, "1,234", report.FormatQty(1234))
}

func TestRowCells(t *testing.T) {
	t.Run("renders every column in layout order", func(t *testing.T) {
		row := types.ResolvedRow{
			Model:     "FR-D720S-0.4K",
			Qty:       3,
			COGS:      decimal.NewFromInt(1000),
			COGSx175:  decimal.NewFromInt(1750),
			ListPrice: types.SomeMoney(decimal.NewFromInt(500000)),
			Disc20:    types.SomeMoney(decimal.NewFromInt(400000)),
			Disc25:    types.SomeMoney(decimal.NewFromInt(375000)),
			Disc30:    types.SomeMoney(decimal.NewFromInt(350000)),
			GPPercent: types.SomeMoney(decimal.NewFromFloat(12.3456)),
			Price127:  types.NoMoney(),
		}

		cells := report.RowCells(7, row)
		require.Len(t, cells, len(report.Columns))
		assert.Equal(t, []string{
			"7",
			"FR-D720S-0.4K",
			"3",
			"500,000",
			"400,000",
			"375,000",
			"350,000",
			"12.35%",
			"1,000",
			"1,750",
			"",
		}, cells)
	})

	t.Run("an unresolved row keeps only cost cells", func(t *testing.T) {
		row := types.ResolvedRow{
			Model:    "FR-B999-55K",
			Qty:      1,
			COGS:     decimal.NewFromInt(5000),
			COGSx175: decimal.NewFromInt(8750),
		}

		cells := report.RowCells(1, row)
		assert.Equal(t, []string{"1", "FR-B999-55K", "1", "", "", "", "", "", "5,000", "8,750", ""}, cells)
	})
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, []string{
		"SL", "Model", "Qty", "ListPrice", "20%", "25%", "30%", "GP%", "COGS", "COGSx1.75", "1.27",
	}, report.Headers())
}
