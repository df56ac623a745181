// =============================================================================
// VFD Stock List Generator - Cell Formatting
// =============================================================================
//
// Number-to-text rendering shared by the PDF and terminal sinks. Money and
// quantities render with digit-grouping commas and no decimal places
// ("1,234"); GP% renders with two decimals and a percent sign ("12.34%");
// invalid nullable values render as the empty cell.
//
// =============================================================================

package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sisl-bd/vfdreport/internal/types"
)

// FormatMoney renders an amount with digit-grouping commas and no decimal
// places.
func FormatMoney(amount decimal.Decimal) string {
	return groupDigits(amount.StringFixed(0))
}

// FormatNullableMoney renders like FormatMoney, or blank when the value is
// invalid.
func FormatNullableMoney(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return ""
	}
	return FormatMoney(amount.Decimal)
}

// FormatPercent renders a percentage with two decimal places and a trailing
// percent sign, or blank when the value is invalid.
func FormatPercent(percent decimal.NullDecimal) string {
	if !percent.Valid {
		return ""
	}
	return groupDigits(percent.Decimal.StringFixed(2)) + "%"
}

// FormatQty renders a quantity with digit-grouping commas.
func FormatQty(qty int) string {
	return groupDigits(strconv.Itoa(qty))
}

// RowCells renders one report row into its 11 column strings, in layout
// order. SL is the 1-based sequence number assigned after sorting.
func RowCells(sl int, row types.ResolvedRow) []string {
	return []string{
		strconv.Itoa(sl),
		row.Model,
		FormatQty(row.Qty),
		FormatNullableMoney(row.ListPrice),
		FormatNullableMoney(row.Disc20),
		FormatNullableMoney(row.Disc25),
		FormatNullableMoney(row.Disc30),
		FormatPercent(row.GPPercent),
		FormatMoney(row.COGS),
		FormatMoney(row.COGSx175),
		FormatNullableMoney(row.Price127),
	}
}

// groupDigits inserts digit-grouping commas into the integer part of a
// plain decimal string, preserving sign and fraction.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
