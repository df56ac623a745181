// =============================================================================
// VFD Stock List Generator - Row Assembler
// =============================================================================
//
// This module combines one inventory record with the resolved list price and
// the secondary 1.27 price to produce a fully computed report row:
//
//   COGS      = TotalCost / Qty          (filter guarantees Qty > 0)
//   COGSx175  = COGS * 1.75
//   DiscN     = ListPrice * (100-N)/100  for N in {20, 25, 30}
//   GP%       = (ListPrice - COGS) / ListPrice * 100, rounded to 2 places
//
// An unresolved list price leaves the price-derived fields invalid; those
// cells render blank. GP% is additionally invalid when the list price is
// zero (a resolved zero still yields zero discounts). The 1.27 price is an
// exact lookup only: a miss is a blank cell, never a fallback.
//
// Assembly is a pure transformation; the indexes are read-only arguments.
//
// =============================================================================

package assemble

import (
	"github.com/shopspring/decimal"

	"github.com/sisl-bd/vfdreport/internal/pricebook"
	"github.com/sisl-bd/vfdreport/internal/types"
)

var (
	cogsMarkup = decimal.NewFromFloat(1.75)
	hundred    = decimal.NewFromInt(100)
)

// Assemble computes the report row for one inventory record.
//
// PARAMETERS:
//   - inv: The inventory record; Qty must be positive.
//   - resolver: The price-resolution cascade over the master index.
//   - secondary: The 1.27 price index, queried by exact match only.
//
// RETURNS:
//   - The computed row, carrying the resolution provenance for run
//     statistics.
func Assemble(inv types.InventoryRecord, resolver *pricebook.Resolver, secondary *pricebook.Index) types.ResolvedRow {
	qty := decimal.NewFromInt(int64(inv.Qty))
	cogs := inv.TotalCost.Div(qty)

	res := resolver.Resolve(inv.Model)

	row := types.ResolvedRow{
		Model:      inv.Model,
		Qty:        inv.Qty,
		COGS:       cogs,
		COGSx175:   cogs.Mul(cogsMarkup),
		ListPrice:  res.ListPrice,
		Resolution: res,
	}

	if res.Resolved() {
		lp := res.ListPrice.Decimal
		row.Disc20 = types.SomeMoney(discount(lp, 20))
		row.Disc25 = types.SomeMoney(discount(lp, 25))
		row.Disc30 = types.SomeMoney(discount(lp, 30))

		if !lp.IsZero() {
			gp := lp.Sub(cogs).Div(lp).Mul(hundred).Round(2)
			row.GPPercent = types.SomeMoney(gp)
		}
	}

	if price, ok := secondary.LookupExact(inv.Model); ok {
		row.Price127 = types.SomeMoney(price)
	}

	return row
}

// discount applies an N percent discount to a list price.
func discount(listPrice decimal.Decimal, percent int64) decimal.Decimal {
	return listPrice.Mul(decimal.NewFromInt(100 - percent)).Div(hundred)
}
