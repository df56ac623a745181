// =============================================================================
// VFD Stock List Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ingest
//   - pricebook
//   - assemble
//   - pipeline
//   - report
//   - validation
//
// All monetary amounts use decimal.Decimal; fields that may legitimately be
// absent (an unresolved list price, a missing 1.27 price) use
// decimal.NullDecimal rather than a zero value, so "no price" and "price of
// zero" stay distinguishable all the way to the report sink.
//
// =============================================================================

package types

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SOURCE RECORD TYPES
// =============================================================================

// InventoryRecord represents one physical SKU owned, as read from the
// inventory source.
type InventoryRecord struct {
	// Model is the raw model string after ingestion renames.
	Model string

	// Qty is the number of units owned. Rows with Qty 0 never reach the
	// arithmetic stages; the filter drops them first.
	Qty int

	// TotalCost is the total purchase cost across all owned units.
	TotalCost decimal.Decimal

	// RowNumber is the 1-based row in the source file (header included).
	// Useful for error reporting.
	RowNumber int
}

// PriceEntry represents one row of the master list-price source.
type PriceEntry struct {
	// Model is the raw model string after ingestion renames.
	Model string

	// ListPrice is the advertised list price for this model.
	ListPrice decimal.Decimal

	// RowNumber is the 1-based row in the source file (header included).
	RowNumber int
}

// SecondaryPrice represents one row of the "1.27" price source. It is only
// ever consulted by exact model match; absence means a blank report cell,
// never a fallback.
type SecondaryPrice struct {
	// Model is the raw model string after ingestion renames.
	Model string

	// Price127 is the price from the 1.27 column.
	Price127 decimal.Decimal

	// RowNumber is the 1-based row in the source file (header included).
	RowNumber int
}

// =============================================================================
// RESOLUTION TYPES
// =============================================================================

// ResolutionStage identifies which lookup strategy produced a price.
type ResolutionStage string

const (
	// StageExact means the normalized model matched the index directly.
	StageExact ResolutionStage = "exact"

	// StageFamily means a family-equivalence rule (e.g. D720 -> A720)
	// produced the matching model.
	StageFamily ResolutionStage = "family"

	// StageSeries means the generic cross-series substitution produced the
	// matching model.
	StageSeries ResolutionStage = "series"

	// StageUnresolved means no stage found a price. Not an error: the row is
	// still reported, with blank price-derived cells.
	StageUnresolved ResolutionStage = "unresolved"
)

// Resolution is the outcome of the price-resolution cascade for one model.
type Resolution struct {
	// Stage is the cascade stage that matched (or StageUnresolved).
	Stage ResolutionStage

	// Via is the model string whose index entry supplied the price. For an
	// exact match it equals the input; empty when unresolved.
	Via string

	// ListPrice is the resolved price. Invalid when unresolved.
	ListPrice decimal.NullDecimal
}

// Resolved reports whether the cascade found a price.
func (r Resolution) Resolved() bool {
	return r.Stage != StageUnresolved && r.ListPrice.Valid
}

// =============================================================================
// OUTPUT ROW TYPE
// =============================================================================

// ResolvedRow is the output unit of the pipeline: one surviving inventory
// record with every derived field computed. Constructed once after filtering,
// immutable thereafter, consumed by the sort and then by the report sinks.
type ResolvedRow struct {
	// Model is the model string as it appears in the report.
	Model string

	// Qty is the number of units owned (always > 0 after filtering).
	Qty int

	// COGS is the per-unit cost: TotalCost / Qty.
	COGS decimal.Decimal

	// COGSx175 is COGS scaled by the standard 1.75 markup.
	COGSx175 decimal.Decimal

	// ListPrice is the cascade-resolved list price; invalid when no cascade
	// stage matched.
	ListPrice decimal.NullDecimal

	// Disc20, Disc25 and Disc30 are the discounted list prices at 20%, 25%
	// and 30% off. Invalid whenever ListPrice is invalid.
	Disc20 decimal.NullDecimal
	Disc25 decimal.NullDecimal
	Disc30 decimal.NullDecimal

	// GPPercent is the gross profit percentage,
	// (ListPrice - COGS) / ListPrice * 100, rounded to 2 decimal places.
	// Invalid when ListPrice is invalid or zero.
	GPPercent decimal.NullDecimal

	// Price127 is the exact-match price from the secondary source; invalid
	// when that source has no entry for this model.
	Price127 decimal.NullDecimal

	// Resolution records which cascade stage supplied ListPrice and via
	// which model. Carried for logging and run statistics, never rendered.
	Resolution Resolution
}

// SomeMoney wraps a decimal in a valid NullDecimal.
func SomeMoney(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// NoMoney returns the invalid NullDecimal used for absent values.
func NoMoney() decimal.NullDecimal {
	return decimal.NullDecimal{}
}
