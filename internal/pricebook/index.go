// =============================================================================
// VFD Stock List Generator - Price Index
// =============================================================================
//
// This module provides the lookup structure for per-model prices. An Index is
// built once per run from a price source, keyed by the normalized model
// string, and is immutable afterwards: every consumer (the resolution
// cascade, the row assembler) receives it as an argument and only reads it.
//
// DUPLICATE POLICY:
//   Source sheets occasionally list the same model twice. Later rows
//   overwrite earlier ones (last-writer-wins); every overwrite is recorded
//   so the validate command can report it with both row numbers.
//
// No cascade logic lives here. This component is pure storage.
//
// =============================================================================

package pricebook

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sisl-bd/vfdreport/internal/modelkey"
	"github.com/sisl-bd/vfdreport/internal/types"
)

// =============================================================================
// INDEX TYPE
// =============================================================================

// Index is an immutable price lookup keyed by normalized model string.
type Index struct {
	prices map[string]decimal.Decimal

	// models maps the normalized key back to the raw spelling last seen, for
	// listings and log messages.
	models map[string]string
}

// Duplicate records a last-writer-wins overwrite observed while building an
// Index.
type Duplicate struct {
	// Model is the raw model string of the winning row.
	Model string

	// KeptRow is the source row whose price survived.
	KeptRow int

	// ShadowedRow is the earlier source row whose price was overwritten.
	ShadowedRow int
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// BuildIndex builds an Index from master price entries.
//
// PARAMETERS:
//   - entries: The price entries, in source order.
//
// RETURNS:
//   - The built Index.
//   - Every duplicate-key overwrite, in the order it happened.
func BuildIndex(entries []types.PriceEntry) (*Index, []Duplicate) {
	ix := newIndex(len(entries))
	var dups []Duplicate

	rows := make(map[string]int, len(entries))
	for _, e := range entries {
		key := modelkey.Normalize(e.Model)
		if key == "" {
			continue
		}
		if prev, seen := rows[key]; seen {
			dups = append(dups, Duplicate{
				Model:       e.Model,
				KeptRow:     e.RowNumber,
				ShadowedRow: prev,
			})
		}
		ix.prices[key] = e.ListPrice
		ix.models[key] = e.Model
		rows[key] = e.RowNumber
	}

	return ix, dups
}

// BuildSecondaryIndex builds an Index from the "1.27" source. The same
// structure and duplicate policy apply; only the entry type differs.
func BuildSecondaryIndex(entries []types.SecondaryPrice) (*Index, []Duplicate) {
	converted := make([]types.PriceEntry, len(entries))
	for i, e := range entries {
		converted[i] = types.PriceEntry{
			Model:     e.Model,
			ListPrice: e.Price127,
			RowNumber: e.RowNumber,
		}
	}
	return BuildIndex(converted)
}

func newIndex(capacity int) *Index {
	return &Index{
		prices: make(map[string]decimal.Decimal, capacity),
		models: make(map[string]string, capacity),
	}
}

// =============================================================================
// LOOKUP
// =============================================================================

// LookupExact returns the price stored under the normalized form of model.
// O(1); no fallback of any kind.
func (ix *Index) LookupExact(model string) (decimal.Decimal, bool) {
	price, ok := ix.prices[modelkey.Normalize(model)]
	return price, ok
}

// Len returns the number of distinct normalized models in the index.
func (ix *Index) Len() int {
	return len(ix.prices)
}

// Models returns the raw model spellings in the index, sorted by their
// normalized key for deterministic listings.
func (ix *Index) Models() []string {
	keys := make([]string, 0, len(ix.models))
	for k := range ix.models {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = ix.models[k]
	}
	return out
}
