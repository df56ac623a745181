// =============================================================================
// VFD Stock List Generator - Column Detection
// =============================================================================
//
// The source sheets are maintained by hand and their column headers drift
// between revisions ("Model" one month, "Material Name" the next). This
// module locates the columns the loaders need by matching cleaned headers
// against the alias spellings seen across past sheet revisions.
//
// Matching is case-insensitive on trimmed, space-collapsed header names.
//
// =============================================================================

package ingest

import "strings"

// =============================================================================
// HEADER ALIAS SETS
// =============================================================================

var (
	// modelAliases are the header spellings used for the model column.
	modelAliases = map[string]bool{
		"model":         true,
		"model name":    true,
		"material name": true,
		"item":          true,
		"item name":     true,
		"material":      true,
	}

	// qtyAliases are the header spellings used for the stock quantity column.
	qtyAliases = map[string]bool{
		"qty":         true,
		"qty owned":   true,
		"quantity":    true,
		"stock":       true,
		"qty on hand": true,
	}

	// costAliases are the header spellings used for the total cost column.
	costAliases = map[string]bool{
		"totalcost":        true,
		"total cost":       true,
		"total cost (bdt)": true,
		"cost":             true,
		"total":            true,
	}

	// priceExact are the bare list-price headers accepted when no header
	// contains both "list" and "price".
	priceExact = map[string]bool{
		"price":       true,
		"price (bdt)": true,
	}
)

// normalizeHeader lowercases a header, trims it, and collapses internal runs
// of whitespace to single spaces.
func normalizeHeader(header string) string {
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}

// =============================================================================
// COLUMN FINDERS
// =============================================================================

// FindModelColumn returns the index of the model column, matched against the
// known alias set.
func FindModelColumn(headers []string) (int, bool) {
	return findAlias(headers, modelAliases)
}

// FindQtyColumn returns the index of the stock quantity column.
func FindQtyColumn(headers []string) (int, bool) {
	return findAlias(headers, qtyAliases)
}

// FindCostColumn returns the index of the total cost column.
func FindCostColumn(headers []string) (int, bool) {
	return findAlias(headers, costAliases)
}

// FindListPriceColumn returns the index of the master list-price column: the
// first header containing both "list" and "price", or failing that the first
// bare price header.
func FindListPriceColumn(headers []string) (int, bool) {
	for i, header := range headers {
		h := normalizeHeader(header)
		if strings.Contains(h, "list") && strings.Contains(h, "price") {
			return i, true
		}
	}
	return findAlias(headers, priceExact)
}

// FindSecondaryPriceColumn returns the index of the 1.27 price column: the
// override header when configured, otherwise the first header containing
// the "1.27" marker.
func FindSecondaryPriceColumn(headers []string, override string) (int, bool) {
	if override != "" {
		want := normalizeHeader(override)
		for i, header := range headers {
			if normalizeHeader(header) == want {
				return i, true
			}
		}
		return 0, false
	}

	for i, header := range headers {
		if strings.Contains(normalizeHeader(header), "1.27") {
			return i, true
		}
	}
	return 0, false
}

// findAlias returns the first header whose normalized form is in the alias
// set.
func findAlias(headers []string, aliases map[string]bool) (int, bool) {
	for i, header := range headers {
		if aliases[normalizeHeader(header)] {
			return i, true
		}
	}
	return 0, false
}
