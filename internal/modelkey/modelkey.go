// =============================================================================
// VFD Stock List Generator - Model Key Parser
// =============================================================================
//
// This module parses the structured parts out of a raw drive model string.
// Model strings follow the FR-series naming convention, e.g.:
//
//   FR-D720S-0.4K      -> series D, family 720, capacity 0.4
//   FR-A840-11K-1      -> series A, family 840, capacity 11
//   FR-HEL-H7.5K       -> series H (HEL line), capacity 7.5
//
// PARSING RULES:
//   - Series: models containing "FR-HEL" belong to the H series; otherwise
//     the series is the single letter following the "FR-" brand prefix.
//   - Family: the digit run immediately following the series letter
//     ("720", "740", "820", ...). Empty when absent.
//   - Capacity: the numeric token before a trailing "K", optionally written
//     with an "H" marker ("-H7.5K" on the HEL line).
//
// Parsing is total: any input yields a best-effort key (unknown series is the
// empty string, unparseable capacity is 0.0), so downstream sorting and
// cascade logic never deal with parse failures.
//
// =============================================================================

package modelkey

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// MODEL KEY TYPE
// =============================================================================

// ModelKey holds the parsed parts of a model string.
type ModelKey struct {
	// Raw is the original, unmodified model string.
	Raw string

	// Series is the single-letter series tag (D, E, F, A, H), or "" when the
	// string carries no recognizable series.
	Series string

	// Family is the numeric family code following the series letter, or ""
	// when the model has none.
	Family string

	// Capacity is the kW rating parsed from the capacity token; 0.0 when the
	// string carries no parseable capacity. Never negative.
	Capacity float64
}

// =============================================================================
// PARSING PATTERNS
// =============================================================================

var (
	// helPattern marks the HEL product line, which sorts as series H.
	helPattern = regexp.MustCompile(`(?i)FR-HEL`)

	// seriesPattern captures the series letter and optional family digits
	// after the brand prefix.
	seriesPattern = regexp.MustCompile(`(?i)^FR-([A-Za-z])(\d*)`)

	// capacityPattern captures the numeric capacity before a K suffix. The
	// optional H covers the HEL line's "-H7.5K" spelling.
	capacityPattern = regexp.MustCompile(`(?i)-(?:H)?([\d.]+)K`)
)

// =============================================================================
// PARSING FUNCTIONS
// =============================================================================

// Parse extracts the series tag, family code and capacity from a raw model
// string.
//
// PARAMETERS:
//   - model: The raw model string, in any casing.
//
// RETURNS:
//   - A best-effort ModelKey. Parse is total: it never fails, and documents
//     its defaults (Series "", Family "", Capacity 0.0) instead.
func Parse(model string) ModelKey {
	key := ModelKey{Raw: model}

	// Series and family detection is case-insensitive.
	if helPattern.MatchString(model) {
		key.Series = "H"
	} else if m := seriesPattern.FindStringSubmatch(model); m != nil {
		key.Series = strings.ToUpper(m[1])
		key.Family = m[2]
	}

	// Capacity: first token of the form -<number>K or -H<number>K.
	if m := capacityPattern.FindStringSubmatch(model); m != nil {
		// A malformed numeric portion (e.g. "1.2.3") parses to the 0.0
		// default rather than failing.
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 0 {
			key.Capacity = v
		}
	}

	return key
}

// Normalize canonicalizes a model string for map lookups: surrounding and
// internal whitespace removed, uppercased. Every model-keyed map in this
// program is keyed by Normalize output.
func Normalize(model string) string {
	return strings.ToUpper(strings.Join(strings.Fields(model), ""))
}

// =============================================================================
// SERIES ORDERING
// =============================================================================

// unknownSeriesRank places unrecognized series after every listed one.
const unknownSeriesRank = 99

// seriesRanks is the fixed total order used as the secondary sort key:
// D < E < F < A < H.
var seriesRanks = map[string]int{
	"D": 0,
	"E": 1,
	"F": 2,
	"A": 3,
	"H": 4,
}

// SeriesRank returns the sort rank of a series tag. Series outside the fixed
// order (including the unknown series "") rank after all listed series.
func SeriesRank(series string) int {
	if rank, ok := seriesRanks[strings.ToUpper(series)]; ok {
		return rank
	}
	return unknownSeriesRank
}
