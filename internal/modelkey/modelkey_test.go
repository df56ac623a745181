// =============================================================================
// VFD Stock List Generator - Model Key Parser Tests
// =============================================================================

package modelkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sisl-bd/vfdreport/internal/modelkey"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		series   string
		family   string
		capacity float64
	}{
		{"D series with family and decimal capacity", "FR-D720S-0.4K", "D", "720", 0.4},
		{"E series 740 family", "FR-E740-5.5K", "E", "740", 5.5},
		{"A series with trailing variant suffix", "FR-A840-11K-1", "A", "840", 11},
		{"F series", "FR-F540-3.7K", "F", "540", 3.7},
		{"HEL line is series H", "FR-HEL-H7.5K", "H", "", 7.5},
		{"HEL detection is case-insensitive", "fr-hel-h15k", "H", "", 15},
		{"lowercase input uppercases the series", "fr-d720s-0.75k", "D", "720", 0.75},
		{"series outside the rank table still parses", "FR-S520SE-0.2K-19", "S", "520", 0.2},
		{"no capacity token defaults to zero", "FR-D720S", "D", "720", 0},
		{"malformed capacity defaults to zero", "FR-D720S-1.2.3K", "D", "720", 0},
		{"no brand prefix yields unknown series", "ABB-ACS150-0.37K", "", "", 0.37},
		{"empty string", "", "", "", 0},
		{"prefix without series letter", "FR-", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := modelkey.Parse(tt.model)
			assert.Equal(t, tt.model, key.Raw)
			assert.Equal(t, tt.series, key.Series)
			assert.Equal(t, tt.family, key.Family)
			assert.InDelta(t, tt.capacity, key.Capacity, 1e-9)
		})
	}

	t.Run("parse is total and never panics", func(t *testing.T) {
		for _, s := range []string{"", " ", "-K", "FR", "FR-0.4K", "....K", "FR-HEL"} {
			assert.NotPanics(t, func() { modelkey.Parse(s) })
		}
	})

	t.Run("capacity is never negative", func(t *testing.T) {
		key := modelkey.Parse("FR-D720S--0.4K")
		assert.GreaterOrEqual(t, key.Capacity, 0.0)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FR-D720S-0.4K", "FR-D720S-0.4K"},
		{"  fr-d720s-0.4k  ", "FR-D720S-0.4K"},
		{"FR - D720S - 0.4K", "FR-D720S-0.4K"},
		{"fr-a820\t-11k", "FR-A820-11K"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, modelkey.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestSeriesRank(t *testing.T) {
	t.Run("fixed order D E F A H", func(t *testing.T) {
		assert.Less(t, modelkey.SeriesRank("D"), modelkey.SeriesRank("E"))
		assert.Less(t, modelkey.SeriesRank("E"), modelkey.SeriesRank("F"))
		assert.Less(t, modelkey.SeriesRank("F"), modelkey.SeriesRank("A"))
		assert.Less(t, modelkey.SeriesRank("A"), modelkey.SeriesRank("H"))
	})

	t.Run("unknown series sort after every listed series", func(t *testing.T) {
		for _, s := range []string{"", "S", "X", "Z"} {
			assert.Greater(t, modelkey.SeriesRank(s), modelkey.SeriesRank("H"), "series %q", s)
		}
	})

	t.Run("rank lookup ignores case", func(t *testing.T) {
		assert.Equal(t, modelkey.SeriesRank("D"), modelkey.SeriesRank("d"))
	})
}
