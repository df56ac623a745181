// =============================================================================
// VFD Stock List Generator - Report Row Ordering
// =============================================================================
//
// This module orders assembled report rows the way the printed stock list
// presents them: smallest drives first, and within one capacity the series
// in ascending rank order (D, E, F, A, H).
//
// ORDERING RULES:
//   - Primary key: parsed kW capacity, ascending. Rows without a parseable
//     capacity carry 0.0 and therefore sort to the front.
//   - Secondary key: series rank. Unrecognized series sort after all known
//     ones.
//   - Ties preserve input order, so repeated runs over the same source data
//     produce byte-identical reports.
//
// =============================================================================

package pipeline

import (
	"sort"

	"github.com/sisl-bd/vfdreport/internal/modelkey"
	"github.com/sisl-bd/vfdreport/internal/types"
)

// SortRows orders rows in place by capacity, then series rank. The sort is
// stable: rows with equal keys keep their relative input order.
func SortRows(rows []types.ResolvedRow) {
	type keyedRow struct {
		row      types.ResolvedRow
		capacity float64
		rank     int
	}

	keyed := make([]keyedRow, len(rows))
	for i, row := range rows {
		key := modelkey.Parse(row.Model)
		keyed[i] = keyedRow{
			row:      row,
			capacity: key.Capacity,
			rank:     modelkey.SeriesRank(key.Series),
		}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		if keyed[i].capacity != keyed[j].capacity {
			return keyed[i].capacity < keyed[j].capacity
		}
		return keyed[i].rank < keyed[j].rank
	})

	for i, k := range keyed {
		rows[i] = k.row
	}
}
