// =============================================================================
// VFD Stock List Generator - Row Filter
// =============================================================================
//
// Exclusion predicates applied to inventory records before any price math:
//   - zero quantity (nothing to report, and COGS would divide by zero)
//   - a standing SKU exclusion, matched case-insensitively on the whole model
//   - an excluded fragment appearing anywhere in the model
//
// The conditions short-circuit on the first hit; their order carries no
// meaning. The model and fragment lists come from the rule tables.
//
// =============================================================================

package pipeline

import (
	"strings"

	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/internal/modelkey"
	"github.com/sisl-bd/vfdreport/internal/types"
)

// Filter drops inventory records matching the configured exclusion rules.
type Filter struct {
	excludedModels map[string]bool
	excludedSubs   []string
}

// NewFilter builds a Filter from the rule tables. Model exclusions are
// re-keyed by normalized model; fragments are uppercased once.
func NewFilter(rules config.RulesConfig) *Filter {
	f := &Filter{excludedModels: make(map[string]bool, len(rules.ExcludedModels))}

	for _, model := range rules.ExcludedModels {
		if key := modelkey.Normalize(model); key != "" {
			f.excludedModels[key] = true
		}
	}
	for _, sub := range rules.ExcludedSubstrings {
		if sub = strings.ToUpper(strings.TrimSpace(sub)); sub != "" {
			f.excludedSubs = append(f.excludedSubs, sub)
		}
	}

	return f
}

// Excluded reports whether a record is dropped from the report.
func (f *Filter) Excluded(rec types.InventoryRecord) bool {
	if rec.Qty == 0 {
		return true
	}
	if f.excludedModels[modelkey.Normalize(rec.Model)] {
		return true
	}

	upper := strings.ToUpper(rec.Model)
	for _, sub := range f.excludedSubs {
		if strings.Contains(upper, sub) {
			return true
		}
	}
	return false
}

// Apply returns the surviving records in input order.
func (f *Filter) Apply(records []types.InventoryRecord) []types.InventoryRecord {
	survivors := make([]types.InventoryRecord, 0, len(records))
	for _, rec := range records {
		if !f.Excluded(rec) {
			survivors = append(survivors, rec)
		}
	}
	return survivors
}
