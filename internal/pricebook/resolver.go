// =============================================================================
// VFD Stock List Generator - Price Resolution Cascade
// =============================================================================
//
// This module resolves a list price for a model that may be spelled
// inconsistently across independently maintained price sheets. Resolution
// runs three ordered stages, first success wins:
//
//   1. EXACT    - normalized model string queried against the index.
//   2. FAMILY   - D- and E-series models with a recognized family code have a
//                 documented one-to-one A-series equivalent with the same
//                 family and capacity (FR-D720S-0.4K <-> FR-A720S-0.4K);
//                 query the index with the constructed equivalent.
//   3. SERIES   - within the equivalence group {A, E, F, D}, substitute each
//                 other series letter in priority order A -> E -> F -> D,
//                 holding the rest of the model string fixed.
//
// When every stage misses, the result is Unresolved, a legitimate terminal
// state rather than an error. The row still appears in the report with blank
// price-derived cells.
//
// Both fallback stages are driven by declarative rule tables (see
// config.RulesConfig), so new equivalences ship as configuration rather than
// code changes. The price sheets are maintained per-series, but many series
// share physically identical underlying components at certain capacities;
// the tables encode the known manufacturer equivalences rather than guessing.
//
// =============================================================================

package pricebook

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/internal/modelkey"
	"github.com/sisl-bd/vfdreport/internal/types"
)

// =============================================================================
// SUBSTITUTION PATTERNS
// =============================================================================

var (
	// familyPrefix matches the brand prefix, series letter and family digits,
	// the part a family rule rewrites.
	familyPrefix = regexp.MustCompile(`(?i)^(FR-)[A-Za-z]\d+`)

	// seriesPrefix matches the brand prefix and series letter, the part a
	// cross-series substitution rewrites.
	seriesPrefix = regexp.MustCompile(`(?i)^(FR-)[A-Za-z]`)
)

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver runs the resolution cascade against one immutable Index.
type Resolver struct {
	index       *Index
	familyRules []config.FamilyRule
	fallback    []string
	group       map[string]bool
	log         *zap.Logger
}

// NewResolver creates a Resolver over the given index and rule tables.
//
// PARAMETERS:
//   - index: The master price index (read-only).
//   - rules: The declarative rule tables; FamilyRules drives stage 2 and
//     FallbackSeries drives stage 3 (order is priority order).
//   - log: Logger for cascade tracing; nil disables logging.
func NewResolver(index *Index, rules config.RulesConfig, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Resolver{
		index:       index,
		familyRules: rules.FamilyRules,
		group:       make(map[string]bool, len(rules.FallbackSeries)),
		log:         log,
	}

	for _, s := range rules.FallbackSeries {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || r.group[s] {
			continue
		}
		r.fallback = append(r.fallback, s)
		r.group[s] = true
	}

	return r
}

// Resolve returns the best-available list price for a model.
//
// PARAMETERS:
//   - model: The raw model string as it appears in inventory.
//
// RETURNS:
//   - A Resolution carrying the stage that matched, the model whose index
//     entry supplied the price, and the price itself. Stage is
//     StageUnresolved (with an invalid price) when all stages miss.
func (r *Resolver) Resolve(model string) types.Resolution {
	// Stage 1: exact match on the normalized model.
	if price, ok := r.index.LookupExact(model); ok {
		return types.Resolution{
			Stage:     types.StageExact,
			Via:       model,
			ListPrice: types.SomeMoney(price),
		}
	}

	key := modelkey.Parse(model)

	// Stage 2: family equivalence. First matching rule whose constructed
	// equivalent is in the index wins.
	for _, rule := range r.familyRules {
		if !ruleApplies(rule, key) {
			continue
		}
		candidate := familyCandidate(model, rule)
		if candidate == model {
			continue
		}
		if price, ok := r.index.LookupExact(candidate); ok {
			r.log.Debug("family equivalence resolved price",
				zap.String("model", model),
				zap.String("via", candidate))
			return types.Resolution{
				Stage:     types.StageFamily,
				Via:       candidate,
				ListPrice: types.SomeMoney(price),
			}
		}
	}

	// Stage 3: cross-series substitution, only for models whose own series
	// belongs to the equivalence group, in fixed priority order.
	if r.group[key.Series] {
		for _, series := range r.fallback {
			if series == key.Series {
				continue
			}
			candidate := seriesCandidate(model, series)
			if price, ok := r.index.LookupExact(candidate); ok {
				r.log.Debug("cross-series substitution resolved price",
					zap.String("model", model),
					zap.String("via", candidate))
				return types.Resolution{
					Stage:     types.StageSeries,
					Via:       candidate,
					ListPrice: types.SomeMoney(price),
				}
			}
		}
	}

	r.log.Debug("price unresolved", zap.String("model", model))
	return types.Resolution{Stage: types.StageUnresolved}
}

// =============================================================================
// RULE APPLICATION
// =============================================================================

// ruleApplies reports whether a family rule matches the parsed key: both the
// series letter and the family code must agree.
func ruleApplies(rule config.FamilyRule, key modelkey.ModelKey) bool {
	return key.Family != "" &&
		strings.EqualFold(rule.Series, key.Series) &&
		rule.Family == key.Family
}

// familyCandidate constructs the equivalent model for a family rule: the
// series letter and family digits are rewritten, everything else (capacity,
// phase markers, variant suffixes) is preserved.
func familyCandidate(model string, rule config.FamilyRule) string {
	family := rule.TargetFamily
	if family == "" {
		family = rule.Family
	}

	candidate := familyPrefix.ReplaceAllString(model, "${1}"+strings.ToUpper(rule.TargetSeries)+family)
	return candidate + rule.Suffix
}

// seriesCandidate rewrites only the series letter after the brand prefix.
func seriesCandidate(model, series string) string {
	return seriesPrefix.ReplaceAllString(model, "${1}"+series)
}
