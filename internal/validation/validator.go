// =============================================================================
// VFD Stock List Generator - Source Validation
// =============================================================================
//
// This module inspects the three loaded sources and reports everything that
// looks wrong with them, without aborting on the first problem. Findings are
// collected as Issues with a severity:
//
//   error   - data that is plainly broken: negative stock quantities,
//             unparseable numeric cells.
//   warning - data that degrades the report but does not corrupt it:
//             duplicate price entries (later row wins), models no cascade
//             stage can price, blank model cells, secondary prices whose
//             model is absent from the master list.
//
// The validate command renders the collected Issues and exits non-zero when
// any error-severity finding exists. Generation never runs these checks; a
// messy sheet still produces a report.
//
// =============================================================================

package validation

import (
	"fmt"
	"strconv"

	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/internal/ingest"
	"github.com/sisl-bd/vfdreport/internal/modelkey"
	"github.com/sisl-bd/vfdreport/internal/pipeline"
	"github.com/sisl-bd/vfdreport/internal/pricebook"
)

// Severity levels for validation findings.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// ISSUE STRUCTURE
// =============================================================================

// Issue represents a single validation finding.
type Issue struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Source is the source file the finding refers to.
	Source string

	// Row is the 1-based row in the source file (the header is row 1).
	// Zero when the finding is not row-scoped.
	Row int

	// Field is the column or logical field involved.
	Field string

	// Value is the offending value, when there is one.
	Value string

	// Rule names the check that produced the finding.
	Rule string

	// Message is a human-readable description.
	Message string
}

// String formats the issue for logs.
func (i Issue) String() string {
	if i.Row > 0 {
		return fmt.Sprintf("[%s] %s row %d, %s: %s", i.Severity, i.Source, i.Row, i.Field, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Source, i.Message)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result contains the outcome of validating the sources.
type Result struct {
	// IsValid is true if there are no error-severity findings.
	IsValid bool

	// Issues contains all findings, errors and warnings alike.
	Issues []Issue

	// ErrorCount is the number of error-severity findings.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int
}

// Summary formats the counts for the closing line of validate output.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d error(s), %d warning(s)", r.ErrorCount, r.WarningCount)
}

// add appends a finding and maintains the counters.
func (r *Result) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
	switch issue.Severity {
	case SeverityError:
		r.ErrorCount++
		r.IsValid = false
	case SeverityWarning:
		r.WarningCount++
	}
}

// =============================================================================
// SOURCE CHECKS
// =============================================================================

// CheckSources runs every validation check over the loaded sources.
//
// PARAMETERS:
//   - src: The loaded sources, including the cell issues recorded during
//     loading.
//   - rules: The rule tables, used to run the same filter and resolution
//     cascade the report run would use.
//
// RETURNS:
//   - The collected findings with error/warning counts.
func CheckSources(src *ingest.Sources, rules config.RulesConfig) *Result {
	result := &Result{IsValid: true}

	// Cell-level problems recorded by the loaders.
	copyCellIssues(result, src.InventoryFile, src.InventoryIssues)
	copyCellIssues(result, src.PriceListFile, src.PriceListIssues)
	copyCellIssues(result, src.SecondaryFile, src.SecondaryIssues)

	// Negative stock quantities.
	for _, rec := range src.Inventory {
		if rec.Qty < 0 {
			result.add(Issue{
				Severity: SeverityError,
				Source:   src.InventoryFile,
				Row:      rec.RowNumber,
				Field:    "Qty",
				Value:    strconv.Itoa(rec.Qty),
				Rule:     "negative_qty",
				Message:  fmt.Sprintf("negative quantity for %s", rec.Model),
			})
		}
	}

	// Duplicate models in the master price list. The index keeps the later
	// row; both rows are named so the sheet can be cleaned up.
	index, dups := pricebook.BuildIndex(src.PriceList)
	for _, dup := range dups {
		result.add(Issue{
			Severity: SeverityWarning,
			Source:   src.PriceListFile,
			Row:      dup.KeptRow,
			Field:    "Model",
			Value:    dup.Model,
			Rule:     "duplicate_model",
			Message:  fmt.Sprintf("duplicate of row %d; this row's price wins", dup.ShadowedRow),
		})
	}

	// Inventory models the cascade cannot price. Only rows that would
	// survive filtering matter; excluded SKUs never reach the cascade.
	resolver := pricebook.NewResolver(index, rules, nil)
	filter := pipeline.NewFilter(rules)
	for _, rec := range filter.Apply(src.Inventory) {
		res := resolver.Resolve(rec.Model)
		if res.Resolved() {
			continue
		}
		key := modelkey.Parse(rec.Model)
		result.add(Issue{
			Severity: SeverityWarning,
			Source:   src.InventoryFile,
			Row:      rec.RowNumber,
			Field:    "Model",
			Value:    rec.Model,
			Rule:     "unresolved_price",
			Message: fmt.Sprintf("no price at any stage (series %q, family %q, capacity %g)",
				key.Series, key.Family, key.Capacity),
		})
	}

	// Secondary prices whose model the master list does not carry at all.
	for _, sec := range src.Secondary {
		if _, ok := index.LookupExact(sec.Model); !ok {
			result.add(Issue{
				Severity: SeverityWarning,
				Source:   src.SecondaryFile,
				Row:      sec.RowNumber,
				Field:    "Model",
				Value:    sec.Model,
				Rule:     "missing_in_master",
				Message:  "model absent from the master price list",
			})
		}
	}

	return result
}

// copyCellIssues converts loader cell issues into findings for one source.
func copyCellIssues(result *Result, source string, issues []ingest.CellIssue) {
	for _, issue := range issues {
		result.add(Issue{
			Severity: issue.Severity,
			Source:   source,
			Row:      issue.Row,
			Field:    issue.Column,
			Value:    issue.Value,
			Rule:     issue.Rule,
			Message:  issue.Message,
		})
	}
}
