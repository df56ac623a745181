package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/internal/ingest"
	"github.com/sisl-bd/vfdreport/internal/types"
	"github.com/sisl-bd/vfdreport/internal/validation"
)

// messySources returns loaded sources carrying one of every problem the
// checks look for.
func messySources() *ingest.Sources {
	return &ingest.Sources{
		InventoryFile: "data/inventory.csv",
		PriceListFile: "data/pricelist.csv",
		SecondaryFile: "data/secondary.csv",

		Inventory: []types.InventoryRecord{
			{Model: "FR-D720S-0.4K", Qty: 3, TotalCost: decimal.NewFromInt(300), RowNumber: 2},
			{Model: "FR-B999-55K", Qty: 1, TotalCost: decimal.NewFromInt(5000), RowNumber: 3},
			{Model: "FR-A840-11K", Qty: -2, TotalCost: decimal.NewFromInt(160000), RowNumber: 4},
			{Model: "FR-X100-1K", Qty: 0, TotalCost: decimal.Zero, RowNumber: 5},
		},

		PriceList: []types.PriceEntry{
			{Model: "FR-A720S-0.4K", ListPrice: decimal.NewFromInt(500), RowNumber: 2},
			{Model: "FR-A840-11K", ListPrice: decimal.NewFromInt(88000), RowNumber: 3},
			{Model: "FR-A840-11K", ListPrice: decimal.NewFromInt(90000), RowNumber: 7},
		},

		Secondary: []types.SecondaryPrice{
			{Model: "FR-A840-11K", Price127: decimal.NewFromInt(111760), RowNumber: 2},
			{Model: "FR-ZZZZ-1K", Price127: decimal.NewFromInt(999), RowNumber: 3},
		},

		InventoryIssues: []ingest.CellIssue{{
			Row:      9,
			Column:   "Qty",
			Value:    "few",
			Severity: ingest.SeverityError,
			Rule:     "numeric_cell",
			Message:  "unparseable quantity, using 0",
		}},
	}
}

func findByRule(t *testing.T, issues []validation.Issue, rule string) validation.Issue {
	t.Helper()
	for _, issue := range issues {
		if issue.Rule == rule {
			return issue
		}
	}
	t.Fatalf("no issue with rule %q", rule)
	return validation.Issue{}
}

func TestCheckSources(t *testing.T) {
	t.Run("clean sources produce no issues", func(t *testing.T) {
		src := &ingest.Sources{
			InventoryFile: "data/inventory.csv",
			PriceListFile: "data/pricelist.csv",
			SecondaryFile: "data/secondary.csv",
			Inventory: []types.InventoryRecord{
				{Model: "FR-A840-11K", Qty: 2, TotalCost: decimal.NewFromInt(160000), RowNumber: 2},
			},
			PriceList: []types.PriceEntry{
				{Model: "FR-A840-11K", ListPrice: decimal.NewFromInt(88000), RowNumber: 2},
			},
			Secondary: []types.SecondaryPrice{
				{Model: "FR-A840-11K", Price127: decimal.NewFromInt(111760), RowNumber: 2},
			},
		}

		result := validation.CheckSources(src, config.DefaultRules())
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Issues)
		assert.Equal(t, "0 error(s), 0 warning(s)", result.Summary())
	})

	t.Run("collects every finding without aborting", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		assert.False(t, result.IsValid)
		assert.Equal(t, 2, result.ErrorCount)
		assert.Equal(t, 3, result.WarningCount)
		assert.Equal(t, "2 error(s), 3 warning(s)", result.Summary())
	})

	t.Run("loader cell issues carry over with their source file", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		issue := findByRule(t, result.Issues, "numeric_cell")
		assert.Equal(t, validation.SeverityError, issue.Severity)
		assert.Equal(t, "data/inventory.csv", issue.Source)
		assert.Equal(t, 9, issue.Row)
		assert.Equal(t, "few", issue.Value)
	})

	t.Run("negative quantities are errors", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		issue := findByRule(t, result.Issues, "negative_qty")
		assert.Equal(t, validation.SeverityError, issue.Severity)
		assert.Equal(t, "data/inventory.csv", issue.Source)
		assert.Equal(t, 4, issue.Row)
		assert.Equal(t, "Qty", issue.Field)
		assert.Equal(t, "-2", issue.Value)
		assert.Contains(t, issue.Message, "FR-A840-11K")
	})

	t.Run("duplicate price rows name both rows", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		issue := findByRule(t, result.Issues, "duplicate_model")
		assert.Equal(t, validation.SeverityWarning, issue.Severity)
		assert.Equal(t, "data/pricelist.csv", issue.Source)
		assert.Equal(t, 7, issue.Row)
		assert.Equal(t, "FR-A840-11K", issue.Value)
		assert.Contains(t, issue.Message, "row 3")
	})

	t.Run("unpriceable survivors are warnings with the parsed key", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		issue := findByRule(t, result.Issues, "unresolved_price")
		assert.Equal(t, validation.SeverityWarning, issue.Severity)
		assert.Equal(t, 3, issue.Row)
		assert.Equal(t, "FR-B999-55K", issue.Value)
		assert.Contains(t, issue.Message, `series "B"`)
	})

	t.Run("filtered rows are never checked for resolution", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		// FR-X100-1K has no price anywhere, but its zero quantity keeps it
		// out of the report, so it must not be flagged.
		for _, issue := range result.Issues {
			assert.NotEqual(t, "FR-X100-1K", issue.Value)
		}
	})

	t.Run("secondary models missing from the master list are warnings", func(t *testing.T) {
		result := validation.CheckSources(messySources(), config.DefaultRules())

		issue := findByRule(t, result.Issues, "missing_in_master")
		assert.Equal(t, validation.SeverityWarning, issue.Severity)
		assert.Equal(t, "data/secondary.csv", issue.Source)
		assert.Equal(t, 3, issue.Row)
		assert.Equal(t, "FR-ZZZZ-1K", issue.Value)
	})
}

func TestIssueString(t *testing.T) {
	withRow := validation.Issue{
		Severity: validation.SeverityError,
		Source:   "data/inventory.csv",
		Row:      4,
		Field:    "Qty",
		Message:  "negative quantity for FR-A840-11K",
	}
	assert.Equal(t, "[error] data/inventory.csv row 4, Qty: negative quantity for FR-A840-11K", withRow.String())

	fileLevel := validation.Issue{
		Severity: validation.SeverityWarning,
		Source:   "data/secondary.csv",
		Message:  "model absent from the master price list",
	}
	assert.Equal(t, "[warning] data/secondary.csv: model absent from the master price list", fileLevel.String())
}

func TestResultSummary(t *testing.T) {
	result := &validation.Result{ErrorCount: 1, WarningCount: 12}
	assert.Equal(t, "1 error(s), 12 warning(s)", result.Summary())

	require.NotNil(t, validation.CheckSources(&ingest.Sources{}, config.DefaultRules()))
}
