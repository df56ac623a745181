// =============================================================================
// VFD Stock List Generator - Source Loaders
// =============================================================================
//
// This module turns raw Tables into the three typed record streams the
// pipeline consumes: inventory (model, qty, total cost), the master price
// list (model, list price), and the secondary 1.27 sheet (model, 1.27
// price). Legacy model renames from the rule tables are applied here, before
// anything downstream sees the data.
//
// A source whose model or value columns cannot be located aborts the load
// with an error naming the file and the headers found. Cell-level problems
// never abort: the row is kept with a zero value and a CellIssue records the
// problem for the validate command.
//
// =============================================================================

package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/internal/modelkey"
	"github.com/sisl-bd/vfdreport/internal/types"
)

// Severity values carried by CellIssue.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// LOADER
// =============================================================================

// Loader reads the three configured sources.
type Loader struct {
	cfg     *config.MainConfig
	renames map[string]string
	log     *zap.Logger
}

// NewLoader creates a Loader for the configured sources. The rename table is
// re-keyed by normalized model so lookups match any spelling.
func NewLoader(cfg *config.MainConfig, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}

	renames := make(map[string]string, len(cfg.Rules.Renames))
	for legacy, canonical := range cfg.Rules.Renames {
		renames[modelkey.Normalize(legacy)] = canonical
	}

	return &Loader{cfg: cfg, renames: renames, log: log}
}

// applyRenames maps a legacy model spelling to its canonical form, matching
// on the normalized model string.
func (l *Loader) applyRenames(model string) string {
	if canonical, ok := l.renames[modelkey.Normalize(model)]; ok {
		return canonical
	}
	return model
}

// =============================================================================
// SOURCES BUNDLE
// =============================================================================

// Sources bundles everything loaded from the three source files: the typed
// records, the cell issues found along the way, and the resolved paths for
// reporting.
type Sources struct {
	Inventory []types.InventoryRecord
	PriceList []types.PriceEntry
	Secondary []types.SecondaryPrice

	InventoryIssues []CellIssue
	PriceListIssues []CellIssue
	SecondaryIssues []CellIssue

	InventoryFile string
	PriceListFile string
	SecondaryFile string
}

// LoadAll loads the three configured sources in one pass.
func (l *Loader) LoadAll() (*Sources, error) {
	inventory, invIssues, err := l.LoadInventory()
	if err != nil {
		return nil, fmt.Errorf("inventory source: %w", err)
	}

	priceList, plIssues, err := l.LoadPriceList()
	if err != nil {
		return nil, fmt.Errorf("price list source: %w", err)
	}

	secondary, secIssues, err := l.LoadSecondary()
	if err != nil {
		return nil, fmt.Errorf("secondary price source: %w", err)
	}

	return &Sources{
		Inventory:       inventory,
		PriceList:       priceList,
		Secondary:       secondary,
		InventoryIssues: invIssues,
		PriceListIssues: plIssues,
		SecondaryIssues: secIssues,
		InventoryFile:   l.sourcePath(l.cfg.InventoryFile),
		PriceListFile:   l.sourcePath(l.cfg.PricelistFile),
		SecondaryFile:   l.sourcePath(l.cfg.SecondaryFile),
	}, nil
}

// sourcePath resolves a source file name against the data directory.
func (l *Loader) sourcePath(name string) string {
	return filepath.Join(l.cfg.DataDir, name)
}

// =============================================================================
// TYPED LOADERS
// =============================================================================

// LoadInventory reads the inventory source into InventoryRecords.
//
// RETURNS:
//   - The records, in source order, with 1-based source row numbers.
//   - The cell issues found while loading.
//   - An error if the file cannot be read or its columns cannot be located.
func (l *Loader) LoadInventory() ([]types.InventoryRecord, []CellIssue, error) {
	path := l.sourcePath(l.cfg.InventoryFile)
	table, err := ReadTable(path, ReadOptions{Delimiter: l.cfg.CSV.Delimiter, Sheet: l.cfg.InventorySheet})
	if err != nil {
		return nil, nil, err
	}

	modelCol, ok := FindModelColumn(table.Headers)
	if !ok {
		return nil, nil, columnError(path, "model", table.Headers)
	}
	qtyCol, ok := FindQtyColumn(table.Headers)
	if !ok {
		return nil, nil, columnError(path, "quantity", table.Headers)
	}
	costCol, ok := FindCostColumn(table.Headers)
	if !ok {
		return nil, nil, columnError(path, "total cost", table.Headers)
	}

	var records []types.InventoryRecord
	var issues []CellIssue

	for i, row := range table.Rows {
		rowNum := i + 2
		if IsRowEmpty(row) {
			continue
		}

		model, issue := l.modelCell(row[modelCol], table.Headers[modelCol], rowNum)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}

		qty, ok := ParseQty(row[qtyCol])
		if !ok {
			issues = append(issues, cellError(rowNum, table.Headers[qtyCol], row[qtyCol], "unparseable quantity, using 0"))
		}

		cost, ok := ParseMoney(row[costCol])
		if !ok {
			issues = append(issues, cellError(rowNum, table.Headers[costCol], row[costCol], "unparseable total cost, using 0"))
		}

		records = append(records, types.InventoryRecord{
			Model:     model,
			Qty:       qty,
			TotalCost: cost,
			RowNumber: rowNum,
		})
	}

	l.log.Info("loaded inventory source",
		zap.String("file", path),
		zap.Int("rows", len(records)),
		zap.Int("issues", len(issues)))

	return records, issues, nil
}

// LoadPriceList reads the master price source into PriceEntries.
func (l *Loader) LoadPriceList() ([]types.PriceEntry, []CellIssue, error) {
	path := l.sourcePath(l.cfg.PricelistFile)
	table, err := ReadTable(path, ReadOptions{Delimiter: l.cfg.CSV.Delimiter, Sheet: l.cfg.PricelistSheet})
	if err != nil {
		return nil, nil, err
	}

	modelCol, ok := FindModelColumn(table.Headers)
	if !ok {
		return nil, nil, columnError(path, "model", table.Headers)
	}
	priceCol, ok := FindListPriceColumn(table.Headers)
	if !ok {
		return nil, nil, columnError(path, "list price", table.Headers)
	}

	var entries []types.PriceEntry
	var issues []CellIssue

	for i, row := range table.Rows {
		rowNum := i + 2
		if IsRowEmpty(row) {
			continue
		}

		model, issue := l.modelCell(row[modelCol], table.Headers[modelCol], rowNum)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}

		price, ok := ParseMoney(row[priceCol])
		if !ok {
			issues = append(issues, cellError(rowNum, table.Headers[priceCol], row[priceCol], "unparseable list price, using 0"))
		}

		entries = append(entries, types.PriceEntry{
			Model:     model,
			ListPrice: price,
			RowNumber: rowNum,
		})
	}

	l.log.Info("loaded price list source",
		zap.String("file", path),
		zap.Int("rows", len(entries)),
		zap.Int("issues", len(issues)))

	return entries, issues, nil
}

// LoadSecondary reads the 1.27 price source into SecondaryPrices.
func (l *Loader) LoadSecondary() ([]types.SecondaryPrice, []CellIssue, error) {
	path := l.sourcePath(l.cfg.SecondaryFile)
	table, err := ReadTable(path, ReadOptions{Delimiter: l.cfg.CSV.Delimiter, Sheet: l.cfg.SecondarySheet})
	if err != nil {
		return nil, nil, err
	}

	modelCol, ok := FindModelColumn(table.Headers)
	if !ok {
		return nil, nil, columnError(path, "model", table.Headers)
	}
	priceCol, ok := FindSecondaryPriceColumn(table.Headers, l.cfg.SecondaryColumn)
	if !ok {
		return nil, nil, columnError(path, "1.27 price", table.Headers)
	}

	var entries []types.SecondaryPrice
	var issues []CellIssue

	for i, row := range table.Rows {
		rowNum := i + 2
		if IsRowEmpty(row) {
			continue
		}

		model, issue := l.modelCell(row[modelCol], table.Headers[modelCol], rowNum)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}

		price, ok := ParseMoney(row[priceCol])
		if !ok {
			issues = append(issues, cellError(rowNum, table.Headers[priceCol], row[priceCol], "unparseable 1.27 price, using 0"))
		}

		entries = append(entries, types.SecondaryPrice{
			Model:     model,
			Price127:  price,
			RowNumber: rowNum,
		})
	}

	l.log.Info("loaded secondary price source",
		zap.String("file", path),
		zap.Int("rows", len(entries)),
		zap.Int("issues", len(issues)))

	return entries, issues, nil
}

// =============================================================================
// SHARED ROW HANDLING
// =============================================================================

// modelCell trims and renames a model cell. A blank model yields a warning
// issue and the row is skipped.
func (l *Loader) modelCell(cell, column string, rowNum int) (string, *CellIssue) {
	model := strings.TrimSpace(cell)
	if model == "" {
		return "", &CellIssue{
			Row:      rowNum,
			Column:   column,
			Severity: SeverityWarning,
			Rule:     "blank_model",
			Message:  "blank model, row skipped",
		}
	}
	return l.applyRenames(model), nil
}

// cellError builds an error-severity issue for an unparseable cell.
func cellError(rowNum int, column, value, message string) CellIssue {
	return CellIssue{
		Row:      rowNum,
		Column:   column,
		Value:    strings.TrimSpace(value),
		Severity: SeverityError,
		Rule:     "numeric_cell",
		Message:  message,
	}
}

// columnError reports an undetectable column, naming the file and the
// headers that were found.
func columnError(path, what string, headers []string) error {
	return fmt.Errorf("%s: no %s column found (headers: %s)", path, what, strings.Join(headers, ", "))
}
