// =============================================================================
// VFD Stock List Generator - Pipeline Orchestrator
// =============================================================================
//
// This module executes a complete report generation run, from the source
// files on disk to the versioned PDF in the output directory.
//
// PIPELINE:
//   1. Load the three source files (inventory, price list, 1.27 list)
//   2. Build the price indexes
//   3. Filter the inventory
//   4. Resolve prices and assemble report rows
//   5. Sort rows into report order
//   6. Write the versioned PDF and append the run log
//
// A dry run performs steps 1 through 5 and skips every write. An unresolved
// price is not a failure: the row ships with blank price cells and the run
// counts it in Stats.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sisl-bd/vfdreport/internal/assemble"
	"github.com/sisl-bd/vfdreport/internal/config"
	"github.com/sisl-bd/vfdreport/internal/ingest"
	"github.com/sisl-bd/vfdreport/internal/pricebook"
	"github.com/sisl-bd/vfdreport/internal/report"
	"github.com/sisl-bd/vfdreport/internal/types"
	"github.com/sisl-bd/vfdreport/pkg/fileman"
	"github.com/sisl-bd/vfdreport/pkg/logger"
)

// =============================================================================
// RUN STRUCTURES
// =============================================================================

// Options control a single pipeline run.
type Options struct {
	// DryRun runs the full pipeline but writes nothing to disk.
	DryRun bool
}

// Stats contains per-run counters.
type Stats struct {
	// InventoryRows is the number of inventory records parsed.
	InventoryRows int

	// PriceListRows is the number of master price entries parsed.
	PriceListRows int

	// SecondaryRows is the number of 1.27 price entries parsed.
	SecondaryRows int

	// ExcludedRows is the number of inventory records dropped by the
	// exclusion predicates.
	ExcludedRows int

	// ReportRows is the number of rows in the final report.
	ReportRows int

	// ExactMatches counts rows priced by direct lookup.
	ExactMatches int

	// FamilyMatches counts rows priced through a family equivalence rule.
	FamilyMatches int

	// SeriesMatches counts rows priced through cross-series substitution.
	SeriesMatches int

	// Unresolved counts rows no cascade stage could price.
	Unresolved int
}

// Result represents the outcome of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and the run summary.
	RunID string

	// Rows are the assembled report rows in final report order.
	Rows []types.ResolvedRow

	// Stats contains the run counters.
	Stats Stats

	// OutputFile is the path of the generated PDF. Empty on dry runs.
	OutputFile string

	// Elapsed is the total run duration.
	Elapsed time.Duration
}

// =============================================================================
// MAIN PIPELINE FUNCTION
// =============================================================================

// Run executes the report generation pipeline.
//
// PARAMETERS:
//   - cfg: The loaded application configuration.
//   - log: The run logger. A nil logger disables logging.
//   - opts: Run options.
//
// RETURNS:
//   - A Result with the assembled rows and run counters.
//   - An error if any pipeline step fails. Unresolved prices and excluded
//     rows are counted, not returned as errors.
func Run(cfg *config.MainConfig, log *zap.Logger, opts Options) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	startTime := time.Now()
	result := &Result{RunID: uuid.New().String()}
	log = log.With(zap.String("run_id", result.RunID))

	// =========================================================================
	// STEP 1: LOAD SOURCE FILES
	// =========================================================================
	// Read and normalize the three inputs. Cell-level problems become
	// recorded issues inside the loader; only unreadable files fail the run.

	loader := ingest.NewLoader(cfg, logger.Named(log, "ingest"))
	src, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	result.Stats.InventoryRows = len(src.Inventory)
	result.Stats.PriceListRows = len(src.PriceList)
	result.Stats.SecondaryRows = len(src.Secondary)

	// =========================================================================
	// STEP 2: BUILD PRICE INDEXES
	// =========================================================================
	// Both indexes are built once and read-only afterwards. Duplicate models
	// resolve last-writer-wins; the validate command reports the details.

	index, dups := pricebook.BuildIndex(src.PriceList)
	if len(dups) > 0 {
		log.Warn("price list contains duplicate models", zap.Int("count", len(dups)))
	}

	secondary, secDups := pricebook.BuildSecondaryIndex(src.Secondary)
	if len(secDups) > 0 {
		log.Warn("1.27 price list contains duplicate models", zap.Int("count", len(secDups)))
	}

	log.Debug("price indexes built",
		zap.Int("master_models", index.Len()),
		zap.Int("secondary_models", secondary.Len()))

	// =========================================================================
	// STEP 3: FILTER INVENTORY
	// =========================================================================

	filter := NewFilter(cfg.Rules)
	kept := filter.Apply(src.Inventory)
	result.Stats.ExcludedRows = len(src.Inventory) - len(kept)

	log.Debug("inventory filtered",
		zap.Int("kept", len(kept)),
		zap.Int("excluded", result.Stats.ExcludedRows))

	// =========================================================================
	// STEP 4: RESOLVE PRICES AND ASSEMBLE ROWS
	// =========================================================================

	resolver := pricebook.NewResolver(index, cfg.Rules, log)

	rows := make([]types.ResolvedRow, 0, len(kept))
	for _, rec := range kept {
		row := assemble.Assemble(rec, resolver, secondary)

		switch row.Resolution.Stage {
		case types.StageExact:
			result.Stats.ExactMatches++
		case types.StageFamily:
			result.Stats.FamilyMatches++
		case types.StageSeries:
			result.Stats.SeriesMatches++
		default:
			result.Stats.Unresolved++
			log.Warn("no list price resolved",
				zap.String("model", rec.Model),
				zap.Int("row", rec.RowNumber))
		}

		rows = append(rows, row)
	}

	// =========================================================================
	// STEP 5: SORT ROWS INTO REPORT ORDER
	// =========================================================================

	SortRows(rows)
	result.Rows = rows
	result.Stats.ReportRows = len(rows)

	// =========================================================================
	// STEP 6: WRITE OUTPUT
	// =========================================================================

	if opts.DryRun {
		log.Info("dry run complete, skipping output",
			zap.Int("rows", len(rows)),
			zap.Int("unresolved", result.Stats.Unresolved))
		result.Elapsed = time.Since(startTime)
		return result, nil
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	now := time.Now().In(loc)

	fm := fileman.NewFileManager(cfg.OutputDir)
	if err := fm.EnsureDirectories(); err != nil {
		return nil, err
	}

	fileName, err := fm.NextVersionedName(cfg.Report.FilenamePrefix, now)
	if err != nil {
		return nil, err
	}
	outputPath := filepath.Join(cfg.OutputDir, fileName)

	if err := writePDF(outputPath, rows, cfg, now); err != nil {
		return nil, err
	}

	result.OutputFile = outputPath
	log.Info("report written",
		zap.String("file", outputPath),
		zap.Int("rows", len(rows)),
		zap.Int("unresolved", result.Stats.Unresolved))

	summary := fmt.Sprintf("%s run=%s rows=%d unresolved=%d output=%s",
		now.Format(time.RFC3339), result.RunID, len(rows), result.Stats.Unresolved, fileName)
	if err := fm.AppendRunLog(summary); err != nil {
		// A failed log append does not undo a written report.
		log.Warn("failed to append run log", zap.Error(err))
	}

	result.Elapsed = time.Since(startTime)
	return result, nil
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

// writePDF renders rows to a new PDF file at path.
func writePDF(path string, rows []types.ResolvedRow, cfg *config.MainConfig, date time.Time) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	opts := report.PDFOptions{
		Title:   cfg.Report.Title,
		Company: cfg.Report.Company,
		Date:    date,
	}
	if err := report.WritePDF(file, rows, opts); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
