package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/en-shindan/rename-results/internal/config"
	"github.com/en-shindan/rename-results/internal/display"
	"github.com/en-shindan/rename-results/internal/logging"
	"github.com/en-shindan/rename-results/internal/naming"
	"github.com/en-shindan/rename-results/internal/planner"
)

// Run is the top-level batch entry point. It processes every directory pair
// of tables in order and returns aggregate stats. A filesystem error while
// creating a directory, listing a source, or copying stops the run and is
// returned; files copied before it stay in place. Cancelling ctx stops the
// run before the next file.
func Run(ctx context.Context, cfg *config.Config, tables *naming.Tables, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	resolver := naming.NewCollisionResolver()

	for _, pair := range tables.Dirs {
		if err := processPair(ctx, cfg, tables, log, pair, &stats, resolver); err != nil {
			if ctx.Err() != nil {
				log.Warn("Interrupted")
			}
			return stats, err
		}
	}

	logSummary(cfg, log, tables, &stats)
	return stats, nil
}

// processPair handles one source → destination directory pair.
func processPair(
	ctx context.Context,
	cfg *config.Config,
	tables *naming.Tables,
	log *logging.Logger,
	pair naming.DirPair,
	stats *RunStats,
	resolver *naming.CollisionResolver,
) error {
	srcDir := filepath.Join(cfg.ResultsDir, pair.Source)
	destDir := filepath.Join(cfg.ResultsDir, pair.Dest)

	// The destination is only created once the source is known to exist.
	if fi, err := os.Stat(srcDir); err != nil || !fi.IsDir() {
		log.Debug(cfg.Verbose, "No source directory %s, skipping", pair.Source)
		stats.PairsMissing++
		return nil
	}
	stats.Pairs++

	if !cfg.DryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", destDir, err)
		}
	}

	log.Info("[%s -> %s]", pair.Source, pair.Dest)

	files, err := Discover(srcDir)
	if err != nil {
		return fmt.Errorf("list %s: %w", srcDir, err)
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := processFile(cfg, tables, log, srcDir, destDir, path, stats, resolver); err != nil {
			return err
		}
	}
	return nil
}

// processFile handles one discovered .md file: parse → plan → copy siblings.
func processFile(
	cfg *config.Config,
	tables *naming.Tables,
	log *logging.Logger,
	srcDir, destDir, path string,
	stats *RunStats,
	resolver *naming.CollisionResolver,
) error {
	basename := filepath.Base(path)

	parsed, err := naming.ParseFilename(basename, tables.Separator)
	if err != nil {
		log.Warn("  SKIP: %s", basename)
		log.Debug(cfg.Verbose, "  %v", err)
		stats.Skipped++
		return nil
	}

	plan := planner.BuildPlan(tables, srcDir, destDir, parsed)
	if plan.Empty() {
		log.Debug(cfg.Verbose, "  Nothing to copy for %s", basename)
		return nil
	}

	for _, op := range plan.Ops {
		from, to := plan.SourceName(op.Ext), plan.DestName(op.Ext)

		if prev, ok := resolver.Claim(op.Source, op.Dest); ok {
			log.Warn("  %s overwrites the copy of %s", from, filepath.Base(prev))
			stats.Collisions++
		}

		if cfg.DryRun {
			log.Success("  [DRY] %s -> %s", from, to)
			stats.Copied++
			stats.BytesCopied += op.Size
			continue
		}

		n, err := CopyFile(op.Source, op.Dest)
		if err != nil {
			return fmt.Errorf("copy %s -> %s: %w", op.Source, op.Dest, err)
		}
		log.Success("  OK %s -> %s", from, to)
		stats.Copied++
		stats.BytesCopied += n
	}
	return nil
}

// logSummary prints the batch totals and the reminder that old directories
// are left in place.
func logSummary(cfg *config.Config, log *logging.Logger, tables *naming.Tables, stats *RunStats) {
	log.Info("")
	if stats.Pairs == 0 {
		log.Warn("No source directories found in %s", cfg.ResultsDir)
	}

	verb := "copied"
	if cfg.DryRun {
		verb = "would copy"
	}
	log.Success("Done: %s %d files (%s)", verb, stats.Copied, display.FormatBytes(stats.BytesCopied))

	if stats.Skipped > 0 {
		log.Warn("Skipped %d file(s) with unexpected names", stats.Skipped)
	}
	if stats.Collisions > 0 {
		log.Warn("%d destination file(s) were written by more than one source", stats.Collisions)
	}

	if stats.Pairs > 0 && !cfg.DryRun {
		sources := make([]string, 0, len(tables.Dirs))
		for _, d := range tables.Dirs {
			sources = append(sources, d.Source)
		}
		log.Info("The old directories (%s) are left in place.", strings.Join(sources, ", "))
		log.Info("Remove them manually once the copies are verified.")
	}
}
