// Command rename-results copies the diagnostic result files from the
// Japanese-named results directories (01_火/火の夏雨.md) into transliterated
// directories and filenames (fire/fire-natsuame.md).
//
// It parses flags, resolves and validates the results directory, loads the
// name tables, and either runs diagnostics (--check) or the copy pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/en-shindan/rename-results/internal/check"
	"github.com/en-shindan/rename-results/internal/config"
	"github.com/en-shindan/rename-results/internal/display"
	"github.com/en-shindan/rename-results/internal/logging"
	"github.com/en-shindan/rename-results/internal/naming"
	"github.com/en-shindan/rename-results/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds the root command, executes it with args and returns the
// process exit code.
func run(args []string) int {
	cfg := config.DefaultConfig()
	code := 0

	cmd := &cobra.Command{
		Use:   "rename-results [flags] [results_dir]",
		Short: "Copy result files into transliterated directories and filenames",
		Long: `rename-results copies every result pair (<stem>.md and <stem>.html) from the
Japanese-named result directories (01_火, 02_木, ...) into transliterated
directories (fire, wood, ...), renaming 火の夏雨 to fire-natsuame.

Source files are never modified or removed. The results directory defaults to
public/results two levels above the binary.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags(), &cfg)
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if err := flags.Apply(args); err != nil {
			return err
		}
		code = execute(c.Context(), &cfg)
		return nil
	}
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "rename-results: %v\n", err)
		return 1
	}
	return code
}

func execute(parent context.Context, cfg *config.Config) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	if err := cfg.ResolveResultsDir(); err != nil {
		fmt.Fprintf(os.Stderr, "rename-results: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "rename-results: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rename-results: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner(os.Stdout)

	tables, err := naming.LoadTables(cfg.MappingFile)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, tables, log) {
			return 1
		}
		return 0
	}

	if err := check.CheckLayout(cfg.ResultsDir); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== rename-results v%s (%s) ===", version, commit)
	log.Info("Results: %s", cfg.ResultsDir)
	if cfg.MappingFile != "" {
		log.Info("Tables:  %s", cfg.MappingFile)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be created or copied")
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// run stops between files.
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current file…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Run the copy pipeline.
	stats, err := pipeline.Run(ctx, cfg, tables, log)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("%v", err)
			log.Error("Stopped after %d file(s); files already copied are left in place", stats.Copied)
		}
		return 1
	}

	fmt.Println()
	fmt.Println(display.SummaryBox("Summary", []display.Row{
		{Label: "Directories", Value: fmt.Sprintf("%d processed, %d not present", stats.Pairs, stats.PairsMissing)},
		{Label: "Copied", Value: display.FormatCount(stats.Copied) + " file(s), " + display.FormatBytes(stats.BytesCopied)},
		{Label: "Skipped", Value: display.FormatCount(stats.Skipped) + " file(s)"},
	}))
	return 0
}
