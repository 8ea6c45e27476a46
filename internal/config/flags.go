package config

// This file registers CLI flags on a pflag FlagSet owned by the cobra root
// command. Flags are grouped into behavior, display, and paths. Negated flags
// are applied after parsing so Config defaults hold unless set.

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags binds a Config to a parsed FlagSet.
type Flags struct {
	cfg     *Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every flag on fs, writing into cfg.
// Call [Flags.Apply] with the remaining positional args once fs is parsed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{cfg: cfg}
	fs.SortFlags = false

	defineBehaviorFlags(fs, cfg)
	definePathFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &f.negated)
	return f
}

// defineBehaviorFlags registers -d/--dry-run and -m/--mapping.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not create directories or copy files")
	fs.StringVarP(&cfg.MappingFile, "mapping", "m", "", "YAML file overriding the built-in name tables")
}

// definePathFlags registers --results-dir.
func definePathFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ResultsDir, "results-dir", "", "Results directory (default: <binary>/../../public/results)")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Check layout and name tables, then exit")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
}

// Apply copies negated flag values into the Config and takes the results
// directory from the single optional positional argument.
func (f *Flags) Apply(args []string) error {
	applyNegatedFlags(f.cfg, &f.negated)
	return parsePositionalArgs(f.cfg, args)
}

// applyNegatedFlags resolves --color / --no-color into ColorMode. --no-color wins.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets ResultsDir from an optional positional arg.
func parsePositionalArgs(cfg *Config, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if cfg.ResultsDir != "" && NormalizeDirArg(args[0]) != NormalizeDirArg(cfg.ResultsDir) {
			return fmt.Errorf("results directory given twice (%q and --results-dir %q)", args[0], cfg.ResultsDir)
		}
		cfg.ResultsDir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one results_dir argument, got %d", len(args))
	}
}
