// Package check provides diagnostics (--check mode) and the pre-run layout
// validation (CheckLayout) for the results directory and name tables.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/en-shindan/rename-results/internal/config"
	"github.com/en-shindan/rename-results/internal/naming"
	"github.com/en-shindan/rename-results/internal/pipeline"
)

// Sentinel errors returned by CheckLayout.
var (
	ErrResultsDirMissing = errors.New("results directory not found")
	ErrResultsNotDir     = errors.New("results path is not a directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck reports on the results directory, each directory pair, and the
// name tables without copying anything. It returns false when the results
// directory is unusable or the tables are invalid; warnings alone pass.
func RunCheck(cfg *config.Config, tables *naming.Tables, log Logger) bool {
	log.Info("=== Check ===")
	ok := true

	if err := CheckLayout(cfg.ResultsDir); err != nil {
		log.Error("%v", err)
		ok = false
	} else {
		log.Success("Results directory: %s", cfg.ResultsDir)
		checkPairs(cfg, tables, log)
	}

	if !checkTables(tables, log) {
		ok = false
	}
	return ok
}

// CheckLayout is the pre-run validation: the results directory must exist
// and be a directory.
func CheckLayout(resultsDir string) error {
	fi, err := os.Stat(resultsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrResultsDirMissing, resultsDir)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrResultsNotDir, resultsDir)
	}
	return nil
}

// checkPairs logs, for each pair, whether the source exists, how many result
// files it holds and how many of those would be skipped.
func checkPairs(cfg *config.Config, tables *naming.Tables, log Logger) {
	for _, pair := range tables.Dirs {
		src := filepath.Join(cfg.ResultsDir, pair.Source)
		files, err := pipeline.Discover(src)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Info("  %s: not present (skipped)", pair.Source)
			} else {
				log.Warn("  %s: %v", pair.Source, err)
			}
			continue
		}

		var malformed []string
		for _, f := range files {
			if _, err := naming.ParseFilename(filepath.Base(f), tables.Separator); err != nil {
				malformed = append(malformed, filepath.Base(f))
			}
		}
		if len(malformed) == 0 {
			log.Success("  %s -> %s: %d result file(s)", pair.Source, pair.Dest, len(files))
			continue
		}
		log.Warn("  %s -> %s: %d result file(s), %d would be skipped", pair.Source, pair.Dest, len(files), len(malformed))
		for _, name := range malformed {
			log.Debug(cfg.Verbose, "    %s", name)
		}
	}
}

// checkTables validates the tables and warns about ambiguous entries: two
// pairs writing the same destination, or two tokens with the same output.
func checkTables(tables *naming.Tables, log Logger) bool {
	if err := tables.Validate(); err != nil {
		log.Error("Name tables: %v", err)
		return false
	}
	log.Success("Name tables: %d directories, %d categories, %d phenomena, separator %q",
		len(tables.Dirs), len(tables.Categories), len(tables.Phenomena), tables.Separator)

	dests := make(map[string][]string)
	for _, d := range tables.Dirs {
		dests[d.Dest] = append(dests[d.Dest], d.Source)
	}
	for _, dup := range duplicates(dests) {
		log.Warn("  Directories %v all copy into %s", dests[dup], dup)
	}
	for _, dup := range duplicates(invert(tables.Categories)) {
		log.Warn("  Several categories translate to %q", dup)
	}
	for _, dup := range duplicates(invert(tables.Phenomena)) {
		log.Warn("  Several phenomena translate to %q", dup)
	}
	return true
}

func invert(m map[string]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[v] = append(out[v], k)
	}
	return out
}

// duplicates returns the keys of m that have more than one value, sorted.
func duplicates(m map[string][]string) []string {
	var keys []string
	for k, v := range m {
		if len(v) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
