package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/en-shindan/rename-results/internal/config"
	"github.com/en-shindan/rename-results/internal/naming"
)

// recordLogger captures log lines as "LEVEL message".
type recordLogger struct {
	lines []string
}

func (r *recordLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recordLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recordLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recordLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }
func (r *recordLogger) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.add("DEBUG", f, a...)
	}
}

func (r *recordLogger) String() string { return strings.Join(r.lines, "\n") }

func TestCheckLayout(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckLayout(dir))

	assert.ErrorIs(t, CheckLayout(filepath.Join(dir, "missing")), ErrResultsDirMissing)

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.ErrorIs(t, CheckLayout(file), ErrResultsNotDir)
}

func TestRunCheck_ReportsPairs(t *testing.T) {
	results := t.TempDir()
	src := filepath.Join(results, "01_火")
	require.NoError(t, os.MkdirAll(src, 0o755))
	for _, name := range []string{"火の夏雨.md", "火の朝日.md", "火夏雨.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), nil, 0o644))
	}

	cfg := config.DefaultConfig()
	cfg.ResultsDir = results
	cfg.Verbose = true
	log := &recordLogger{}

	ok := RunCheck(&cfg, naming.DefaultTables(), log)
	require.True(t, ok, log.String())

	out := log.String()
	assert.Contains(t, out, "WARN   01_火 -> fire: 3 result file(s), 1 would be skipped")
	assert.Contains(t, out, "DEBUG     火夏雨.md")
	assert.Contains(t, out, "INFO   02_木: not present (skipped)")
	assert.Contains(t, out, "Name tables: 5 directories, 5 categories, 12 phenomena")

	// Nothing was copied or created.
	assert.NoDirExists(t, filepath.Join(results, "fire"))
}

func TestRunCheck_MissingResultsDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ResultsDir = filepath.Join(t.TempDir(), "missing")
	log := &recordLogger{}

	assert.False(t, RunCheck(&cfg, naming.DefaultTables(), log))
	assert.Contains(t, log.String(), "ERROR results directory not found")
}

func TestRunCheck_InvalidTables(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ResultsDir = t.TempDir()
	tables := naming.DefaultTables()
	tables.Separator = ""
	log := &recordLogger{}

	assert.False(t, RunCheck(&cfg, tables, log))
	assert.Contains(t, log.String(), "ERROR Name tables:")
}

func TestRunCheck_SameSourceAndDest(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ResultsDir = t.TempDir()
	tables := naming.DefaultTables()
	tables.Dirs = []naming.DirPair{{Source: "res", Dest: "res"}}
	log := &recordLogger{}

	assert.False(t, RunCheck(&cfg, tables, log))
	assert.Contains(t, log.String(), "ERROR Name tables:")
	assert.Contains(t, log.String(), "same")
}

func TestRunCheck_WarnsOnDuplicates(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ResultsDir = t.TempDir()
	tables := naming.DefaultTables()
	tables.Dirs = append(tables.Dirs, naming.DirPair{Source: "06_火", Dest: "fire"})
	tables.Phenomena["小雨"] = "natsuame"
	log := &recordLogger{}

	assert.True(t, RunCheck(&cfg, tables, log))
	out := log.String()
	assert.Contains(t, out, "Directories [01_火 06_火] all copy into fire")
	assert.Contains(t, out, `Several phenomena translate to "natsuame"`)
	assert.NotContains(t, out, "Several categories")
}
