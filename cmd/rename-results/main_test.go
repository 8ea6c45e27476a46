package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResult(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
}

func TestRun_CopiesIntoResultsDir(t *testing.T) {
	results := t.TempDir()
	writeResult(t, filepath.Join(results, "01_火"), "火の夏雨.md")
	writeResult(t, filepath.Join(results, "01_火"), "火の夏雨.html")

	code := run([]string{"--no-color", results})

	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(results, "fire", "fire-natsuame.md"))
	assert.FileExists(t, filepath.Join(results, "fire", "fire-natsuame.html"))
}

func TestRun_DryRun(t *testing.T) {
	results := t.TempDir()
	writeResult(t, filepath.Join(results, "01_火"), "火の夏雨.md")

	code := run([]string{"--no-color", "--dry-run", "--results-dir", results})

	assert.Equal(t, 0, code)
	assert.NoDirExists(t, filepath.Join(results, "fire"))
}

func TestRun_MissingResultsDir(t *testing.T) {
	code := run([]string{"--no-color", filepath.Join(t.TempDir(), "missing")})
	assert.Equal(t, 1, code)
}

func TestRun_Check(t *testing.T) {
	results := t.TempDir()
	writeResult(t, filepath.Join(results, "02_木"), "木の春雷.md")

	assert.Equal(t, 0, run([]string{"--no-color", "--check", results}))
	assert.NoDirExists(t, filepath.Join(results, "wood"))
}

func TestRun_MappingFile(t *testing.T) {
	results := t.TempDir()
	writeResult(t, filepath.Join(results, "06_風"), "風の嵐.md")
	mapping := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(mapping, []byte(`
directories:
  - source: 06_風
    dest: wind
categories:
  風: wind
phenomena:
  嵐: arashi
`), 0o644))

	code := run([]string{"--no-color", "-m", mapping, results})

	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(results, "wind", "wind-arashi.md"))
}

func TestRun_BadMappingFile(t *testing.T) {
	results := t.TempDir()
	mapping := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(mapping, []byte(`separator: "::"`), 0o644))

	assert.Equal(t, 1, run([]string{"--no-color", "-m", mapping, results}))
}

func TestRun_TooManyArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"a", "b"}))
}
