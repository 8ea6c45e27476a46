package naming

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by [Tables.Validate].
var (
	ErrInvalidSeparator = errors.New("separator must be exactly one character")
	ErrSameDir          = errors.New("source and destination directory are the same")
)

// mappingFile is the on-disk YAML layout. Every section is optional.
type mappingFile struct {
	Separator  *string           `yaml:"separator"`
	Dirs       []DirPair         `yaml:"directories"`
	Categories map[string]string `yaml:"categories"`
	Phenomena  map[string]string `yaml:"phenomena"`
}

// LoadTables returns the built-in tables overlaid with the YAML file at path.
// An empty path returns the defaults. A directories section replaces the
// built-in list; categories and phenomena are merged key by key.
func LoadTables(path string) (*Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	var mf mappingFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse mapping file %s: %w", path, err)
	}

	if mf.Separator != nil {
		t.Separator = *mf.Separator
	}
	if len(mf.Dirs) > 0 {
		t.Dirs = mf.Dirs
	}
	t.merge(mf.Categories, mf.Phenomena)

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return t, nil
}

// Validate reports the first structural problem in t: a bad separator, an
// empty or path-like directory name, or an empty table entry.
func (t *Tables) Validate() error {
	if utf8.RuneCountInString(t.Separator) != 1 {
		return fmt.Errorf("%w (got %q)", ErrInvalidSeparator, t.Separator)
	}
	if len(t.Dirs) == 0 {
		return errors.New("no directories configured")
	}
	for i, d := range t.Dirs {
		if err := checkDirName(d.Source); err != nil {
			return fmt.Errorf("directories[%d].source: %w", i, err)
		}
		if err := checkDirName(d.Dest); err != nil {
			return fmt.Errorf("directories[%d].dest: %w", i, err)
		}
		if norm.NFC.String(d.Source) == norm.NFC.String(d.Dest) {
			return fmt.Errorf("directories[%d]: %w (%q)", i, ErrSameDir, d.Source)
		}
	}
	if err := checkEntries("categories", t.Categories); err != nil {
		return err
	}
	return checkEntries("phenomena", t.Phenomena)
}

func checkDirName(name string) error {
	switch {
	case name == "":
		return errors.New("must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a directory name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%q must be a single path element", name)
	}
	return nil
}

func checkEntries(section string, m map[string]string) error {
	for k, v := range m {
		if k == "" || v == "" {
			return fmt.Errorf("%s: empty entry %q -> %q", section, k, v)
		}
		if strings.ContainsAny(v, `/\`) {
			return fmt.Errorf("%s: %q -> %q must not contain path separators", section, k, v)
		}
	}
	return nil
}
