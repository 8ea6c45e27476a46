package pipeline

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/en-shindan/rename-results/internal/planner"
)

// resultPattern selects result files by their primary extension.
const resultPattern = "*" + planner.ExtMarkdown

// Discover lists the files directly inside dir that match *.md. It does not
// descend into subdirectories. Paths come back sorted by filename, which is
// the order os.ReadDir returns.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(resultPattern, e.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
