package planner

import (
	"os"
	"path/filepath"

	"github.com/en-shindan/rename-results/internal/naming"
)

// Extension constants for the two sibling files of a result.
const (
	ExtMarkdown = ".md"
	ExtHTML     = ".html"
)

// Extensions lists the sibling extensions copied for each stem, primary first.
var Extensions = []string{ExtMarkdown, ExtHTML}

// BuildPlan translates parsed through tables and adds one Op per extension
// whose sibling file exists as a regular file in srcDir.
func BuildPlan(tables *naming.Tables, srcDir, destDir string, parsed naming.ParsedName) Plan {
	plan := Plan{
		SourceDir:  srcDir,
		DestDir:    destDir,
		Parsed:     parsed,
		OutputStem: tables.OutputStem(parsed),
	}
	for _, ext := range Extensions {
		src := filepath.Join(srcDir, plan.SourceName(ext))
		fi, err := os.Stat(src)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		plan.Ops = append(plan.Ops, Op{
			Ext:    ext,
			Source: src,
			Dest:   naming.GetOutputPath(destDir, plan.OutputStem, ext),
			Size:   fi.Size(),
		})
	}
	return plan
}
