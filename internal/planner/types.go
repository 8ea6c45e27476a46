package planner

import "github.com/en-shindan/rename-results/internal/naming"

// Op is a single file copy.
type Op struct {
	Ext    string // Extension including the dot, e.g. ".md".
	Source string
	Dest   string
	Size   int64 // Source size at planning time.
}

// Plan holds the copy operations for one source stem.
type Plan struct {
	SourceDir  string
	DestDir    string
	Parsed     naming.ParsedName
	OutputStem string
	Ops        []Op
}

// Empty reports whether there is nothing to copy.
func (p *Plan) Empty() bool { return len(p.Ops) == 0 }

// SourceName returns the source filename for ext, e.g. "火の夏雨.md".
func (p *Plan) SourceName(ext string) string { return p.Parsed.Stem + ext }

// DestName returns the destination filename for ext, e.g. "fire-natsuame.md".
func (p *Plan) DestName(ext string) string { return p.OutputStem + ext }
