package naming

import (
	"path/filepath"
)

// OutputStem translates both tokens of p and joins them with a hyphen:
//
//	火の夏雨 -> fire-natsuame
//	火の未知 -> fire-未知
func (t *Tables) OutputStem(p ParsedName) string {
	return t.Category(p.Category) + "-" + t.Phenomenon(p.Phenomenon)
}

// GetOutputPath builds <destDir>/<stem><ext>. ext includes the leading dot.
func GetOutputPath(destDir, stem, ext string) string {
	return filepath.Join(destDir, stem+ext)
}
