package naming

import (
	"maps"

	"golang.org/x/text/unicode/norm"
)

// DefaultSeparator splits a stem into category and phenomenon ("火の夏雨").
const DefaultSeparator = "の"

// DirPair maps one source results directory to its transliterated name.
type DirPair struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

var defaultDirs = []DirPair{
	{Source: "01_火", Dest: "fire"},
	{Source: "02_木", Dest: "wood"},
	{Source: "03_土", Dest: "earth"},
	{Source: "04_金", Dest: "metal"},
	{Source: "05_水", Dest: "water"},
}

var defaultCategories = map[string]string{
	"火": "fire",
	"木": "wood",
	"土": "earth",
	"金": "metal",
	"水": "water",
}

var defaultPhenomena = map[string]string{
	"春霞": "harugasumi",
	"夏雨": "natsuame",
	"彩雲": "saiun",
	"朝日": "asahi",
	"夕陽": "yuhi",
	"秋風": "akikaze",
	"冬陽": "fuyuhi",
	"朧月": "oborozuki",
	"霜夜": "shimoya",
	"氷刃": "hyojin",
	"春雷": "shunrai",
	"豊穣": "houjo",
}

// Tables holds the lookup tables for one run. Keys of Categories and
// Phenomena are NFC-normalized. Treat a Tables value as read-only once
// built.
type Tables struct {
	Separator  string
	Dirs       []DirPair
	Categories map[string]string
	Phenomena  map[string]string
}

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() *Tables {
	return &Tables{
		Separator:  DefaultSeparator,
		Dirs:       append([]DirPair(nil), defaultDirs...),
		Categories: normalizeKeys(defaultCategories),
		Phenomena:  normalizeKeys(defaultPhenomena),
	}
}

// Category translates a category token, returning token itself when unmapped.
func (t *Tables) Category(token string) string {
	return lookup(t.Categories, token)
}

// Phenomenon translates a phenomenon token, returning token itself when unmapped.
func (t *Tables) Phenomenon(token string) string {
	return lookup(t.Phenomena, token)
}

func lookup(m map[string]string, token string) string {
	if v, ok := m[norm.NFC.String(token)]; ok {
		return v
	}
	return token
}

func normalizeKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[norm.NFC.String(k)] = v
	}
	return out
}

func (t *Tables) merge(categories, phenomena map[string]string) {
	maps.Copy(t.Categories, normalizeKeys(categories))
	maps.Copy(t.Phenomena, normalizeKeys(phenomena))
}
