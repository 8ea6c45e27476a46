package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedStem is returned when a stem does not split into exactly two
// non-empty tokens.
var ErrMalformedStem = errors.New("stem does not split into category and phenomenon")

// ParsedName holds the two tokens of a result stem.
type ParsedName struct {
	Stem       string // Raw stem as found on disk; used to locate sibling files.
	Category   string // First token as found on disk, e.g. "火".
	Phenomenon string // Second token as found on disk, e.g. "夏雨".
}

// ParseFilename strips the extension from basename and parses the stem.
func ParseFilename(basename, sep string) (ParsedName, error) {
	stem := strings.TrimSuffix(basename, filepath.Ext(basename))
	return ParseStem(stem, sep)
}

// ParseStem splits stem on sep. It fails with [ErrMalformedStem] unless the
// split yields exactly two non-empty parts. The tokens are substrings of the
// raw stem; normalization is left to the table lookup.
func ParseStem(stem, sep string) (ParsedName, error) {
	parts := splitRaw(stem, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ParsedName{}, fmt.Errorf("%q: %w", stem, ErrMalformedStem)
	}
	return ParsedName{
		Stem:       stem,
		Category:   parts[0],
		Phenomenon: parts[1],
	}, nil
}

// splitRaw splits stem on sep, or on its NFC or NFD form when the stem spells
// the separator differently.
func splitRaw(stem, sep string) []string {
	for _, s := range []string{sep, norm.NFC.String(sep), norm.NFD.String(sep)} {
		if s != "" && strings.Contains(stem, s) {
			return strings.Split(stem, s)
		}
	}
	return []string{stem}
}
