// Package pipeline copies result files from the Japanese-named directories
// into their transliterated counterparts and reports what it did.
//
// For every directory pair: confirm the source exists → create the
// destination → discover *.md files → parse the stem → plan the sibling
// copies → copy with metadata → update stats.
//
// Files: runner.go (batch loop), discover.go, copy.go, stats.go.
package pipeline
