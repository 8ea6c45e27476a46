// Package naming turns Japanese result filenames into their transliterated
// Latin equivalents.
//
// A result stem such as "火の夏雨" is split on the separator into a category
// token ("火") and a phenomenon token ("夏雨"). Each token is translated
// through [Tables]; unknown tokens pass through unchanged. The output stem
// joins the two with a hyphen ("fire-natsuame").
//
// Files:
//   - tables.go: built-in directory, category and phenomenon tables
//   - load.go: YAML overlay of the built-in tables
//   - parser.go: stem parsing
//   - outputpath.go: output stem and path construction
//   - collision.go: in-run duplicate destination tracking
package naming
