package pipeline

// RunStats tracks aggregate counters and byte totals across a run.
type RunStats struct {
	Pairs        int   // Directory pairs whose source existed.
	PairsMissing int   // Directory pairs skipped because the source was absent.
	Copied       int   // Files copied (or, in a dry run, that would be copied).
	Skipped      int   // Source files skipped because the stem was malformed.
	Collisions   int   // Destination paths written by more than one source.
	BytesCopied  int64 // Sum of copied file sizes.
}
