package domain

// Pair is a single origin/destination lookup submitted to the collector.
type Pair struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// RawResponse is the unmodified payload returned by the Distance Matrix API
// for one pair. It is treated as opaque except for the fields the parser
// extracts, and is persisted verbatim.
type RawResponse map[string]any

// Text is a string field that may be absent. Absent is distinct from empty:
// an extracted empty string still has OK set.
type Text struct {
	Value string
	OK    bool
}

// ResultRecord is the caller-facing summary for one pair. Immutable once
// constructed; records are not deduplicated across calls.
type ResultRecord struct {
	Origin       string
	Destination  string
	DistanceText Text
	DurationText Text
	Raw          RawResponse
}
