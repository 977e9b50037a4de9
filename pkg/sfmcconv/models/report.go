package models

// KeywordUsage records how often a keyword occurs and on which lines.
type KeywordUsage struct {
	Count int `json:"count" yaml:"count"`
	// Lines holds 1-based line numbers, each at most once.
	Lines []int `json:"lines" yaml:"lines"`
}

// UsageReport summarises tracked substrings remaining in a converted document.
type UsageReport struct {
	// URLOccurrences maps each tracked URL fragment to its occurrence count.
	URLOccurrences map[string]int `json:"url_occurrences" yaml:"url_occurrences"`
	// Keywords maps each tracked keyword to its usage.
	Keywords map[string]KeywordUsage `json:"keywords" yaml:"keywords"`
	// URLOrder and KeywordOrder keep the tracked order for rendering.
	URLOrder     []string `json:"-" yaml:"-"`
	KeywordOrder []string `json:"-" yaml:"-"`
}
