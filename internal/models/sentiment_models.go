package models

// TextRecord is one row of input: the text to classify plus any metadata
// columns (created_at, source, ...) carried through untouched.
type TextRecord struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Prediction is the canonical classifier output for one text after the raw
// response shape has been normalized.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassificationResult is what the engine produces for a single text:
// the normalized prediction plus the aspect tags derived from it.
// Aspects is never empty; "general" is the fallback tag.
type ClassificationResult struct {
	Label   string   `json:"label"`
	Score   float64  `json:"score"`
	Aspects []string `json:"aspects"`
}

// EnrichedRecord pairs an input record with its classification.
// Aspect holds the comma-joined tag list; the aggregator splits it back
// when building the per-aspect table.
type EnrichedRecord struct {
	TextRecord
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Aspect string  `json:"aspect"`
}

// AggregateSummary holds the headline metrics for one run. It is computed
// fresh on every call and never cached.
type AggregateSummary struct {
	TotalEntries  int            `json:"total_entries"`
	NetSentiment  float64        `json:"net_sentiment"`
	UniqueAspects int            `json:"unique_aspects"`
	LabelCounts   map[string]int `json:"label_counts"`
}

// AspectBreakdown is the aspect x label count table. Labels lists the
// distinct label columns in sorted order; every row carries a count for
// every label, zero-filled where a combination never occurred.
type AspectBreakdown struct {
	Labels []string                  `json:"labels"`
	Rows   map[string]map[string]int `json:"rows"`
}

const (
	// LabelUnknown is assigned when the classifier response for an item
	// cannot be interpreted.
	LabelUnknown = "UNKNOWN"

	// AspectGeneral is assigned when no configured keyword matches a text.
	AspectGeneral = "general"
)
