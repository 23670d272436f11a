package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/sentimentscope/internal/models"
)

func labeled(labels ...string) []models.EnrichedRecord {
	records := make([]models.EnrichedRecord, len(labels))
	for i, label := range labels {
		records[i] = models.EnrichedRecord{Label: label, Aspect: "general"}
	}
	return records
}

func TestNetSentiment(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   float64
	}{
		{"empty table", nil, 0.0},
		{"balanced", []string{"POSITIVE", "NEGATIVE"}, 0.0},
		{"two thirds positive", []string{"POSITIVE", "POSITIVE", "NEGATIVE"}, 33.33},
		{"all positive", []string{"POSITIVE", "POSITIVE"}, 100.0},
		{"all negative", []string{"NEGATIVE"}, -100.0},
		{"neutral ignored in numerator", []string{"NEUTRAL", "NEUTRAL", "POSITIVE"}, 33.33},
		{"case-insensitive substring", []string{"positive", "neg"}, 0.0},
		{"unknown labels score zero", []string{"UNKNOWN", "UNKNOWN"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NetSentiment(labeled(tt.labels...)))
		})
	}
}

func TestLabelDistribution(t *testing.T) {
	got := LabelDistribution(labeled("POSITIVE", "POSITIVE", "NEGATIVE"))
	assert.Equal(t, map[string]int{"POSITIVE": 2, "NEGATIVE": 1}, got)

	assert.Empty(t, LabelDistribution(nil))
}

func TestAspectLabelTable(t *testing.T) {
	records := []models.EnrichedRecord{
		{Label: "POSITIVE", Aspect: "food"},
		{Label: "NEGATIVE", Aspect: "food,service"},
		{Label: "NEGATIVE", Aspect: "general"},
	}

	table := AspectLabelTable(records)

	assert.Equal(t, []string{"NEGATIVE", "POSITIVE"}, table.Labels)

	// Multi-aspect records fan out: the NEGATIVE food,service row counts
	// once under food and once under service.
	assert.Equal(t, map[string]int{"POSITIVE": 1, "NEGATIVE": 1}, table.Rows["food"])
	assert.Equal(t, map[string]int{"POSITIVE": 0, "NEGATIVE": 1}, table.Rows["service"])
	assert.Equal(t, map[string]int{"POSITIVE": 0, "NEGATIVE": 1}, table.Rows["general"])
}

func TestAspectLabelTableEmpty(t *testing.T) {
	table := AspectLabelTable(nil)
	assert.Empty(t, table.Labels)
	assert.Empty(t, table.Rows)
}

func TestSummarize(t *testing.T) {
	records := labeled("POSITIVE", "POSITIVE", "NEGATIVE")
	keywords := []string{"food", "service", "parking"}

	summary := Summarize(records, keywords)

	assert.Equal(t, 3, summary.TotalEntries)
	assert.Equal(t, 33.33, summary.NetSentiment)
	assert.Equal(t, 3, summary.UniqueAspects)
	assert.Equal(t, map[string]int{"POSITIVE": 2, "NEGATIVE": 1}, summary.LabelCounts)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, nil)
	assert.Equal(t, 0, summary.TotalEntries)
	assert.Equal(t, 0.0, summary.NetSentiment)
}
