package aggregate

import (
	"math"
	"sort"
	"strings"

	"github.com/spacesedan/sentimentscope/internal/models"
)

// NetSentiment is the positive-minus-negative share of labeled records as a
// percentage, rounded to two decimals. Labels count as positive or negative
// by case-insensitive POS/NEG substring match. An empty table scores 0.0.
func NetSentiment(records []models.EnrichedRecord) float64 {
	total := len(records)
	if total == 0 {
		return 0.0
	}

	var pos, neg int
	for _, rec := range records {
		label := strings.ToUpper(rec.Label)
		if strings.Contains(label, "POS") {
			pos++
		}
		if strings.Contains(label, "NEG") {
			neg++
		}
	}

	return round2(float64(pos-neg) / float64(total) * 100)
}

// LabelDistribution counts records per label.
func LabelDistribution(records []models.EnrichedRecord) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Label]++
	}
	return counts
}

// AspectLabelTable builds the aspect x label count table. A record tagged
// with several aspects contributes one count per aspect. Every row is
// zero-filled so each aspect carries a count for every distinct label.
func AspectLabelTable(records []models.EnrichedRecord) models.AspectBreakdown {
	rows := make(map[string]map[string]int)
	labelSet := make(map[string]struct{})

	for _, rec := range records {
		labelSet[rec.Label] = struct{}{}
		for _, aspect := range strings.Split(rec.Aspect, ",") {
			aspect = strings.TrimSpace(aspect)
			if aspect == "" {
				continue
			}
			if rows[aspect] == nil {
				rows[aspect] = make(map[string]int)
			}
			rows[aspect][rec.Label]++
		}
	}

	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, counts := range rows {
		for _, label := range labels {
			if _, ok := counts[label]; !ok {
				counts[label] = 0
			}
		}
	}

	return models.AspectBreakdown{Labels: labels, Rows: rows}
}

// Summarize derives the headline metrics for one run. UniqueAspects reports
// the size of the configured keyword list, not the tags that matched.
func Summarize(records []models.EnrichedRecord, keywords []string) models.AggregateSummary {
	return models.AggregateSummary{
		TotalEntries:  len(records),
		NetSentiment:  NetSentiment(records),
		UniqueAspects: len(keywords),
		LabelCounts:   LabelDistribution(records),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
