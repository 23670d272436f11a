package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentimentscope/internal/classifier"
	"github.com/spacesedan/sentimentscope/internal/models"
)

// Engine runs the classification and enrichment pipeline: clean the texts,
// classify the whole batch in one call, normalize each response item, and
// attach aspect tags. Output order and length always match the input.
type Engine struct {
	classifier classifier.Classifier
	keywords   []string
}

func NewEngine(c classifier.Classifier, keywords []string) *Engine {
	if len(keywords) == 0 {
		keywords = DefaultAspectKeywords
	}
	return &Engine{classifier: c, keywords: keywords}
}

func (e *Engine) Keywords() []string { return e.keywords }

// CleanText trims surrounding whitespace. Non-text upstream values arrive
// here already replaced by empty strings.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

// Run enriches every record with a sentiment label, confidence score and
// aspect tags. A classifier failure aborts the whole run with no partial
// results; malformed per-item responses degrade to the UNKNOWN sentinel.
func (e *Engine) Run(ctx context.Context, records []models.TextRecord) ([]models.EnrichedRecord, error) {
	if len(records) == 0 {
		return []models.EnrichedRecord{}, nil
	}

	cleaned := make([]string, len(records))
	for i, rec := range records {
		cleaned[i] = CleanText(rec.Text)
	}

	raws, err := e.classifier.Classify(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("sentiment classification failed: %w", err)
	}

	if len(raws) != len(records) {
		// Keep row count intact: missing items resolve to the UNKNOWN
		// sentinel, surplus items are ignored.
		slog.Warn("[Engine] Classifier returned unexpected item count",
			slog.Int("expected", len(records)),
			slog.Int("got", len(raws)))
	}

	enriched := make([]models.EnrichedRecord, len(records))
	for i, rec := range records {
		var raw classifier.Raw
		if i < len(raws) {
			raw = raws[i]
		}
		pred := classifier.Normalize(raw)

		enriched[i] = models.EnrichedRecord{
			TextRecord: rec,
			Label:      pred.Label,
			Score:      pred.Score,
			Aspect:     strings.Join(AspectTags(rec.Text, e.keywords), ","),
		}
	}

	return enriched, nil
}

// QuickCheck classifies a single text through the same batch contract.
func (e *Engine) QuickCheck(ctx context.Context, text string) (models.ClassificationResult, error) {
	raws, err := e.classifier.Classify(ctx, []string{CleanText(text)})
	if err != nil {
		return models.ClassificationResult{}, fmt.Errorf("sentiment classification failed: %w", err)
	}

	var raw classifier.Raw
	if len(raws) > 0 {
		raw = raws[0]
	}
	pred := classifier.Normalize(raw)

	return models.ClassificationResult{
		Label:   pred.Label,
		Score:   pred.Score,
		Aspects: AspectTags(text, e.keywords),
	}, nil
}
