package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentimentscope/internal/models"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VaderClassifier is the offline backend. It scores texts with the VADER
// lexicon and maps the compound score onto the POSITIVE/NEGATIVE/NEUTRAL
// labels at the +-0.20 thresholds. The absolute compound score stands in
// for model confidence.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Name() string { return "vader" }

func (v *VaderClassifier) Classify(ctx context.Context, texts []string) ([]Raw, error) {
	results := make([]Raw, 0, len(texts))

	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		compound := v.analyzer.PolarityScores(markdownToText(text)).Compound

		var label string
		switch {
		case compound >= 0.20:
			label = "POSITIVE"
		case compound <= -0.20:
			label = "NEGATIVE"
		default:
			label = "NEUTRAL"
		}

		raw, err := json.Marshal(models.Prediction{Label: label, Score: math.Abs(compound)})
		if err != nil {
			return nil, fmt.Errorf("failed to encode vader result: %w", err)
		}
		results = append(results, raw)
	}

	return results, nil
}

// markdownToText strips links and renders markdown so URL tokens and
// formatting noise do not skew the lexicon scores. Link text survives.
func markdownToText(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	input = bareURLPattern.ReplaceAllString(input, "")

	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	return strings.Join(strings.Fields(string(output)), " ")
}
