package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spacesedan/sentimentscope/internal/models"
)

type shapeKind int

const (
	shapeScalar shapeKind = iota
	shapeMapping
	shapeSequence
)

// responseShape is the decoded variant of one raw response item.
type responseShape struct {
	kind     shapeKind
	mapping  map[string]json.RawMessage
	sequence []json.RawMessage
	scalar   json.RawMessage
}

// Normalize resolves one raw classifier response item to a canonical
// prediction. Resolution order: a sequence is unwrapped to its first
// element when that element is a mapping; a mapping is used directly;
// anything else is stringified with a zero score. Missing labels become
// UNKNOWN and missing or unparseable scores become 0.0.
func Normalize(raw Raw) models.Prediction {
	sentinel := models.Prediction{Label: models.LabelUnknown, Score: 0.0}

	shape, ok := detectShape(raw)
	if !ok {
		return sentinel
	}

	switch shape.kind {
	case shapeSequence:
		if len(shape.sequence) == 0 {
			return sentinel
		}
		first, ok := detectShape(shape.sequence[0])
		if !ok || first.kind != shapeMapping {
			return sentinel
		}
		return predictionFromMapping(first.mapping)
	case shapeMapping:
		return predictionFromMapping(shape.mapping)
	default:
		return models.Prediction{Label: stringifyScalar(shape.scalar), Score: 0.0}
	}
}

// detectShape classifies one raw item as mapping, sequence, or scalar.
// Empty or null items report not-ok and resolve to the sentinel.
func detectShape(raw Raw) (responseShape, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return responseShape{}, false
	}

	switch trimmed[0] {
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return responseShape{}, false
		}
		return responseShape{kind: shapeMapping, mapping: m}, true
	case '[':
		var seq []json.RawMessage
		if err := json.Unmarshal(trimmed, &seq); err != nil {
			return responseShape{}, false
		}
		return responseShape{kind: shapeSequence, sequence: seq}, true
	default:
		return responseShape{kind: shapeScalar, scalar: trimmed}, true
	}
}

func predictionFromMapping(m map[string]json.RawMessage) models.Prediction {
	pred := models.Prediction{Label: models.LabelUnknown, Score: 0.0}

	if rawLabel, ok := m["label"]; ok {
		var label string
		if err := json.Unmarshal(rawLabel, &label); err == nil {
			pred.Label = label
		} else {
			pred.Label = stringifyScalar(rawLabel)
		}
	}

	if rawScore, ok := m["score"]; ok {
		pred.Score = coerceScore(rawScore)
	}

	return pred
}

// coerceScore accepts JSON numbers and numeric strings, anything else is 0.0.
func coerceScore(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return 0.0
}

func stringifyScalar(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return fmt.Sprint(v)
}
