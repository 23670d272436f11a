package classifier

import (
	"context"
	"encoding/json"
)

// Raw is a single classifier response item before normalization. Backends
// are treated as black boxes: an item may be a {label, score} mapping, a
// singleton sequence wrapping one, or an unrecognized scalar. Normalize
// resolves all three shapes to a models.Prediction.
type Raw = json.RawMessage

// Classifier is the external sentiment capability. Classify submits the
// whole batch in one call and returns exactly one raw item per input, in
// input order. A returned error means the batch as a whole failed and the
// run must abort; per-item shape anomalies are not errors.
type Classifier interface {
	Classify(ctx context.Context, texts []string) ([]Raw, error)
	Name() string
}
