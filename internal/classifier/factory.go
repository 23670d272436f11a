package classifier

import (
	"fmt"
	"time"
)

// Options carries the backend-specific settings needed to construct a
// classifier. Only the fields relevant to the selected backend are read.
type Options struct {
	Endpoint  string
	Truncate  bool
	Timeout   time.Duration
	ModelDir  string
	OpenAIKey string
}

// New builds the classifier selected by backend. The returned classifier is
// meant to be constructed once and shared for the lifetime of the process.
func New(backend string, opts Options) (Classifier, error) {
	switch backend {
	case "vader":
		return NewVaderClassifier(), nil
	case "http":
		if opts.Endpoint == "" {
			return nil, fmt.Errorf("http backend requires an endpoint")
		}
		return NewHTTPClassifier(HTTPOptions{
			Endpoint: opts.Endpoint,
			Truncate: opts.Truncate,
			Timeout:  opts.Timeout,
		}), nil
	case "hugot":
		h, err := NewHugotClassifier(opts.ModelDir)
		if err != nil {
			return nil, err
		}
		return h, nil
	case "openai":
		if opts.OpenAIKey == "" {
			return nil, fmt.Errorf("openai backend requires OPENAI_API_KEY")
		}
		return NewOpenAIClassifier(opts.OpenAIKey), nil
	default:
		return nil, fmt.Errorf("unknown sentiment backend %q", backend)
	}
}
