package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	USER_AGENT      = "sentimentscope-client/1.0 (+https://github.com/spacesedan/sentimentscope)"

	defaultHTTPTimeout = 60 * time.Second
)

// batchRequest is the wire format of the batch analysis endpoint.
type batchRequest struct {
	Inputs     []string `json:"inputs"`
	Truncation bool     `json:"truncation"`
}

// HTTPClassifier talks to a hosted sentiment analysis service that accepts
// a batch of texts and answers with one result per text in input order.
// The per-item result shape is deliberately left raw; Normalize deals
// with whatever the service returns.
type HTTPClassifier struct {
	endpoint string
	truncate bool
	client   *http.Client
}

// HTTPOptions configures an HTTPClassifier. Endpoint is required.
type HTTPOptions struct {
	Endpoint string
	Truncate bool
	Timeout  time.Duration
}

func NewHTTPClassifier(opts HTTPOptions) *HTTPClassifier {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	slog.Info("[HTTPClassifier] Initializing client",
		slog.String("endpoint", opts.Endpoint),
		slog.Duration("timeout", timeout))

	return &HTTPClassifier{
		endpoint: opts.Endpoint,
		truncate: opts.Truncate,
		client:   &http.Client{Timeout: timeout},
	}
}

func (h *HTTPClassifier) Name() string { return "http" }

func (h *HTTPClassifier) Classify(ctx context.Context, texts []string) ([]Raw, error) {
	start := time.Now()

	body, err := json.Marshal(batchRequest{Inputs: texts, Truncation: h.truncate})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := h.doWithRetry(req)
	if err != nil {
		slog.Error("[HTTPClassifier] Request failed after retries",
			slog.String("endpoint", h.endpoint),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}

	var results []Raw
	if err := json.Unmarshal(respBody, &results); err != nil {
		slog.Error("[HTTPClassifier] Failed to unmarshal response",
			slog.String("endpoint", h.endpoint),
			slog.String("error", err.Error()),
			bodyPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	slog.Info("[HTTPClassifier] Batch request successful",
		slog.Int("batch_size", len(texts)),
		slog.Duration("elapsed", time.Since(start)))

	return results, nil
}

// doWithRetry retries server-side failures with exponential backoff.
// Client errors (4xx) are returned to the caller on the first attempt.
func (h *HTTPClassifier) doWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			if req.Body, err = req.GetBody(); err != nil {
				return nil, err
			}
		}

		resp, err = h.client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[HTTPClassifier] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	if err == nil {
		err = fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}
	return nil, err
}

func bodyPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
