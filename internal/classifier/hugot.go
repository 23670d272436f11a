package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const (
	defaultHugotModel    = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"
	defaultHugotModelDir = "./models"
)

// HugotClassifier runs a local ONNX text classification pipeline. The model
// is downloaded on first use and reused for the lifetime of the process.
type HugotClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewHugotClassifier downloads the sentiment model when it is not already
// present under modelDir and initializes an ONNX runtime session for it.
func NewHugotClassifier(modelDir string) (*HugotClassifier, error) {
	if modelDir == "" {
		modelDir = defaultHugotModelDir
	}

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, "distilbert-base-uncased-finetuned-sst-2-english")
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[HugotClassifier] Model not found, downloading...",
			slog.String("model", defaultHugotModel))
		downloaded, err := hugot.DownloadModel(defaultHugotModel, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download sentiment model: %w", err)
		}
		modelPath = downloaded
		slog.Info("[HugotClassifier] Model downloaded successfully",
			slog.String("path", modelPath))
	} else {
		slog.Info("[HugotClassifier] Using existing model",
			slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &HugotClassifier{session: session, pipeline: pipeline}, nil
}

func (h *HugotClassifier) Name() string { return "hugot" }

func (h *HugotClassifier) Classify(ctx context.Context, texts []string) ([]Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := h.pipeline.RunPipeline(texts)
	if err != nil {
		return nil, fmt.Errorf("sentiment pipeline failed: %w", err)
	}

	results := make([]Raw, 0, len(texts))
	for _, item := range output.GetOutput() {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode pipeline output: %w", err)
		}
		results = append(results, raw)
	}

	return results, nil
}

// Close releases the ONNX runtime session.
func (h *HugotClassifier) Close() error {
	return h.session.Destroy()
}
