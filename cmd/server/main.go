package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spacesedan/sentimentscope/config"
	"github.com/spacesedan/sentimentscope/internal/classifier"
	"github.com/spacesedan/sentimentscope/internal/logging"
	"github.com/spacesedan/sentimentscope/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.GetConfig()

	clf, err := classifier.New(cfg.SentimentBackend, classifier.Options{
		Endpoint:  cfg.SentimentEndpoint,
		Truncate:  cfg.TruncateInput,
		ModelDir:  cfg.HugotModelDir,
		OpenAIKey: cfg.OpenAIAPIKey,
	})
	if err != nil {
		slog.Error("[Main] Failed to initialize sentiment backend",
			slog.String("backend", cfg.SentimentBackend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if closer, ok := clf.(io.Closer); ok {
		defer closer.Close()
	}

	slog.Info("[Main] Starting server",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("backend", clf.Name()))

	r := server.SetupRouter(cfg, clf)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		slog.Error("[Main] Failed to start server",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
