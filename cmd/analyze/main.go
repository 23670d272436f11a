package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spacesedan/sentimentscope/config"
	"github.com/spacesedan/sentimentscope/internal/aggregate"
	"github.com/spacesedan/sentimentscope/internal/classifier"
	"github.com/spacesedan/sentimentscope/internal/dataset"
	"github.com/spacesedan/sentimentscope/internal/engine"
	"github.com/spacesedan/sentimentscope/internal/logging"
	"github.com/spacesedan/sentimentscope/internal/models"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.GetConfig()

	filePath := flag.String("file", "", "path to a CSV file with a 'text' column (sample dataset when omitted)")
	aspects := flag.String("aspects", cfg.AspectKeywords, "comma-separated aspect keywords")
	breakdown := flag.Bool("breakdown", cfg.AspectBreakdown, "include the aspect x label table")
	asJSON := flag.Bool("json", false, "emit the full result as JSON")
	flag.Parse()

	records, err := loadRecords(*filePath)
	if err != nil {
		slog.Error("[Analyze] Failed to load input",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	clf, err := classifier.New(cfg.SentimentBackend, classifier.Options{
		Endpoint:  cfg.SentimentEndpoint,
		Truncate:  cfg.TruncateInput,
		ModelDir:  cfg.HugotModelDir,
		OpenAIKey: cfg.OpenAIAPIKey,
	})
	if err != nil {
		slog.Error("[Analyze] Failed to initialize sentiment backend",
			slog.String("backend", cfg.SentimentBackend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if closer, ok := clf.(io.Closer); ok {
		defer closer.Close()
	}

	keywords := engine.ParseKeywords(*aspects)
	enriched, err := engine.NewEngine(clf, keywords).Run(context.Background(), records)
	if err != nil {
		slog.Error("[Analyze] Run failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary := aggregate.Summarize(enriched, keywords)

	if *asJSON {
		out := map[string]any{
			"records":            enriched,
			"summary":            summary,
			"label_distribution": aggregate.LabelDistribution(enriched),
		}
		if *breakdown {
			out["aspect_breakdown"] = aggregate.AspectLabelTable(enriched)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			slog.Error("[Analyze] Failed to encode output",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	printSummary(enriched, summary, *breakdown)
}

func loadRecords(path string) ([]models.TextRecord, error) {
	if path == "" {
		return dataset.Sample(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dataset.Load(f)
}

func printSummary(enriched []models.EnrichedRecord, summary models.AggregateSummary, breakdown bool) {
	fmt.Printf("Total entries:  %d\n", summary.TotalEntries)
	fmt.Printf("Net sentiment:  %.2f%%\n", summary.NetSentiment)
	fmt.Printf("Unique aspects: %d\n\n", summary.UniqueAspects)

	fmt.Println("Label distribution:")
	for label, count := range summary.LabelCounts {
		fmt.Printf("  %-12s %d\n", label, count)
	}

	if breakdown {
		table := aggregate.AspectLabelTable(enriched)
		fmt.Println("\nAspect breakdown:")
		for aspect, counts := range table.Rows {
			fmt.Printf("  %-12s", aspect)
			for _, label := range table.Labels {
				fmt.Printf(" %s=%d", label, counts[label])
			}
			fmt.Println()
		}
	}
}
