package config

import (
	"os"
	"strconv"
)

// Config is the full runtime configuration, read from the environment with
// defaults that make the service usable out of the box (offline vader
// backend, built-in sample dataset).
type Config struct {
	AppEnv   string
	HTTPAddr string

	SentimentBackend  string
	SentimentEndpoint string
	TruncateInput     bool
	HugotModelDir     string
	OpenAIAPIKey      string

	AspectKeywords  string
	AspectBreakdown bool
	UseSampleData   bool
}

const defaultAspectKeywords = "service,food,price,parking,staff,ambience,delivery"

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func GetConfig() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		SentimentBackend:  getEnv("SENTIMENT_BACKEND", "vader"),
		SentimentEndpoint: getEnv("SENTIMENT_ENDPOINT", "https://spacesedan-sentiment-analyzer.hf.space/analyze_batch"),
		TruncateInput:     getBoolEnv("TRUNCATE_INPUT", true),
		HugotModelDir:     getEnv("HUGOT_MODEL_DIR", "./models"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),

		AspectKeywords:  getEnv("ASPECT_KEYWORDS", defaultAspectKeywords),
		AspectBreakdown: getBoolEnv("ASPECT_BREAKDOWN", true),
		UseSampleData:   getBoolEnv("USE_SAMPLE_DATA", true),
	}
}
