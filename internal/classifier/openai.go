package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const sentimentSystemPrompt = "You are a sentiment classifier. " +
	"Reply with a single JSON object of the form " +
	`{"label": "POSITIVE"|"NEGATIVE"|"NEUTRAL", "score": <confidence between 0 and 1>}` +
	" and nothing else."

// OpenAIClassifier labels texts through chat completions. Responses that do
// not come back as the requested JSON object are passed through raw and end
// up stringified by Normalize.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(apiKey string) *OpenAIClassifier {
	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (o *OpenAIClassifier) Name() string { return "openai" }

func (o *OpenAIClassifier) Classify(ctx context.Context, texts []string) ([]Raw, error) {
	results := make([]Raw, 0, len(texts))

	for _, text := range texts {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: sentimentSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: "Classify the sentiment of the following text: " + text,
				},
			},
			MaxTokens: 50,
		})
		if err != nil {
			return nil, fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("chat completion returned no choices")
		}

		results = append(results, rawFromContent(resp.Choices[0].Message.Content))
	}

	return results, nil
}

// rawFromContent keeps well-formed JSON replies as-is so they flow through
// shape normalization like any other backend response; free-text replies
// are wrapped as JSON strings and resolve to the scalar shape.
func rawFromContent(content string) Raw {
	content = strings.TrimSpace(content)
	if json.Valid([]byte(content)) {
		return Raw(content)
	}

	quoted, err := json.Marshal(content)
	if err != nil {
		return Raw(`null`)
	}
	return quoted
}
