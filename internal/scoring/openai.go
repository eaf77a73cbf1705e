package scoring

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"hireflow/internal/costtracker"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIEvaluator implements Evaluator using the OpenAI chat API.
type OpenAIEvaluator struct {
	client *openai.Client
	model  string
	usage  costtracker.Tracker
}

// NewOpenAIEvaluator creates the OpenAI backend. A missing API key
// returns nil, which disables AI scoring entirely.
func NewOpenAIEvaluator(apiKey, model string, usage costtracker.Tracker) *OpenAIEvaluator {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. OpenAI evaluator will be disabled.")
		return nil
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	log.Infof("OpenAI evaluator initialized with model %s", model)
	return &OpenAIEvaluator{client: openai.NewClient(apiKey), model: model, usage: usage}
}

// Name returns the provider name.
func (e *OpenAIEvaluator) Name() string { return "openai" }

// Evaluate sends the prompt as a single chat completion constrained to
// JSON output and returns the raw message content.
func (e *OpenAIEvaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if e.usage != nil {
		e.usage.Record(costtracker.UsageEvent{
			Provider:     e.Name(),
			Model:        e.model,
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		})
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
