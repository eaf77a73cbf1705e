package scoring

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"hireflow/internal/costtracker"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiEvaluator implements Evaluator using the Google Gemini API.
type GeminiEvaluator struct {
	client *genai.Client
	model  string
	usage  costtracker.Tracker
}

// NewGeminiEvaluator creates the Gemini backend. A missing API key
// returns nil, which disables AI scoring entirely.
func NewGeminiEvaluator(ctx context.Context, apiKey, model string, usage costtracker.Tracker) (*GeminiEvaluator, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini evaluator will be disabled.")
		return nil, nil
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini evaluator initialized with model %s", model)
	return &GeminiEvaluator{client: client, model: model, usage: usage}, nil
}

// Name returns the provider name.
func (e *GeminiEvaluator) Name() string { return "gemini" }

// Evaluate sends the prompt in one generation call with JSON output
// requested and concatenates the returned text parts.
func (e *GeminiEvaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	model := e.client.GenerativeModel(e.model)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation: %w", err)
	}
	if e.usage != nil && resp.UsageMetadata != nil {
		e.usage.Record(costtracker.UsageEvent{
			Provider:     e.Name(),
			Model:        e.model,
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		})
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return b.String(), nil
}

// Close releases the underlying API client.
func (e *GeminiEvaluator) Close() error {
	return e.client.Close()
}
