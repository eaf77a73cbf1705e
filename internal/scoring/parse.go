package scoring

import (
	"encoding/json"
	"fmt"
	"strings"
)

// evaluation is the structured response the provider is instructed to
// return. Ratings are decoded as floats because models occasionally
// return "4.5" despite being asked for integers.
type evaluation struct {
	ResumeRating        float64 `json:"resume_rating"`
	AnswerQualityRating float64 `json:"answer_quality_rating"`
	ResumeSummary       string  `json:"resume_summary"`
	ExperienceLevel     string  `json:"experience_level"`
}

// parseEvaluation decodes a model response, tolerating markdown code
// fences and prose wrapped around the JSON object.
func parseEvaluation(raw string) (evaluation, error) {
	cleaned := cleanJSONResponse(raw)
	if cleaned == "" {
		return evaluation{}, fmt.Errorf("no JSON object found in model response")
	}

	var eval evaluation
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return evaluation{}, fmt.Errorf("decoding model response: %w", err)
	}
	return eval, nil
}

// cleanJSONResponse strips markdown fences and slices the response down
// to the outermost JSON object.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return content[start : end+1]
}
