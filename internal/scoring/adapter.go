// Package scoring turns a candidate's résumé text and application
// answers into a weighted fit score using an external language-model
// provider. Provider failures are absorbed into fixed degraded results;
// this package never surfaces an error to the worker.
package scoring

import (
	"context"
	"math"

	log "github.com/sirupsen/logrus"

	"hireflow/internal/models"
)

const (
	neutralFitScore = 50
	neutralRating   = 3

	summaryUnavailable = "AI scoring not available"
	summaryError       = "Error during AI evaluation"
)

// Evaluator is a single-call language-model backend. It receives the
// fully assembled prompt and returns the raw model output.
type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, prompt string) (string, error)
}

// Adapter builds the evaluation prompt, invokes the provider once and
// normalizes the response into a ScoringResult.
type Adapter struct {
	evaluator Evaluator
}

// NewAdapter wires the adapter to a provider. A nil evaluator disables
// scoring: every candidate then receives the fixed neutral result.
func NewAdapter(evaluator Evaluator) *Adapter {
	if evaluator == nil {
		log.Warn("No AI provider configured. Candidates will receive neutral default scores.")
	}
	return &Adapter{evaluator: evaluator}
}

// Enabled reports whether an AI provider is configured.
func (a *Adapter) Enabled() bool {
	return a.evaluator != nil
}

// Score produces the ratings for one candidate. Exactly one provider
// call is made per invocation; there is no retry loop, and any provider
// or parse failure yields the fixed degraded result.
func (a *Adapter) Score(ctx context.Context, candidate *models.Candidate, job *models.Job, resumeText string) models.ScoringResult {
	if a.evaluator == nil {
		return neutralResult(summaryUnavailable)
	}

	prompt := BuildPrompt(candidate, job, resumeText)

	raw, err := a.evaluator.Evaluate(ctx, prompt)
	if err != nil {
		log.Errorf("AI evaluation failed for candidate %s via %s: %v", candidate.ID, a.evaluator.Name(), err)
		return neutralResult(summaryError)
	}

	parsed, err := parseEvaluation(raw)
	if err != nil {
		log.Errorf("could not parse AI evaluation for candidate %s: %v", candidate.ID, err)
		return neutralResult(summaryError)
	}

	resumeRating := clampRating(parsed.ResumeRating)
	answerRating := clampRating(parsed.AnswerQualityRating)

	return models.ScoringResult{
		FitScore:            fitScore(resumeRating, answerRating, job.ResumeWeight, job.AnswersWeight),
		ResumeRating:        resumeRating,
		AnswerQualityRating: answerRating,
		ResumeSummary:       parsed.ResumeSummary,
		ExperienceLevel:     models.NormalizeExperienceLevel(parsed.ExperienceLevel),
	}
}

func neutralResult(summary string) models.ScoringResult {
	return models.ScoringResult{
		FitScore:            neutralFitScore,
		ResumeRating:        neutralRating,
		AnswerQualityRating: neutralRating,
		ResumeSummary:       summary,
		ExperienceLevel:     models.ExperienceLevelUnknown,
	}
}

// clampRating forces a model-supplied rating into the integer 1..5 range.
func clampRating(v float64) int {
	r := int(math.Round(v))
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

// fitScore combines the two ratings into the 0..100 composite using the
// job's recruiter-configured weights.
func fitScore(resumeRating, answerRating, resumeWeight, answersWeight int) int {
	if resumeWeight <= 0 && answersWeight <= 0 {
		resumeWeight, answersWeight = 1, 1
	}
	resumePart := float64(resumeRating) / 5 * 100 * float64(resumeWeight)
	answersPart := float64(answerRating) / 5 * 100 * float64(answersWeight)
	score := int(math.Round((resumePart + answersPart) / float64(resumeWeight+answersWeight)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
