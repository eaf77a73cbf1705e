package scoring

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/models"
)

type mockEvaluator struct {
	response string
	err      error
	prompts  []string
}

func (m *mockEvaluator) Name() string { return "mock" }

func (m *mockEvaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testJob() *models.Job {
	return &models.Job{
		Title:         "Backend Engineer",
		Description:   "Build services.",
		ResumeWeight:  70,
		AnswersWeight: 30,
	}
}

func TestScoreDisabledAdapter(t *testing.T) {
	adapter := NewAdapter(nil)
	assert.False(t, adapter.Enabled())

	result := adapter.Score(context.Background(), &models.Candidate{}, testJob(), "resume text")
	assert.Equal(t, 50, result.FitScore)
	assert.Equal(t, 3, result.ResumeRating)
	assert.Equal(t, 3, result.AnswerQualityRating)
	assert.Equal(t, "AI scoring not available", result.ResumeSummary)
	assert.Equal(t, models.ExperienceLevelUnknown, result.ExperienceLevel)
}

func TestScoreProviderFailure(t *testing.T) {
	adapter := NewAdapter(&mockEvaluator{err: fmt.Errorf("rate limited")})

	result := adapter.Score(context.Background(), &models.Candidate{}, testJob(), "resume text")
	assert.Equal(t, 50, result.FitScore)
	assert.Equal(t, "Error during AI evaluation", result.ResumeSummary)
	assert.Equal(t, models.ExperienceLevelUnknown, result.ExperienceLevel)
}

func TestScoreUnparseableResponse(t *testing.T) {
	adapter := NewAdapter(&mockEvaluator{response: "I think this candidate is great!"})

	result := adapter.Score(context.Background(), &models.Candidate{}, testJob(), "resume text")
	assert.Equal(t, "Error during AI evaluation", result.ResumeSummary)
	assert.Equal(t, 50, result.FitScore)
}

func TestScoreWeightedFit(t *testing.T) {
	evaluator := &mockEvaluator{response: `{
		"resume_rating": 4,
		"answer_quality_rating": 3,
		"resume_summary": "Solid backend background.",
		"experience_level": "senior"
	}`}
	adapter := NewAdapter(evaluator)
	require.True(t, adapter.Enabled())

	result := adapter.Score(context.Background(), &models.Candidate{}, testJob(), "resume text")

	// (4/5*100)*70 + (3/5*100)*30 = 5600+1800, over 100 total weight -> 74.
	assert.Equal(t, 74, result.FitScore)
	assert.Equal(t, 4, result.ResumeRating)
	assert.Equal(t, 3, result.AnswerQualityRating)
	assert.Equal(t, "Solid backend background.", result.ResumeSummary)
	assert.Equal(t, "Senior", result.ExperienceLevel)
	require.Len(t, evaluator.prompts, 1)
}

func TestScoreWeightedFitSmallWeights(t *testing.T) {
	evaluator := &mockEvaluator{response: `{
		"resume_rating": 4,
		"answer_quality_rating": 2,
		"resume_summary": "Strong resume, thin answers.",
		"experience_level": "Mid-level"
	}`}
	adapter := NewAdapter(evaluator)

	job := testJob()
	job.ResumeWeight = 7
	job.AnswersWeight = 3
	result := adapter.Score(context.Background(), &models.Candidate{}, job, "resume text")

	// (4/5*100)*7 + (2/5*100)*3 = 560+120, over 10 total weight -> 68.
	assert.Equal(t, 68, result.FitScore)
	assert.Equal(t, 4, result.ResumeRating)
	assert.Equal(t, 2, result.AnswerQualityRating)
	assert.Equal(t, "Mid-level", result.ExperienceLevel)
}

func TestScoreClampsRatings(t *testing.T) {
	adapter := NewAdapter(&mockEvaluator{response: `{
		"resume_rating": 9,
		"answer_quality_rating": -2,
		"resume_summary": "s",
		"experience_level": "Wizard"
	}`})

	result := adapter.Score(context.Background(), &models.Candidate{}, testJob(), "resume text")
	assert.Equal(t, 5, result.ResumeRating)
	assert.Equal(t, 1, result.AnswerQualityRating)
	assert.Equal(t, models.ExperienceLevelUnknown, result.ExperienceLevel)
	// (5/5*100)*70 + (1/5*100)*30 over 100 -> 76.
	assert.Equal(t, 76, result.FitScore)
}

func TestFitScoreZeroWeights(t *testing.T) {
	// Both weights zero falls back to an even split.
	assert.Equal(t, 80, fitScore(5, 3, 0, 0))
	assert.Equal(t, 100, fitScore(5, 5, 0, 0))
}

func TestClampRatingRounds(t *testing.T) {
	assert.Equal(t, 4, clampRating(3.6))
	assert.Equal(t, 3, clampRating(3.4))
	assert.Equal(t, 1, clampRating(0.2))
	assert.Equal(t, 5, clampRating(7.9))
}
