package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/models"
)

func TestParseJobDefinition(t *testing.T) {
	data := []byte(`{
		"title": "Backend Engineer",
		"description": "Go services",
		"resume_weight": 7,
		"answers_weight": 3,
		"questions": [
			{"id": "q1", "question": "Years of Go?", "type": "short_text", "is_eliminatory": true,
			 "eliminatory_criteria": {"range_min": 2}}
		]
	}`)

	job, err := parseJobDefinition(data)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, 7, job.ResumeWeight)
	assert.Equal(t, 3, job.AnswersWeight)
	require.Len(t, job.Questions, 1)
	assert.Equal(t, models.QuestionShortText, job.Questions[0].Type)
	require.NotNil(t, job.Questions[0].Criteria)
	assert.Equal(t, 2.0, *job.Questions[0].Criteria.RangeMin)
}

func TestParseJobDefinitionDefaultWeights(t *testing.T) {
	job, err := parseJobDefinition([]byte(`{"title": "Designer"}`))
	require.NoError(t, err)
	assert.Equal(t, 5, job.ResumeWeight)
	assert.Equal(t, 5, job.AnswersWeight)
}

func TestParseJobDefinitionRejectsMissingTitle(t *testing.T) {
	_, err := parseJobDefinition([]byte(`{"description": "no title"}`))
	assert.ErrorContains(t, err, "missing a title")
}

func TestParseJobDefinitionRejectsNegativeWeight(t *testing.T) {
	_, err := parseJobDefinition([]byte(`{"title": "Designer", "resume_weight": -1}`))
	assert.ErrorContains(t, err, "must not be negative")
}

func TestParseJobDefinitionRejectsMalformedJSON(t *testing.T) {
	_, err := parseJobDefinition([]byte(`{"title": `))
	assert.ErrorContains(t, err, "decoding job definition")
}
