package intake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/intake"
	"hireflow/internal/models"
)

func eliminatoryJob() *models.Job {
	return &models.Job{
		Questions: []models.ApplicationQuestion{{
			ID:            "q1",
			Question:      "Are you authorized to work here?",
			Type:          models.QuestionYesNo,
			IsEliminatory: true,
			Criteria:      &models.EliminatoryCriteria{ExpectedAnswer: "Yes"},
		}},
	}
}

func TestScreenPassingCandidate(t *testing.T) {
	s := intake.Screen(eliminatoryJob(), []models.ApplicationAnswer{{QuestionID: "q1", Answer: "Yes"}})

	assert.Empty(t, s.Flags)
	assert.Equal(t, models.StatusNew, s.Status)
	assert.True(t, s.NeedsScoring)
}

func TestScreenEliminatedCandidate(t *testing.T) {
	s := intake.Screen(eliminatoryJob(), []models.ApplicationAnswer{{QuestionID: "q1", Answer: "No"}})

	require.Len(t, s.Flags, 1)
	assert.Equal(t, models.StatusRejected, s.Status)
	assert.False(t, s.NeedsScoring)
}

func TestScreenWarningStillQueues(t *testing.T) {
	max := 8000.0
	job := &models.Job{
		Questions: []models.ApplicationQuestion{{
			ID:            "q1",
			Question:      "Expected salary?",
			Type:          models.QuestionShortText,
			IsEliminatory: true,
			Criteria:      &models.EliminatoryCriteria{RangeMax: &max},
		}},
	}

	s := intake.Screen(job, []models.ApplicationAnswer{{QuestionID: "q1", Answer: "8500"}})
	require.Len(t, s.Flags, 1)
	assert.Equal(t, models.SeverityWarning, s.Flags[0].Severity)
	assert.Equal(t, models.StatusNew, s.Status)
	assert.True(t, s.NeedsScoring)
}

func TestApplyStampsCandidate(t *testing.T) {
	candidate := &models.Candidate{}
	intake.Apply(candidate, intake.Screen(eliminatoryJob(), []models.ApplicationAnswer{{QuestionID: "q1", Answer: "No"}}))

	assert.Equal(t, models.StatusRejected, candidate.Status)
	assert.False(t, candidate.NeedsScoring)
	assert.Len(t, candidate.DisqualificationFlags, 1)
}
