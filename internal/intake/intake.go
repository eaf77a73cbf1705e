// Package intake owns the submission-time half of the pipeline: running
// the eligibility rules against a fresh application and deciding whether
// the candidate enters the scoring queue at all.
package intake

import (
	"hireflow/internal/eligibility"
	"hireflow/internal/models"
)

// Screening is the outcome of evaluating a fresh application.
type Screening struct {
	Flags        []models.DisqualificationFlag
	Status       models.CandidateStatus
	NeedsScoring bool
}

// Screen evaluates the answers against the job's eliminatory questions.
// A hard elimination rejects the candidate immediately and keeps it out
// of the scoring queue; otherwise the candidate starts as "new" and is
// queued for its scoring pass.
func Screen(job *models.Job, answers []models.ApplicationAnswer) Screening {
	flags := eligibility.Evaluate(job.Questions, answers)
	if models.HasElimination(flags) {
		return Screening{Flags: flags, Status: models.StatusRejected, NeedsScoring: false}
	}
	return Screening{Flags: flags, Status: models.StatusNew, NeedsScoring: true}
}

// Apply stamps a screening outcome onto the candidate record.
func Apply(candidate *models.Candidate, s Screening) {
	candidate.DisqualificationFlags = s.Flags
	candidate.Status = s.Status
	candidate.NeedsScoring = s.NeedsScoring
}
