package models

import "strings"

/*
Candidate status constants and the experience-level vocabulary.
Centralizing these avoids magic strings and improves maintainability.
*/

// CandidateStatus is the review state of a candidate.
type CandidateStatus string

const (
	// Human-driven forward path.
	StatusNew               CandidateStatus = "new"
	StatusReviewing         CandidateStatus = "reviewing"
	StatusShortlisted       CandidateStatus = "shortlisted"
	StatusScheduleInterview CandidateStatus = "schedule_interview"
	StatusHired             CandidateStatus = "hired"

	// Reachable from most states.
	StatusRejected CandidateStatus = "rejected"
	// StatusFlagged marks an elimination detected only after scoring ran,
	// for human confirmation. Eliminations caught at submission time go
	// straight to StatusRejected instead.
	StatusFlagged CandidateStatus = "flagged"
)

// Valid reports whether s is a known candidate status.
func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusNew, StatusReviewing, StatusShortlisted, StatusScheduleInterview,
		StatusHired, StatusRejected, StatusFlagged:
		return true
	}
	return false
}

// ExperienceLevelUnknown is the fallback when the evaluator returns a
// level outside the fixed vocabulary.
const ExperienceLevelUnknown = "Unknown"

// ExperienceLevels is the fixed vocabulary the AI evaluator must pick from.
var ExperienceLevels = []string{
	"Entry",
	"Junior",
	"Mid-level",
	"Senior",
	"Lead",
	"Executive",
	ExperienceLevelUnknown,
}

// NormalizeExperienceLevel maps free-form evaluator output onto the fixed
// vocabulary, falling back to Unknown.
func NormalizeExperienceLevel(level string) string {
	level = strings.TrimSpace(level)
	for _, known := range ExperienceLevels {
		if strings.EqualFold(level, known) {
			return known
		}
	}
	return ExperienceLevelUnknown
}
