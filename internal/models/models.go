package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MultipleChoiceSeparator joins the selected option labels of a
// multiple_choice answer into the single stored answer string.
const MultipleChoiceSeparator = "|||"

// QuestionType enumerates the closed set of application question kinds.
type QuestionType string

const (
	QuestionShortText      QuestionType = "short_text"
	QuestionLongText       QuestionType = "long_text"
	QuestionNumber         QuestionType = "number"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFile           QuestionType = "file"
)

// DefaultTolerancePercent is the soft margin applied around numeric
// range bounds when the recruiter did not configure one.
const DefaultTolerancePercent = 15.0

// EliminatoryCriteria is the per-question-type rule payload. Only the
// fields matching the owning question's type are meaningful: yes_no uses
// ExpectedAnswer, choice types use AcceptedValues, and free-text range
// checks use RangeMin/RangeMax/TolerancePercent.
type EliminatoryCriteria struct {
	ExpectedAnswer   string   `json:"expected_answer,omitempty"`
	AcceptedValues   []string `json:"accepted_values,omitempty"`
	RangeMin         *float64 `json:"range_min,omitempty"`
	RangeMax         *float64 `json:"range_max,omitempty"`
	TolerancePercent *float64 `json:"tolerance_percent,omitempty"`
}

// Tolerance returns the configured tolerance percent or the default.
func (c *EliminatoryCriteria) Tolerance() float64 {
	if c.TolerancePercent != nil {
		return *c.TolerancePercent
	}
	return DefaultTolerancePercent
}

// ApplicationQuestion is a recruiter-authored question attached to a job.
type ApplicationQuestion struct {
	ID            string               `json:"id"`
	Question      string               `json:"question"`
	Type          QuestionType         `json:"type"`
	Required      bool                 `json:"required"`
	IsEliminatory bool                 `json:"is_eliminatory"`
	Options       []string             `json:"options,omitempty"`
	Criteria      *EliminatoryCriteria `json:"eliminatory_criteria,omitempty"`
}

// ApplicationAnswer holds a candidate's answer to a single question.
// Multiple-choice selections are joined with MultipleChoiceSeparator.
type ApplicationAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Values splits a stored answer into its selected option labels.
func (a ApplicationAnswer) Values() []string {
	parts := strings.Split(a.Answer, MultipleChoiceSeparator)
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// FlagSeverity distinguishes hard eliminations from negotiable warnings.
type FlagSeverity string

const (
	SeverityEliminated FlagSeverity = "eliminated"
	SeverityWarning    FlagSeverity = "warning"
)

// DisqualificationFlag records one rule violation. Question text and the
// candidate answer are snapshotted so later recruiter edits to the
// question do not rewrite history.
type DisqualificationFlag struct {
	QuestionID      string       `json:"question_id"`
	QuestionText    string       `json:"question_text"`
	CandidateAnswer string       `json:"candidate_answer"`
	Severity        FlagSeverity `json:"severity"`
	Reason          string       `json:"reason"`
}

// HasElimination reports whether any flag is a hard elimination.
func HasElimination(flags []DisqualificationFlag) bool {
	for _, f := range flags {
		if f.Severity == SeverityEliminated {
			return true
		}
	}
	return false
}

// Job carries the recruiter-configured evaluation settings the pipeline
// reads. The pipeline never writes jobs.
type Job struct {
	ID                  uuid.UUID             `db:"id"`
	Title               string                `db:"title"`
	Description         string                `db:"description"`
	ResumeWeight        int                   `db:"resume_weight"`
	AnswersWeight       int                   `db:"answers_weight"`
	ScoringInstructions *string               `db:"scoring_instructions"`
	SchedulingLink      *string               `db:"scheduling_link"`
	NotificationEmail   *string               `db:"notification_email"`
	Questions           []ApplicationQuestion `db:"questions"`
	CreatedAt           time.Time             `db:"created_at"`
	UpdatedAt           time.Time             `db:"updated_at"`
}

// Candidate is one application to a job. NeedsScoring doubles as the
// processing-queue membership marker: it is true exactly while the
// candidate is waiting for its single scoring pass.
type Candidate struct {
	ID                    uuid.UUID              `db:"id"`
	JobID                 uuid.UUID              `db:"job_id"`
	Name                  string                 `db:"name"`
	Email                 string                 `db:"email"`
	ResumeURL             *string                `db:"resume_url"`
	Answers               []ApplicationAnswer    `db:"answers"`
	Status                CandidateStatus        `db:"status"`
	NeedsScoring          bool                   `db:"needs_scoring"`
	FitScore              *int                   `db:"fit_score"`
	ResumeRating          *int                   `db:"resume_rating"`
	AnswerQualityRating   *int                   `db:"answer_quality_rating"`
	ResumeSummary         *string                `db:"resume_summary"`
	ExperienceLevel       *string                `db:"experience_level"`
	DisqualificationFlags []DisqualificationFlag `db:"disqualification_flags"`
	CreatedAt             time.Time              `db:"created_at"`
	UpdatedAt             time.Time              `db:"updated_at"`
	DeletedAt             *time.Time             `db:"deleted_at"`
}

// AnswerFor returns the candidate's answer for the given question id.
func (c *Candidate) AnswerFor(questionID string) (ApplicationAnswer, bool) {
	for _, a := range c.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return ApplicationAnswer{}, false
}

// ScoringResult is what one worker pass persists onto a candidate.
type ScoringResult struct {
	FitScore            int    `json:"fit_score"`
	ResumeRating        int    `json:"resume_rating"`
	AnswerQualityRating int    `json:"answer_quality_rating"`
	ResumeSummary       string `json:"resume_summary"`
	ExperienceLevel     string `json:"experience_level"`
}
