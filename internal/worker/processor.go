// Package worker drives pending candidates through the evaluation
// pipeline: résumé extraction, AI scoring, persistence, status
// transition and notification. It has two entry points, the polling
// batch loop and a synchronous single-candidate call, sharing one
// algorithm.
package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hireflow/internal/models"
	"hireflow/internal/notify"
	"hireflow/internal/store"
)

// ErrNotPending is returned when a candidate is missing, soft-deleted,
// or already processed. The batch loop skips it silently; the triggered
// entry point reports it to the caller as a no-op failure.
var ErrNotPending = errors.New("worker: candidate is not pending scoring")

// ResumeExtractor converts a résumé reference into plain text.
type ResumeExtractor interface {
	Extract(ctx context.Context, reference string) string
}

// Scorer produces ratings for one candidate. Implementations absorb
// provider failures into degraded results and never fail.
type Scorer interface {
	Score(ctx context.Context, candidate *models.Candidate, job *models.Job, resumeText string) models.ScoringResult
}

// Notifier sends one of the fixed transactional emails.
type Notifier interface {
	Send(ctx context.Context, kind notify.Kind, candidate *models.Candidate, job *models.Job) error
}

// Deps aggregates everything a processing pass needs.
type Deps struct {
	Candidates store.CandidateStore
	Jobs       store.JobStore
	Extractor  ResumeExtractor
	Scorer     Scorer
	Notifier   Notifier
}

// ProcessOptions tweak a single pass.
type ProcessOptions struct {
	// SkipEmails suppresses the application-received pair, used by the
	// manual "recalculate score" action.
	SkipEmails bool
}

// Processor runs the single-candidate algorithm.
type Processor struct {
	deps Deps
}

// NewProcessor wires a processor to its dependencies.
func NewProcessor(deps Deps) *Processor {
	return &Processor{deps: deps}
}

// Process drives one candidate through a full scoring pass.
//
// The write that persists the scoring result also clears needs_scoring
// and is the sole completion marker: once it lands, the candidate will
// not be picked up again. There is no row locking, so a concurrent
// triggered call can race the poller into a double pass; that race is
// accepted.
func (p *Processor) Process(ctx context.Context, id uuid.UUID, opts ProcessOptions) error {
	candidate, err := p.deps.Candidates.GetPendingCandidate(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotPending, id)
		}
		return fmt.Errorf("loading candidate %s: %w", id, err)
	}

	job, err := p.deps.Jobs.GetJob(ctx, candidate.JobID)
	if err != nil {
		return fmt.Errorf("loading job %s for candidate %s: %w", candidate.JobID, id, err)
	}

	resumeText := p.extractResume(ctx, candidate)

	result := p.deps.Scorer.Score(ctx, candidate, job, resumeText)

	if err := p.deps.Candidates.SaveScoringResult(ctx, id, result); err != nil {
		return fmt.Errorf("persisting scoring result for candidate %s: %w", id, err)
	}
	log.Infof("candidate %s scored: fit=%d resume=%d answers=%d level=%s",
		id, result.FitScore, result.ResumeRating, result.AnswerQualityRating, result.ExperienceLevel)

	if !opts.SkipEmails {
		if err := p.deps.Notifier.Send(ctx, notify.KindApplicationReceived, candidate, job); err != nil {
			log.Warnf("confirmation email for candidate %s failed: %v", id, err)
		}
	}

	// An elimination that survived to the scoring stage is surfaced for
	// human confirmation rather than auto-rejected; submission-time
	// eliminations never reach this point.
	if models.HasElimination(candidate.DisqualificationFlags) {
		if err := p.deps.Candidates.UpdateStatus(ctx, id, models.StatusFlagged); err != nil {
			return fmt.Errorf("flagging candidate %s: %w", id, err)
		}
		log.Infof("candidate %s flagged: elimination present after scoring", id)
	}

	return nil
}

func (p *Processor) extractResume(ctx context.Context, candidate *models.Candidate) string {
	reference := ""
	if candidate.ResumeURL != nil {
		reference = *candidate.ResumeURL
	}
	return p.deps.Extractor.Extract(ctx, reference)
}

// NotifyStatusChange fires the one-shot email matching a human review
// transition (schedule_interview or rejected).
func (p *Processor) NotifyStatusChange(ctx context.Context, id uuid.UUID, kind notify.Kind) error {
	if kind != notify.KindScheduleInterview && kind != notify.KindRejection {
		return fmt.Errorf("unsupported status-change notification %q", kind)
	}

	candidate, err := p.deps.Candidates.GetCandidate(ctx, id)
	if err != nil {
		return fmt.Errorf("loading candidate %s: %w", id, err)
	}
	job, err := p.deps.Jobs.GetJob(ctx, candidate.JobID)
	if err != nil {
		return fmt.Errorf("loading job %s for candidate %s: %w", candidate.JobID, id, err)
	}

	return p.deps.Notifier.Send(ctx, kind, candidate, job)
}
