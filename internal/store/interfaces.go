package store

import (
	"context"

	"github.com/google/uuid"

	"hireflow/internal/models"
)

// --- Candidate Store ---

// CandidateStore is the pipeline's view of candidate persistence.
//
// GetPendingCandidate and the needs_scoring-clearing writes together form
// the queue semantics: a candidate is "in the queue" while needs_scoring
// is true and it is not soft-deleted. There is no row locking; the
// read-then-write pair is deliberately best-effort.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, candidate *models.Candidate) error
	GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error)

	// GetPendingCandidate loads a candidate only if it still needs scoring
	// and is not soft-deleted; otherwise it returns ErrNotFound.
	GetPendingCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error)

	// ListPendingCandidates returns up to limit candidates awaiting
	// scoring, oldest submission first.
	ListPendingCandidates(ctx context.Context, limit int) ([]*models.Candidate, error)

	// SaveScoringResult persists one pass's ratings and clears
	// needs_scoring. This write is the completion marker.
	SaveScoringResult(ctx context.Context, id uuid.UUID, result models.ScoringResult) error

	// ClearNeedsScoring drops a candidate out of the queue without
	// recording a result. Used after a failed pass so the queue cannot
	// wedge on one bad candidate.
	ClearNeedsScoring(ctx context.Context, id uuid.UUID) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.CandidateStatus) error

	Ping(ctx context.Context) error
}

// --- Job Store ---

type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
}
