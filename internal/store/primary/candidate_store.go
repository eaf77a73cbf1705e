package primary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hireflow/internal/models"
	"hireflow/internal/store"
)

// candidateColumns is the column list every candidate SELECT uses; the
// order must match scanCandidate.
const candidateColumns = `
	id, job_id, name, email, resume_url, answers, status, needs_scoring,
	fit_score, resume_rating, answer_quality_rating, resume_summary,
	experience_level, disqualification_flags, created_at, updated_at, deleted_at`

// scanCandidate scans a single row into a models.Candidate, decoding
// the jsonb answer and flag snapshots.
func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var (
		c       models.Candidate
		answers []byte
		flags   []byte
	)
	err := row.Scan(
		&c.ID,
		&c.JobID,
		&c.Name,
		&c.Email,
		&c.ResumeURL,
		&answers,
		&c.Status,
		&c.NeedsScoring,
		&c.FitScore,
		&c.ResumeRating,
		&c.AnswerQualityRating,
		&c.ResumeSummary,
		&c.ExperienceLevel,
		&flags,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &c.Answers); err != nil {
			return nil, fmt.Errorf("decoding candidate answers: %w", err)
		}
	}
	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &c.DisqualificationFlags); err != nil {
			return nil, fmt.Errorf("decoding disqualification flags: %w", err)
		}
	}
	return &c, nil
}

// CreateCandidate inserts a new candidate row. The caller is expected
// to have run intake screening first so status, needs_scoring and the
// flag snapshot are already decided.
func (s *StoreImpl) CreateCandidate(ctx context.Context, candidate *models.Candidate) error {
	if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	answers, err := json.Marshal(candidate.Answers)
	if err != nil {
		return fmt.Errorf("encoding candidate answers: %w", err)
	}
	flags, err := json.Marshal(candidate.DisqualificationFlags)
	if err != nil {
		return fmt.Errorf("encoding disqualification flags: %w", err)
	}

	query := `
		INSERT INTO candidates (id, job_id, name, email, resume_url, answers, status,
			needs_scoring, disqualification_flags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = s.db.Exec(ctx, query,
		candidate.ID, candidate.JobID, candidate.Name, candidate.Email,
		candidate.ResumeURL, answers, candidate.Status, candidate.NeedsScoring,
		flags, candidate.CreatedAt, candidate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting candidate: %w", err)
	}
	return nil
}

// GetCandidate loads a candidate by id, excluding soft-deleted rows.
func (s *StoreImpl) GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1 AND deleted_at IS NULL`, candidateColumns)
	candidate, err := scanCandidate(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("querying candidate %s: %w", id, err)
	}
	return candidate, nil
}

// GetPendingCandidate loads a candidate only while it still needs
// scoring. This read is the claim half of the queue semantics; it is
// not serialized against the completion write.
func (s *StoreImpl) GetPendingCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates
		WHERE id = $1 AND needs_scoring = TRUE AND deleted_at IS NULL`, candidateColumns)
	candidate, err := scanCandidate(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("querying pending candidate %s: %w", id, err)
	}
	return candidate, nil
}

// listPendingQuery drains the scoring queue oldest-first; the ordering
// is what makes the queue FIFO.
var listPendingQuery = fmt.Sprintf(`SELECT %s FROM candidates
	WHERE needs_scoring = TRUE AND deleted_at IS NULL
	ORDER BY created_at ASC
	LIMIT $1`, candidateColumns)

// ListPendingCandidates returns the oldest-submitted pending
// candidates, up to limit.
func (s *StoreImpl) ListPendingCandidates(ctx context.Context, limit int) ([]*models.Candidate, error) {
	query := listPendingQuery

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing pending candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*models.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pending candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending candidates: %w", err)
	}
	return candidates, nil
}

// SaveScoringResult persists one pass's output and clears
// needs_scoring in the same statement. This is the completion marker.
func (s *StoreImpl) SaveScoringResult(ctx context.Context, id uuid.UUID, result models.ScoringResult) error {
	query := `
		UPDATE candidates
		SET fit_score = $1, resume_rating = $2, answer_quality_rating = $3,
			resume_summary = $4, experience_level = $5,
			needs_scoring = FALSE, updated_at = $6
		WHERE id = $7 AND deleted_at IS NULL`

	cmdTag, err := s.db.Exec(ctx, query,
		result.FitScore, result.ResumeRating, result.AnswerQualityRating,
		result.ResumeSummary, result.ExperienceLevel, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("saving scoring result for candidate %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found to save scoring result: %w", id, store.ErrNotFound)
	}
	return nil
}

// ClearNeedsScoring drops a candidate out of the queue without a
// result, used after a failed pass.
func (s *StoreImpl) ClearNeedsScoring(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE candidates SET needs_scoring = FALSE, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL`
	cmdTag, err := s.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("clearing needs_scoring for candidate %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found to clear needs_scoring: %w", id, store.ErrNotFound)
	}
	return nil
}

// UpdateStatus writes a new review status.
func (s *StoreImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.CandidateStatus) error {
	query := `UPDATE candidates SET status = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL`
	cmdTag, err := s.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating status for candidate %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found to update status: %w", id, store.ErrNotFound)
	}
	return nil
}
