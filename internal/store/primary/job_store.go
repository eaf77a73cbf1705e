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

// CreateJob inserts a job posting with its question set.
func (s *StoreImpl) CreateJob(ctx context.Context, job *models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	questions, err := json.Marshal(job.Questions)
	if err != nil {
		return fmt.Errorf("encoding job questions: %w", err)
	}

	query := `
		INSERT INTO jobs (id, title, description, resume_weight, answers_weight,
			scoring_instructions, scheduling_link, notification_email, questions,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = s.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.ResumeWeight, job.AnswersWeight,
		job.ScoringInstructions, job.SchedulingLink, job.NotificationEmail,
		questions, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}
	return nil
}

// GetJob loads a job posting by id.
func (s *StoreImpl) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `
		SELECT id, title, description, resume_weight, answers_weight,
			scoring_instructions, scheduling_link, notification_email, questions,
			created_at, updated_at
		FROM jobs WHERE id = $1`

	var (
		job       models.Job
		questions []byte
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.ResumeWeight,
		&job.AnswersWeight,
		&job.ScoringInstructions,
		&job.SchedulingLink,
		&job.NotificationEmail,
		&questions,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("querying job %s: %w", id, err)
	}

	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &job.Questions); err != nil {
			return nil, fmt.Errorf("decoding job questions: %w", err)
		}
	}
	return &job, nil
}
