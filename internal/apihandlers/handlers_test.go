package apihandlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/apihandlers"
	"hireflow/internal/app"
	"hireflow/internal/models"
	"hireflow/internal/notify"
	"hireflow/internal/store"
	"hireflow/internal/worker"
)

// --- Mocks ---

type memCandidateStore struct {
	candidates map[uuid.UUID]*models.Candidate
}

func (m *memCandidateStore) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	m.candidates[c.ID] = c
	return nil
}

func (m *memCandidateStore) GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	c, ok := m.candidates[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (m *memCandidateStore) GetPendingCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	c, ok := m.candidates[id]
	if !ok || !c.NeedsScoring {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (m *memCandidateStore) ListPendingCandidates(ctx context.Context, limit int) ([]*models.Candidate, error) {
	return nil, nil
}

func (m *memCandidateStore) SaveScoringResult(ctx context.Context, id uuid.UUID, result models.ScoringResult) error {
	c, ok := m.candidates[id]
	if !ok {
		return store.ErrNotFound
	}
	c.NeedsScoring = false
	c.FitScore = &result.FitScore
	return nil
}

func (m *memCandidateStore) ClearNeedsScoring(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (m *memCandidateStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.CandidateStatus) error {
	c, ok := m.candidates[id]
	if !ok {
		return store.ErrNotFound
	}
	c.Status = status
	return nil
}

func (m *memCandidateStore) Ping(ctx context.Context) error { return nil }

type memJobStore struct {
	jobs map[uuid.UUID]*models.Job
}

func (m *memJobStore) CreateJob(ctx context.Context, j *models.Job) error {
	m.jobs[j.ID] = j
	return nil
}

func (m *memJobStore) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return j, nil
}

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, reference string) string { return "resume text" }

type stubScorer struct{}

func (stubScorer) Score(ctx context.Context, candidate *models.Candidate, job *models.Job, resumeText string) models.ScoringResult {
	return models.ScoringResult{FitScore: 74, ResumeRating: 4, AnswerQualityRating: 3, ResumeSummary: "ok", ExperienceLevel: "Senior"}
}

type stubNotifier struct {
	sent []notify.Kind
	err  error
}

func (s *stubNotifier) Send(ctx context.Context, kind notify.Kind, candidate *models.Candidate, job *models.Job) error {
	s.sent = append(s.sent, kind)
	return s.err
}

// --- Router fixture ---

type apiFixture struct {
	router     *gin.Engine
	candidates *memCandidateStore
	jobs       *memJobStore
	notifier   *stubNotifier
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		candidates: &memCandidateStore{candidates: make(map[uuid.UUID]*models.Candidate)},
		jobs:       &memJobStore{jobs: make(map[uuid.UUID]*models.Job)},
		notifier:   &stubNotifier{},
	}
	processor := worker.NewProcessor(worker.Deps{
		Candidates: f.candidates,
		Jobs:       f.jobs,
		Extractor:  stubExtractor{},
		Scorer:     stubScorer{},
		Notifier:   f.notifier,
	})
	appInstance := &app.App{
		CandidateStore: f.candidates,
		JobStore:       f.jobs,
		Processor:      processor,
	}
	handler := apihandlers.NewAPIHandler(appInstance)

	f.router = gin.New()
	internal := f.router.Group("/internal")
	internal.Use(apihandlers.TriggerAuth("s3cret"))
	{
		internal.POST("/applications", handler.SubmitApplicationHandler)
		internal.POST("/candidates/:id/process", handler.ProcessCandidateHandler)
		internal.POST("/candidates/:id/notify", handler.NotifyCandidateHandler)
	}
	f.router.GET("/health", handler.HealthHandler)
	return f
}

func (f *apiFixture) addJob() *models.Job {
	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer", ResumeWeight: 70, AnswersWeight: 30,
		Questions: []models.ApplicationQuestion{{
			ID: "q1", Question: "Authorized?", Type: models.QuestionYesNo,
			IsEliminatory: true,
			Criteria:      &models.EliminatoryCriteria{ExpectedAnswer: "Yes"},
		}}}
	f.jobs.jobs[job.ID] = job
	return job
}

func (f *apiFixture) request(t *testing.T, method, path string, body interface{}, secret string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if secret != "" {
		req.Header.Set("X-Trigger-Secret", secret)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestTriggerAuthRejectsBadSecret(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()
	body := map[string]interface{}{"job_id": job.ID, "name": "Ada", "email": "ada@example.com"}

	w := f.request(t, http.MethodPost, "/internal/applications", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.request(t, http.MethodPost, "/internal/applications", body, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitApplication(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()

	body := map[string]interface{}{
		"job_id": job.ID, "name": "Ada", "email": "ada@example.com",
		"answers": []map[string]string{{"question_id": "q1", "answer": "Yes"}},
	}
	w := f.request(t, http.MethodPost, "/internal/applications", body, "s3cret")
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, f.candidates.candidates, 1)
	for _, c := range f.candidates.candidates {
		assert.Equal(t, models.StatusNew, c.Status)
		assert.True(t, c.NeedsScoring)
	}
}

func TestSubmitApplicationEliminated(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()

	body := map[string]interface{}{
		"job_id": job.ID, "name": "Ada", "email": "ada@example.com",
		"answers": []map[string]string{{"question_id": "q1", "answer": "No"}},
	}
	w := f.request(t, http.MethodPost, "/internal/applications", body, "s3cret")
	require.Equal(t, http.StatusCreated, w.Code)

	for _, c := range f.candidates.candidates {
		assert.Equal(t, models.StatusRejected, c.Status)
		assert.False(t, c.NeedsScoring)
		assert.Len(t, c.DisqualificationFlags, 1)
	}
}

func TestSubmitApplicationUnknownJob(t *testing.T) {
	f := newAPIFixture(t)
	body := map[string]interface{}{"job_id": uuid.New(), "name": "Ada", "email": "a@example.com"}
	w := f.request(t, http.MethodPost, "/internal/applications", body, "s3cret")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProcessCandidate(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()
	c := &models.Candidate{ID: uuid.New(), JobID: job.ID, Name: "Ada", Email: "a@example.com",
		Status: models.StatusNew, NeedsScoring: true}
	f.candidates.candidates[c.ID] = c

	w := f.request(t, http.MethodPost, fmt.Sprintf("/internal/candidates/%s/process", c.ID), nil, "s3cret")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.NeedsScoring)
	require.NotNil(t, c.FitScore)
	assert.Equal(t, 74, *c.FitScore)
	assert.Equal(t, []notify.Kind{notify.KindApplicationReceived}, f.notifier.sent)
}

func TestProcessCandidateSkipEmails(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()
	c := &models.Candidate{ID: uuid.New(), JobID: job.ID, NeedsScoring: true}
	f.candidates.candidates[c.ID] = c

	w := f.request(t, http.MethodPost, fmt.Sprintf("/internal/candidates/%s/process?skipEmails=true", c.ID), nil, "s3cret")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.notifier.sent)
}

func TestProcessCandidateNotPending(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()
	c := &models.Candidate{ID: uuid.New(), JobID: job.ID, NeedsScoring: false}
	f.candidates.candidates[c.ID] = c

	w := f.request(t, http.MethodPost, fmt.Sprintf("/internal/candidates/%s/process", c.ID), nil, "s3cret")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProcessCandidateBadID(t *testing.T) {
	f := newAPIFixture(t)
	w := f.request(t, http.MethodPost, "/internal/candidates/not-a-uuid/process", nil, "s3cret")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifyCandidate(t *testing.T) {
	f := newAPIFixture(t)
	job := f.addJob()
	c := &models.Candidate{ID: uuid.New(), JobID: job.ID, Name: "Ada", Email: "a@example.com"}
	f.candidates.candidates[c.ID] = c

	w := f.request(t, http.MethodPost, fmt.Sprintf("/internal/candidates/%s/notify", c.ID),
		map[string]string{"kind": "schedule_interview"}, "s3cret")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []notify.Kind{notify.KindScheduleInterview}, f.notifier.sent)

	w = f.request(t, http.MethodPost, fmt.Sprintf("/internal/candidates/%s/notify", c.ID),
		map[string]string{"kind": "application_received"}, "s3cret")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifyCandidateNotFound(t *testing.T) {
	f := newAPIFixture(t)
	w := f.request(t, http.MethodPost, fmt.Sprintf("/internal/candidates/%s/notify", uuid.New()),
		map[string]string{"kind": "rejection"}, "s3cret")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	w := f.request(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
