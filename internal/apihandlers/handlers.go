package apihandlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hireflow/internal/app"
	"hireflow/internal/intake"
	"hireflow/internal/models"
	"hireflow/internal/notify"
	"hireflow/internal/store"
	"hireflow/internal/worker"
)

// processTimeout bounds a synchronous processing call. Resume fetch,
// one provider call and a handful of writes fit comfortably inside it.
const processTimeout = 12 * time.Second

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

// SubmitApplicationRequest is the payload for a new application.
type SubmitApplicationRequest struct {
	JobID     uuid.UUID                  `json:"job_id" binding:"required"`
	Name      string                     `json:"name" binding:"required"`
	Email     string                     `json:"email" binding:"required"`
	ResumeURL *string                    `json:"resume_url"`
	Answers   []models.ApplicationAnswer `json:"answers"`
}

// SubmitApplicationHandler screens a fresh application and stores the
// resulting candidate. Eliminated candidates are stored as rejected and
// never enter the scoring queue.
func (h *APIHandler) SubmitApplicationHandler(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	job, err := h.App.JobStore.GetJob(c.Request.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("job %s not found", req.JobID))
			return
		}
		Internal(c, fmt.Sprintf("loading job: %v", err))
		return
	}

	candidate := &models.Candidate{
		JobID:     job.ID,
		Name:      req.Name,
		Email:     req.Email,
		ResumeURL: req.ResumeURL,
		Answers:   req.Answers,
	}
	intake.Apply(candidate, intake.Screen(job, req.Answers))

	if err := h.App.CandidateStore.CreateCandidate(c.Request.Context(), candidate); err != nil {
		Internal(c, fmt.Sprintf("storing candidate: %v", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": candidate})
}

// ProcessCandidateHandler runs one synchronous scoring pass for a
// single candidate.
func (h *APIHandler) ProcessCandidateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid candidate id: "+err.Error())
		return
	}

	skipEmails := false
	if raw := c.Query("skipEmails"); raw != "" {
		skipEmails, err = strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, "Invalid skipEmails value: "+err.Error())
			return
		}
	}

	// The pass must run to completion even if the caller hangs up;
	// a half-processed candidate would be stuck out of the queue.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), processTimeout)
	defer cancel()

	if err := h.App.Processor.Process(ctx, id, worker.ProcessOptions{SkipEmails: skipEmails}); err != nil {
		if errors.Is(err, worker.ErrNotPending) {
			Conflict(c, fmt.Sprintf("candidate %s is not pending scoring", id))
			return
		}
		Internal(c, fmt.Sprintf("processing candidate: %v", err))
		return
	}

	candidate, err := h.App.CandidateStore.GetCandidate(ctx, id)
	if err != nil {
		Internal(c, fmt.Sprintf("loading processed candidate: %v", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": candidate})
}

// NotifyRequest selects which one-shot status email to send.
type NotifyRequest struct {
	Kind notify.Kind `json:"kind" binding:"required"`
}

// NotifyCandidateHandler fires the email matching a human review
// transition.
func (h *APIHandler) NotifyCandidateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid candidate id: "+err.Error())
		return
	}

	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.App.Processor.NotifyStatusChange(c.Request.Context(), id, req.Kind); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("candidate %s not found", id))
			return
		}
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// HealthHandler reports liveness plus database reachability.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	if err := h.App.CandidateStore.Ping(c.Request.Context()); err != nil {
		JSONError(c, http.StatusServiceUnavailable, "unavailable", "database unreachable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
