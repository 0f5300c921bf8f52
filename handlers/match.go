package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirematch/backend/matching"
	"github.com/hirematch/backend/models"
	"github.com/hirematch/backend/storage"
)

// Store is the persistence surface the facade reads from. It is owned by
// the storage layer; handlers perform no business logic of their own.
type Store interface {
	GetJobRequirement(ctx context.Context, jobID string) (*models.JobRequirement, error)
	ListJobRequirements(ctx context.Context) ([]models.JobRequirement, error)
	GetCandidateProfile(ctx context.Context, candidateID string) (*models.CandidateProfile, error)
	ListCandidateProfiles(ctx context.Context, filter storage.CandidateFilter) ([]models.CandidateProfile, error)
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID string, statusFilter models.ApplicationStatus) ([]models.Application, error)
	UpsertMatch(ctx context.Context, jobID, candidateID string, result models.MatchResult) (*models.Application, error)
}

// MatchHandler exposes batch matching to the recruiter UI
type MatchHandler struct {
	batcher     *matching.Batcher
	store       Store
	defaultTopN int
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(batcher *matching.Batcher, store Store, defaultTopN int) *MatchHandler {
	return &MatchHandler{
		batcher:     batcher,
		store:       store,
		defaultTopN: defaultTopN,
	}
}

// MatchJob ranks the candidate pool against one job
// @Summary Match a job against all candidates
// @Description Scores every candidate in the pool against the job and returns the top-N shortlist. By default the results are persisted onto Application records ("match job for all users"); re-running overwrites previous results instead of duplicating them.
// @Tags Matching
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param topN query int false "Shortlist size" default(20)
// @Param persist query bool false "Persist results onto applications" default(true)
// @Param location query string false "Restrict pool to an exact candidate location"
// @Success 200 {object} models.MatchJobResponse "Ranked shortlist"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/{jobId}/match [post]
func (h *MatchHandler) MatchJob(c *gin.Context) {
	jobID := c.Param("jobId")

	topN, persist, ok := h.parseBatchParams(c)
	if !ok {
		return
	}

	job, err := h.store.GetJobRequirement(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, "Failed to load job", err)
		return
	}

	filter := storage.CandidateFilter{Location: c.Query("location")}
	candidates, err := h.store.ListCandidateProfiles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "Failed to load candidate pool", err)
		return
	}

	started := time.Now()
	results, err := h.batcher.MatchJobAgainstCandidates(c.Request.Context(), *job, candidates, topN, persist)
	if err != nil {
		respondError(c, "Batch match failed", err)
		return
	}

	log.Printf("[Handler] MatchJob job=%s pool=%d topN=%d persist=%v took=%s",
		jobID, len(candidates), topN, persist, time.Since(started))

	c.JSON(http.StatusOK, models.MatchJobResponse{
		JobID:        jobID,
		Results:      results,
		TotalScored:  len(candidates),
		Persisted:    persist,
		TotalResults: len(results),
	})
}

// MatchCandidate ranks all open jobs for one candidate
// @Summary Match a candidate against all jobs
// @Description Scores every job posting against the candidate and returns the top-N ranked list. Results are not persisted.
// @Tags Matching
// @Produce json
// @Security BearerAuth
// @Param candidateId path string true "Candidate ID"
// @Param topN query int false "Result size" default(20)
// @Success 200 {object} models.MatchCandidateResponse "Ranked jobs"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidates/{candidateId}/match [post]
func (h *MatchHandler) MatchCandidate(c *gin.Context) {
	candidateID := c.Param("candidateId")

	topN, _, ok := h.parseBatchParams(c)
	if !ok {
		return
	}

	candidate, err := h.store.GetCandidateProfile(c.Request.Context(), candidateID)
	if err != nil {
		respondError(c, "Failed to load candidate", err)
		return
	}

	jobs, err := h.store.ListJobRequirements(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load jobs", err)
		return
	}

	results, err := h.batcher.MatchCandidateAgainstJobs(c.Request.Context(), *candidate, jobs, topN)
	if err != nil {
		respondError(c, "Batch match failed", err)
		return
	}

	c.JSON(http.StatusOK, models.MatchCandidateResponse{
		CandidateID:  candidateID,
		Results:      results,
		TotalScored:  len(jobs),
		TotalResults: len(results),
	})
}

// ListJobApplications lists a job's applications for the recruiter view
// @Summary List applications for a job
// @Description Returns a job's applications, optionally filtered by lifecycle status.
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param status query string false "Status filter (applied, reviewing, rejected, hired)"
// @Success 200 {array} models.Application "Applications"
// @Failure 400 {object} models.ErrorResponse "Invalid status filter"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/{jobId}/applications [get]
func (h *MatchHandler) ListJobApplications(c *gin.Context) {
	jobID := c.Param("jobId")

	var statusFilter models.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid status filter",
				Code:    http.StatusBadRequest,
				Details: err.Error(),
			})
			return
		}
		statusFilter = parsed
	}

	apps, err := h.store.ListApplicationsByJob(c.Request.Context(), jobID, statusFilter)
	if err != nil {
		respondError(c, "Failed to list applications", err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// parseBatchParams reads topN and persist from the query string. It writes
// the error response itself and reports ok=false on bad input.
func (h *MatchHandler) parseBatchParams(c *gin.Context) (topN int, persist bool, ok bool) {
	topN = h.defaultTopN
	if raw := c.Query("topN"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid topN parameter",
				Code:    http.StatusBadRequest,
				Details: "topN must be a positive integer",
			})
			return 0, false, false
		}
		topN = parsed
	}

	persist = true
	if raw := c.Query("persist"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid persist parameter",
				Code:    http.StatusBadRequest,
				Details: "persist must be a boolean",
			})
			return 0, false, false
		}
		persist = parsed
	}

	return topN, persist, true
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
