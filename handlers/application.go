package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirematch/backend/auth"
	"github.com/hirematch/backend/lifecycle"
	"github.com/hirematch/backend/matching"
	"github.com/hirematch/backend/models"
)

// ApplicationHandler exposes application lifecycle operations
type ApplicationHandler struct {
	engine *lifecycle.Engine
	store  Store
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(engine *lifecycle.Engine, store Store) *ApplicationHandler {
	return &ApplicationHandler{
		engine: engine,
		store:  store,
	}
}

// GetApplication retrieves one application
// @Summary Get an application
// @Description Returns a single application with its match breakdown and status history.
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} models.Application "Application"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.store.GetApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load application", err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateStatus transitions one application to a new lifecycle status
// @Summary Update application status
// @Description Applies a lifecycle transition. Re-applying the current status is a no-op success; transitions out of rejected or hired are refused.
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.UpdateStatusRequest true "Requested status and optional notes"
// @Success 200 {object} models.Application "Updated application"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Failure 409 {object} models.ErrorResponse "Invalid transition"
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID := c.Param("id")

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	requested, err := models.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid status",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	app, err := h.engine.Transition(c.Request.Context(), appID, requested, req.Notes)
	if err != nil {
		respondError(c, "Status update failed", err)
		return
	}

	if claims := auth.GetAuthClaims(c); claims != nil {
		log.Printf("[Handler] application %s moved to %s by %s", appID, requested, claims.Email)
	}

	c.JSON(http.StatusOK, app)
}

// BulkUpdateStatus transitions many applications independently
// @Summary Bulk update application statuses
// @Description Applies the requested status to each application independently (best-effort). The response tags each item as fulfilled or rejected; one invalid application never aborts the batch.
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BulkStatusRequest true "Application IDs and requested status"
// @Success 200 {object} models.BulkStatusResponse "Per-item outcomes"
// @Failure 400 {object} models.ErrorResponse "Malformed input or all items failed"
// @Router /applications/bulk-status [put]
func (h *ApplicationHandler) BulkUpdateStatus(c *gin.Context) {
	var req models.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if len(req.ApplicationIDs) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: "applicationIds must not be empty",
		})
		return
	}

	requested, err := models.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid status",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	outcomes := h.engine.TransitionMany(c.Request.Context(), req.ApplicationIDs, requested)

	resp := models.BulkStatusResponse{Items: make([]models.BulkStatusItem, 0, len(outcomes))}
	for _, o := range outcomes {
		item := models.BulkStatusItem{
			ApplicationID: o.ApplicationID,
			Fulfilled:     o.Fulfilled(),
			Application:   o.Application,
		}
		if o.Err != nil {
			item.Error = o.Err.Error()
			resp.Rejected++
		} else {
			resp.Fulfilled++
		}
		resp.Items = append(resp.Items, item)
	}

	// The overall call fails only when every item failed.
	code := http.StatusOK
	if resp.Fulfilled == 0 {
		code = http.StatusBadRequest
	}
	c.JSON(code, resp)
}

// Rematch recomputes the match result on one application
// @Summary Re-match an application
// @Description Re-runs scoring for the application's (candidate, job) pair and overwrites the stored match result.
// @Tags Matching
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} models.Application "Application with fresh match result"
// @Failure 400 {object} models.ErrorResponse "Malformed snapshot"
// @Failure 404 {object} models.ErrorResponse "Application, job or candidate not found"
// @Router /applications/{id}/rematch [post]
func (h *ApplicationHandler) Rematch(c *gin.Context) {
	ctx := c.Request.Context()

	app, err := h.store.GetApplication(ctx, c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load application", err)
		return
	}

	job, err := h.store.GetJobRequirement(ctx, app.JobID)
	if err != nil {
		respondError(c, "Failed to load job", err)
		return
	}

	candidate, err := h.store.GetCandidateProfile(ctx, app.CandidateID)
	if err != nil {
		respondError(c, "Failed to load candidate", err)
		return
	}

	result, err := matching.Score(*candidate, *job)
	if err != nil {
		respondError(c, "Scoring failed", err)
		return
	}

	updated, err := h.store.UpsertMatch(ctx, job.ID, candidate.ID, result)
	if err != nil {
		respondError(c, "Failed to persist match result", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
