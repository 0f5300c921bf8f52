package models

// MatchJobResponse represents the API response for a job batch match
// @Description Ranked shortlist of candidates for one job
type MatchJobResponse struct {
	JobID        string            `json:"job_id"`
	Results      []RankedCandidate `json:"results"`
	TotalScored  int               `json:"total_scored" example:"134"`
	Persisted    bool              `json:"persisted"`
	TotalResults int               `json:"total_results" example:"20"`
}

// MatchCandidateResponse represents the API response for a candidate batch match
// @Description Ranked list of open jobs for one candidate
type MatchCandidateResponse struct {
	CandidateID  string      `json:"candidate_id"`
	Results      []RankedJob `json:"results"`
	TotalScored  int         `json:"total_scored" example:"45"`
	TotalResults int         `json:"total_results" example:"20"`
}

// UpdateStatusRequest represents a single application status change
// @Description Requested lifecycle transition with optional recruiter notes
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"reviewing"`
	Notes  string `json:"notes,omitempty" example:"Strong take-home, move forward"`
}

// BulkStatusRequest represents a bulk application status change
// @Description Best-effort transition applied independently to each application
type BulkStatusRequest struct {
	ApplicationIDs []string `json:"applicationIds" binding:"required"`
	Status         string   `json:"status" binding:"required" example:"rejected"`
}

// BulkStatusItem is the per-application outcome of a bulk status change
type BulkStatusItem struct {
	ApplicationID string       `json:"application_id"`
	Fulfilled     bool         `json:"fulfilled"`
	Application   *Application `json:"application,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// BulkStatusResponse represents the API response for a bulk status change
// @Description Per-item outcomes; one invalid application never aborts siblings
type BulkStatusResponse struct {
	Items     []BulkStatusItem `json:"items"`
	Fulfilled int              `json:"fulfilled" example:"9"`
	Rejected  int              `json:"rejected" example:"1"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"experienceMin must not exceed experienceMax"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
