package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirematch/backend/handlers"
	"github.com/hirematch/backend/lifecycle"
	"github.com/hirematch/backend/matching"
	"github.com/hirematch/backend/models"
	"github.com/hirematch/backend/storage"
)

// fakeStore is an in-memory implementation of handlers.Store (plus the
// UpsertApplication method the lifecycle engine needs).
type fakeStore struct {
	jobs       map[string]*models.JobRequirement
	candidates map[string]*models.CandidateProfile
	apps       map[string]*models.Application // keyed by jobID_candidateID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:       make(map[string]*models.JobRequirement),
		candidates: make(map[string]*models.CandidateProfile),
		apps:       make(map[string]*models.Application),
	}
}

func (s *fakeStore) GetJobRequirement(ctx context.Context, jobID string) (*models.JobRequirement, error) {
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return job, nil
}

func (s *fakeStore) ListJobRequirements(ctx context.Context) ([]models.JobRequirement, error) {
	jobs := make([]models.JobRequirement, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

func (s *fakeStore) GetCandidateProfile(ctx context.Context, candidateID string) (*models.CandidateProfile, error) {
	cand, ok := s.candidates[candidateID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cand, nil
}

func (s *fakeStore) ListCandidateProfiles(ctx context.Context, filter storage.CandidateFilter) ([]models.CandidateProfile, error) {
	candidates := make([]models.CandidateProfile, 0, len(s.candidates))
	for _, c := range s.candidates {
		if filter.Location != "" && c.Location != filter.Location {
			continue
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

func (s *fakeStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	for _, app := range s.apps {
		if app.ID == id {
			clone := *app
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *fakeStore) ListApplicationsByJob(ctx context.Context, jobID string, statusFilter models.ApplicationStatus) ([]models.Application, error) {
	apps := make([]models.Application, 0)
	for _, app := range s.apps {
		if app.JobID != jobID {
			continue
		}
		if statusFilter != "" && app.Status != statusFilter {
			continue
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

func (s *fakeStore) UpsertApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	clone := *app
	s.apps[app.JobID+"_"+app.CandidateID] = &clone
	return app, nil
}

func (s *fakeStore) UpsertMatch(ctx context.Context, jobID, candidateID string, result models.MatchResult) (*models.Application, error) {
	key := jobID + "_" + candidateID
	app, ok := s.apps[key]
	if !ok {
		app = &models.Application{
			ID:          "app-" + key,
			JobID:       jobID,
			CandidateID: candidateID,
			AppliedAt:   time.Now().UTC(),
			Status:      models.StatusApplied,
		}
		s.apps[key] = app
	}
	app.MatchResult = &result
	return app, nil
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	batcher := matching.NewBatcher(4, store)
	engine := lifecycle.NewEngine(store)
	matchHandler := handlers.NewMatchHandler(batcher, store, 20)
	appHandler := handlers.NewApplicationHandler(engine, store)

	router := gin.New()
	router.GET("/health", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/jobs/:jobId/match", matchHandler.MatchJob)
		api.GET("/jobs/:jobId/applications", matchHandler.ListJobApplications)
		api.POST("/candidates/:candidateId/match", matchHandler.MatchCandidate)
		api.GET("/applications/:id", appHandler.GetApplication)
		api.PUT("/applications/:id/status", appHandler.UpdateStatus)
		api.POST("/applications/:id/rematch", appHandler.Rematch)
		api.PUT("/applications/bulk-status", appHandler.BulkUpdateStatus)
	}
	return router
}

func seedMatchData(store *fakeStore) {
	store.jobs["job-1"] = &models.JobRequirement{
		ID:             "job-1",
		RequiredSkills: []string{"go", "sql"},
		ExperienceMin:  2,
		ExperienceMax:  8,
		Location:       "Berlin",
		Remote:         true,
	}
	store.candidates["cand-a"] = &models.CandidateProfile{
		ID: "cand-a", Skills: []string{"go", "sql"}, ExperienceYears: 4, Location: "Berlin",
	}
	store.candidates["cand-b"] = &models.CandidateProfile{
		ID: "cand-b", Skills: []string{"go"}, ExperienceYears: 4, Location: "Hamburg",
	}
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ─── Matching endpoints ──────────────────────────────────────────────────────

func TestMatchJobEndpoint(t *testing.T) {
	store := newFakeStore()
	seedMatchData(store)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPost, "/api/jobs/job-1/match", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp models.MatchJobResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.TotalResults != 2 {
		t.Fatalf("TotalResults = %d, want 2", resp.TotalResults)
	}
	if resp.Results[0].CandidateID != "cand-a" || resp.Results[1].CandidateID != "cand-b" {
		t.Errorf("ranking = [%s %s], want [cand-a cand-b]",
			resp.Results[0].CandidateID, resp.Results[1].CandidateID)
	}
	if !resp.Persisted {
		t.Error("Persisted = false, want true by default")
	}

	// Default persistence materializes applications with attached results.
	if len(store.apps) != 2 {
		t.Errorf("persisted %d applications, want 2", len(store.apps))
	}
	for key, app := range store.apps {
		if app.MatchResult == nil {
			t.Errorf("application %s has no match result", key)
		}
	}
}

func TestMatchJobEndpoint_NoPersist(t *testing.T) {
	store := newFakeStore()
	seedMatchData(store)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPost, "/api/jobs/job-1/match?persist=false", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(store.apps) != 0 {
		t.Errorf("persist=false must not write applications, got %d", len(store.apps))
	}
}

func TestMatchJobEndpoint_InvalidTopN(t *testing.T) {
	store := newFakeStore()
	seedMatchData(store)
	router := newTestRouter(store)

	for _, q := range []string{"topN=0", "topN=-5", "topN=abc"} {
		w := doRequest(router, http.MethodPost, "/api/jobs/job-1/match?"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, w.Code)
		}
	}
}

func TestMatchJobEndpoint_JobNotFound(t *testing.T) {
	router := newTestRouter(newFakeStore())

	w := doRequest(router, http.MethodPost, "/api/jobs/nope/match", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMatchJobEndpoint_MalformedJob(t *testing.T) {
	store := newFakeStore()
	seedMatchData(store)
	store.jobs["job-1"].ExperienceMin = 99 // inverted range
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPost, "/api/jobs/job-1/match", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed job", w.Code)
	}
}

func TestMatchCandidateEndpoint(t *testing.T) {
	store := newFakeStore()
	seedMatchData(store)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPost, "/api/candidates/cand-a/match", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp models.MatchCandidateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalResults != 1 || resp.Results[0].JobID != "job-1" {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
	if len(store.apps) != 0 {
		t.Errorf("candidate match must not persist, got %d applications", len(store.apps))
	}
}

// ─── Application endpoints ───────────────────────────────────────────────────

func seedApplication(store *fakeStore, id string, status models.ApplicationStatus) {
	store.apps["job-1_"+id] = &models.Application{
		ID:          id,
		JobID:       "job-1",
		CandidateID: id,
		AppliedAt:   time.Now().UTC(),
		Status:      status,
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApplied)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPut, "/api/applications/app-1/status",
		models.UpdateStatusRequest{Status: "reviewing", Notes: "good portfolio"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var app models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if app.Status != models.StatusReviewing {
		t.Errorf("Status = %s, want reviewing", app.Status)
	}
	if app.Notes != "good portfolio" {
		t.Errorf("Notes = %q, want the provided notes", app.Notes)
	}
}

func TestUpdateStatusEndpoint_InvalidTransition(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusRejected)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPut, "/api/applications/app-1/status",
		models.UpdateStatusRequest{Status: "hired"})
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 for terminal state", w.Code)
	}
}

func TestUpdateStatusEndpoint_BadInput(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApplied)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPut, "/api/applications/app-1/status",
		models.UpdateStatusRequest{Status: "archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: code = %d, want 400", w.Code)
	}

	w = doRequest(router, http.MethodPut, "/api/applications/missing/status",
		models.UpdateStatusRequest{Status: "reviewing"})
	if w.Code != http.StatusNotFound {
		t.Errorf("missing application: code = %d, want 404", w.Code)
	}
}

func TestBulkStatusEndpoint_MixedOutcomes(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-ok", models.StatusApplied)
	seedApplication(store, "app-terminal", models.StatusRejected)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPut, "/api/applications/bulk-status",
		models.BulkStatusRequest{ApplicationIDs: []string{"app-ok", "app-terminal"}, Status: "hired"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (partial success); body: %s", w.Code, w.Body.String())
	}

	var resp models.BulkStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Fulfilled != 1 || resp.Rejected != 1 {
		t.Fatalf("fulfilled/rejected = %d/%d, want 1/1", resp.Fulfilled, resp.Rejected)
	}
	if !resp.Items[0].Fulfilled || resp.Items[0].ApplicationID != "app-ok" {
		t.Errorf("first item = %+v, want fulfilled app-ok", resp.Items[0])
	}
	if resp.Items[1].Fulfilled || resp.Items[1].Error == "" {
		t.Errorf("second item = %+v, want rejected with error", resp.Items[1])
	}

	// The fulfilled transition is not rolled back by its failed sibling.
	persisted, _ := store.GetApplication(context.Background(), "app-ok")
	if persisted.Status != models.StatusHired {
		t.Errorf("app-ok status = %s, want hired", persisted.Status)
	}
}

func TestBulkStatusEndpoint_AllFailed(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPut, "/api/applications/bulk-status",
		models.BulkStatusRequest{ApplicationIDs: []string{"ghost-1", "ghost-2"}, Status: "hired"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when every item fails", w.Code)
	}

	var resp models.BulkStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Rejected != 2 {
		t.Errorf("Rejected = %d, want 2", resp.Rejected)
	}
}

func TestBulkStatusEndpoint_EmptyIDs(t *testing.T) {
	router := newTestRouter(newFakeStore())

	w := doRequest(router, http.MethodPut, "/api/applications/bulk-status",
		models.BulkStatusRequest{ApplicationIDs: []string{}, Status: "hired"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty id list", w.Code)
	}
}

func TestRematchEndpoint(t *testing.T) {
	store := newFakeStore()
	seedMatchData(store)
	store.apps["job-1_cand-a"] = &models.Application{
		ID:          "app-1",
		JobID:       "job-1",
		CandidateID: "cand-a",
		AppliedAt:   time.Now().UTC(),
		Status:      models.StatusApplied,
		MatchResult: &models.MatchResult{MatchScore: 1}, // stale
	}
	router := newTestRouter(store)

	w := doRequest(router, http.MethodPost, "/api/applications/app-1/rematch", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var app models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if app.MatchResult == nil || app.MatchResult.MatchScore == 1 {
		t.Errorf("match result was not recomputed: %+v", app.MatchResult)
	}
	// cand-a matches job-1 on every dimension.
	if app.MatchResult.MatchScore != 100 {
		t.Errorf("MatchScore = %d, want 100", app.MatchResult.MatchScore)
	}
}

func TestListJobApplicationsEndpoint(t *testing.T) {
	store := newFakeStore()
	seedApplication(store, "app-1", models.StatusApplied)
	seedApplication(store, "app-2", models.StatusReviewing)
	router := newTestRouter(store)

	w := doRequest(router, http.MethodGet, "/api/jobs/job-1/applications?status=reviewing", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var apps []models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &apps); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "app-2" {
		t.Errorf("apps = %+v, want only app-2", apps)
	}

	w = doRequest(router, http.MethodGet, "/api/jobs/job-1/applications?status=bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bogus filter: status = %d, want 400", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(newFakeStore())

	w := doRequest(router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", resp.Status)
	}
}
