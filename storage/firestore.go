package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hirematch/backend/config"
	"github.com/hirematch/backend/models"
)

const (
	candidatesCollection   = "candidates"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
)

// ErrNotFound is returned when a referenced job, candidate or application
// does not exist.
var ErrNotFound = errors.New("not found")

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// ─── Jobs ────────────────────────────────────────────────────────────────────

// GetJobRequirement retrieves the matching snapshot of one job posting.
func (f *FirestoreClient) GetJobRequirement(ctx context.Context, jobID string) (*models.JobRequirement, error) {
	doc, err := f.client.Collection(jobsCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.JobRequirement
	if err := doc.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job data: %w", err)
	}

	job.ID = doc.Ref.ID
	return &job, nil
}

// ListJobRequirements retrieves the matching snapshots of all job postings.
func (f *FirestoreClient) ListJobRequirements(ctx context.Context) ([]models.JobRequirement, error) {
	iter := f.client.Collection(jobsCollection).Documents(ctx)
	defer iter.Stop()

	jobs := make([]models.JobRequirement, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}

		var job models.JobRequirement
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// ─── Candidates ──────────────────────────────────────────────────────────────

// CandidateFilter narrows the candidate pool fetched for a batch match.
type CandidateFilter struct {
	Location string // exact location match; empty means any
	Limit    int    // 0 means no limit
}

// GetCandidateProfile retrieves the matching snapshot of one candidate.
func (f *FirestoreClient) GetCandidateProfile(ctx context.Context, candidateID string) (*models.CandidateProfile, error) {
	doc, err := f.client.Collection(candidatesCollection).Doc(candidateID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	var candidate models.CandidateProfile
	if err := doc.DataTo(&candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate data: %w", err)
	}

	candidate.ID = doc.Ref.ID
	candidate.Normalize()
	return &candidate, nil
}

// ListCandidateProfiles retrieves candidate snapshots matching the filter.
func (f *FirestoreClient) ListCandidateProfiles(ctx context.Context, filter CandidateFilter) ([]models.CandidateProfile, error) {
	query := f.client.Collection(candidatesCollection).Query
	if filter.Location != "" {
		query = query.Where("location", "==", filter.Location)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	candidates := make([]models.CandidateProfile, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list candidates: %w", err)
		}

		var candidate models.CandidateProfile
		if err := doc.DataTo(&candidate); err != nil {
			return nil, fmt.Errorf("failed to parse candidate data: %w", err)
		}
		candidate.ID = doc.Ref.ID
		candidate.Normalize()
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// ─── Applications ────────────────────────────────────────────────────────────

// applicationDocID keys application documents by (job, candidate) so that
// re-running a batch match overwrites instead of duplicating.
func applicationDocID(jobID, candidateID string) string {
	return jobID + "_" + candidateID
}

// GetApplication retrieves an application by its ID.
func (f *FirestoreClient) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	iter := f.client.Collection(applicationsCollection).Where("id", "==", id).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}

	var app models.Application
	if err := doc.DataTo(&app); err != nil {
		return nil, fmt.Errorf("failed to parse application data: %w", err)
	}

	return &app, nil
}

// ListApplicationsByJob retrieves a job's applications, optionally filtered
// by status.
func (f *FirestoreClient) ListApplicationsByJob(ctx context.Context, jobID string, statusFilter models.ApplicationStatus) ([]models.Application, error) {
	query := f.client.Collection(applicationsCollection).Where("jobId", "==", jobID)
	if statusFilter != "" {
		query = query.Where("status", "==", string(statusFilter))
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	apps := make([]models.Application, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list applications: %w", err)
		}

		var app models.Application
		if err := doc.DataTo(&app); err != nil {
			return nil, fmt.Errorf("failed to parse application data: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, nil
}

// UpsertApplication writes an application back to its (job, candidate) slot.
func (f *FirestoreClient) UpsertApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.JobID == "" || app.CandidateID == "" {
		return nil, fmt.Errorf("application requires jobId and candidateId")
	}

	docRef := f.client.Collection(applicationsCollection).Doc(applicationDocID(app.JobID, app.CandidateID))
	if _, err := docRef.Set(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to upsert application: %w", err)
	}

	return app, nil
}

// UpsertMatch attaches a match result to the application for
// (jobID, candidateID), creating an applied-status stub when the candidate
// has not applied yet. Re-running with the same pair overwrites the previous
// result rather than duplicating the application.
func (f *FirestoreClient) UpsertMatch(ctx context.Context, jobID, candidateID string, result models.MatchResult) (*models.Application, error) {
	docRef := f.client.Collection(applicationsCollection).Doc(applicationDocID(jobID, candidateID))
	now := time.Now().UTC()

	var app models.Application
	doc, err := docRef.Get(ctx)
	switch {
	case err == nil:
		if err := doc.DataTo(&app); err != nil {
			return nil, fmt.Errorf("failed to parse application data: %w", err)
		}
	case status.Code(err) == codes.NotFound:
		app = models.Application{
			ID:          uuid.NewString(),
			JobID:       jobID,
			CandidateID: candidateID,
			AppliedAt:   now,
			Status:      models.StatusApplied,
		}
	default:
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	app.MatchResult = &result
	app.UpdatedAt = now

	if _, err := docRef.Set(ctx, &app); err != nil {
		return nil, fmt.Errorf("failed to upsert match result: %w", err)
	}

	return &app, nil
}
