package models

import (
	"fmt"
	"time"
)

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusRejected  ApplicationStatus = "rejected"
	StatusHired     ApplicationStatus = "hired"
)

// ParseStatus converts a raw string to an ApplicationStatus, returning an
// error for unknown values.
func ParseStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusApplied, StatusReviewing, StatusRejected, StatusHired:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// StatusChange is one entry in an application's transition history.
type StatusChange struct {
	From ApplicationStatus `json:"from" firestore:"from"`
	To   ApplicationStatus `json:"to" firestore:"to"`
	At   time.Time         `json:"at" firestore:"at"`
}

// Application ties a candidate to a job posting. It is created when a
// candidate applies or when a batch match materializes a shortlist entry,
// and is never hard-deleted by this service.
type Application struct {
	ID          string            `json:"id" firestore:"id"`
	JobID       string            `json:"job_id" firestore:"jobId"`
	CandidateID string            `json:"candidate_id" firestore:"candidateId"`
	AppliedAt   time.Time         `json:"applied_at" firestore:"appliedAt"`
	Status      ApplicationStatus `json:"status" firestore:"status"`

	// MatchResult is attached at application time or by a bulk match; it is
	// overwritten, never duplicated, on re-match.
	MatchResult *MatchResult `json:"match_result,omitempty" firestore:"matchResult"`

	// Notes is recruiter-authored free text, never interpreted here.
	Notes string `json:"notes,omitempty" firestore:"notes"`

	StatusHistory []StatusChange `json:"status_history,omitempty" firestore:"statusHistory"`
	UpdatedAt     time.Time      `json:"updated_at" firestore:"updatedAt"`
}
