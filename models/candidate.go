package models

import "strings"

// CandidateProfile is the read-only subset of a user profile that matching
// looks at. It is snapshotted per request from the profile CRUD layer and
// never mutated here.
type CandidateProfile struct {
	ID              string   `json:"id" firestore:"id"`
	Skills          []string `json:"skills" firestore:"skills"`
	ExperienceYears int      `json:"experience_years" firestore:"experienceYears"`
	Location        string   `json:"location" firestore:"location"`
	RemoteOK        bool     `json:"remote_ok" firestore:"remoteOk"`
	// ExpectedSalary is nil when the candidate did not state one.
	ExpectedSalary *float64 `json:"expected_salary,omitempty" firestore:"expectedSalary"`
}

// DeriveRemoteOK reports whether a preferred-location string marks the
// candidate as open to remote work.
func DeriveRemoteOK(preferredLocation string) bool {
	return strings.Contains(strings.ToLower(preferredLocation), "remote")
}

// Normalize fills in fields derivable from others. A preferred location that
// mentions remote work implies RemoteOK even when the stored flag is false.
func (c *CandidateProfile) Normalize() {
	if !c.RemoteOK {
		c.RemoteOK = DeriveRemoteOK(c.Location)
	}
}

// Validate checks the snapshot for malformed values. It returns a
// *ValidationError naming the offending field, or nil.
func (c *CandidateProfile) Validate() error {
	if c.ExperienceYears < 0 {
		return &ValidationError{Field: "experienceYears", Message: "experienceYears must be non-negative"}
	}
	if c.ExpectedSalary != nil && *c.ExpectedSalary < 0 {
		return &ValidationError{Field: "expectedSalary", Message: "expectedSalary must be non-negative"}
	}
	return nil
}

// ValidationError represents a malformed candidate or job snapshot.
// Callers must fix the input; these are never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
