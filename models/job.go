package models

import (
	"fmt"
	"strings"
)

// SalaryRange is the advertised salary band on a job posting.
type SalaryRange struct {
	Min float64 `json:"min" firestore:"min"`
	Max float64 `json:"max" firestore:"max"`
}

// JobRequirement is the read-only subset of a job posting that matching
// looks at, snapshotted at match time. The owning posting is mutated only by
// the job CRUD layer.
type JobRequirement struct {
	ID string `json:"id" firestore:"id"`
	// RequiredSkills is an ordered set: order carries no priority, but
	// duplicates are invalid.
	RequiredSkills []string `json:"required_skills" firestore:"requiredSkills"`
	ExperienceMin  int      `json:"experience_min" firestore:"experienceMin"`
	ExperienceMax  int      `json:"experience_max" firestore:"experienceMax"`
	Location       string   `json:"location" firestore:"location"`
	Remote         bool     `json:"remote" firestore:"remote"`
	// SalaryRange is nil when the posting does not advertise one.
	SalaryRange *SalaryRange `json:"salary_range,omitempty" firestore:"salaryRange"`
}

// Validate checks the snapshot for malformed values. It returns a
// *ValidationError naming the offending field, or nil.
func (j *JobRequirement) Validate() error {
	seen := make(map[string]bool, len(j.RequiredSkills))
	for _, s := range j.RequiredSkills {
		canon := strings.ToLower(strings.TrimSpace(s))
		if seen[canon] {
			return &ValidationError{
				Field:   "requiredSkills",
				Message: fmt.Sprintf("requiredSkills contains duplicate %q", s),
			}
		}
		seen[canon] = true
	}

	if j.ExperienceMin < 0 {
		return &ValidationError{Field: "experienceMin", Message: "experienceMin must be non-negative"}
	}
	if j.ExperienceMax < 0 {
		return &ValidationError{Field: "experienceMax", Message: "experienceMax must be non-negative"}
	}
	if j.ExperienceMin > j.ExperienceMax {
		return &ValidationError{Field: "experienceMin", Message: "experienceMin must not exceed experienceMax"}
	}

	if j.SalaryRange != nil {
		if j.SalaryRange.Min < 0 {
			return &ValidationError{Field: "salaryRange.min", Message: "salaryRange.min must be non-negative"}
		}
		if j.SalaryRange.Max < 0 {
			return &ValidationError{Field: "salaryRange.max", Message: "salaryRange.max must be non-negative"}
		}
		if j.SalaryRange.Min > j.SalaryRange.Max {
			return &ValidationError{Field: "salaryRange.min", Message: "salaryRange.min must not exceed salaryRange.max"}
		}
	}

	return nil
}
