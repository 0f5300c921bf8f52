// Package matching computes candidate-job compatibility scores and ranks
// candidate pools. Scoring is pure and deterministic: the same
// (candidate, job) pair always produces the same breakdown.
package matching

import (
	"math"
	"strings"

	"github.com/hirematch/backend/models"
)

// Composite weights applied to the four sub-scores. They sum to 1.
const (
	weightSkills     = 0.40
	weightExperience = 0.25
	weightLocation   = 0.15
	weightSalary     = 0.20
)

// experienceGraceYears is how far below experienceMin a candidate can be
// before the experience sub-score bottoms out at 0.
const experienceGraceYears = 5.0

// salaryStretchFactor: the salary sub-score reaches 0 when the expected
// salary hits salaryRange.max * (1 + salaryStretchFactor).
const salaryStretchFactor = 0.5

// Score computes the match breakdown for one candidate against one job.
// It performs no I/O. Malformed snapshots fail with a
// *models.ValidationError naming the offending field.
func Score(candidate models.CandidateProfile, job models.JobRequirement) (models.MatchResult, error) {
	if err := job.Validate(); err != nil {
		return models.MatchResult{}, err
	}
	if err := candidate.Validate(); err != nil {
		return models.MatchResult{}, err
	}

	skillsScore, matched, missing := scoreSkills(candidate.Skills, job.RequiredSkills)
	expScore := scoreExperience(candidate.ExperienceYears, job.ExperienceMin, job.ExperienceMax)
	locScore := scoreLocation(candidate, job)
	salScore := scoreSalary(candidate.ExpectedSalary, job.SalaryRange)

	composite := roundScore(
		weightSkills*float64(skillsScore) +
			weightExperience*float64(expScore) +
			weightLocation*float64(locScore) +
			weightSalary*float64(salScore))

	return models.MatchResult{
		SkillsMatch:     skillsScore,
		ExperienceMatch: expScore,
		LocationMatch:   locScore,
		SalaryMatch:     salScore,
		MatchScore:      composite,
		MatchedSkills:   matched,
		MissingSkills:   missing,
	}, nil
}

// scoreSkills splits requiredSkills into matched and missing (comparison is
// case-insensitive, whitespace-trimmed) and scores the matched fraction.
// An empty requirement set is trivially satisfied.
func scoreSkills(candidateSkills, requiredSkills []string) (score int, matched, missing []string) {
	matched = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0)

	if len(requiredSkills) == 0 {
		return 100, matched, missing
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[canonicalize(s)] = true
	}

	for _, s := range requiredSkills {
		if have[canonicalize(s)] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	return roundScore(100 * float64(len(matched)) / float64(len(requiredSkills))), matched, missing
}

// scoreExperience gives 100 inside [min, max], degrades linearly to 0 at
// min-5 years below the range, and does not penalize overqualified
// candidates above it.
func scoreExperience(years, expMin, expMax int) int {
	if years > expMax {
		return 100
	}
	if years >= expMin {
		return 100
	}
	frac := 1 - float64(expMin-years)/experienceGraceYears
	return roundScore(100 * math.Max(0, frac))
}

// scoreLocation: 100 when either side is remote-friendly or the locations
// match exactly; 50 when one canonical location contains the other (shared
// city/state token); 0 otherwise.
func scoreLocation(candidate models.CandidateProfile, job models.JobRequirement) int {
	if job.Remote || candidate.RemoteOK {
		return 100
	}

	cl := canonicalize(candidate.Location)
	jl := canonicalize(job.Location)
	if cl == jl {
		return 100
	}
	// Substring containment is only meaningful on non-empty strings.
	if cl != "" && jl != "" && (strings.Contains(cl, jl) || strings.Contains(jl, cl)) {
		return 50
	}
	return 0
}

// scoreSalary gives 100 when either side has no salary data or the
// expectation fits under the band's max (cheaper candidates are not
// penalized), then degrades linearly to 0 at 1.5x the band's max.
func scoreSalary(expected *float64, band *models.SalaryRange) int {
	if band == nil || expected == nil {
		return 100
	}
	if *expected <= band.Max {
		return 100
	}
	if band.Max <= 0 {
		return 0
	}
	frac := 1 - (*expected-band.Max)/(salaryStretchFactor*band.Max)
	return roundScore(100 * math.Max(0, frac))
}

func canonicalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func roundScore(f float64) int {
	return int(math.Round(f))
}
