package models

// MatchResult is the per-pair scoring breakdown surfaced to the recruiter UI.
// All scores are 0-100 integers. MatchedSkills and MissingSkills are disjoint
// and together cover the job's RequiredSkills.
type MatchResult struct {
	SkillsMatch     int `json:"skills_match" firestore:"skillsMatch"`
	ExperienceMatch int `json:"experience_match" firestore:"experienceMatch"`
	LocationMatch   int `json:"location_match" firestore:"locationMatch"`
	SalaryMatch     int `json:"salary_match" firestore:"salaryMatch"`
	MatchScore      int `json:"match_score" firestore:"matchScore"`

	MatchedSkills []string `json:"matched_skills" firestore:"matchedSkills"`
	MissingSkills []string `json:"missing_skills" firestore:"missingSkills"`
}

// RankedCandidate pairs a candidate with their match breakdown for one job.
type RankedCandidate struct {
	CandidateID string      `json:"candidate_id"`
	Match       MatchResult `json:"match"`
}

// RankedJob pairs a job with its match breakdown for one candidate.
type RankedJob struct {
	JobID string      `json:"job_id"`
	Match MatchResult `json:"match"`
}
