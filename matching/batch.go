package matching

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/hirematch/backend/models"
)

// InvalidArgumentError represents bad batch parameters (e.g. topN <= 0).
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return e.Msg }

// ApplicationWriter persists one shortlist entry. Implementations must be
// idempotent per (jobID, candidateID): re-running a batch match overwrites
// the previous MatchResult instead of duplicating the Application.
type ApplicationWriter interface {
	UpsertMatch(ctx context.Context, jobID, candidateID string, result models.MatchResult) (*models.Application, error)
}

// Batcher ranks candidate pools against jobs (and vice versa). Scoring is
// fanned out over a bounded worker pool: fetching candidate snapshots
// upstream may involve blocking I/O, so the concurrency limit keeps the
// pressure on that source in check.
type Batcher struct {
	workers int
	writer  ApplicationWriter
}

// NewBatcher returns a Batcher scoring with the given number of parallel
// workers (minimum 1). writer may be nil for ranking-only use.
func NewBatcher(workers int, writer ApplicationWriter) *Batcher {
	if workers < 1 {
		workers = 1
	}
	return &Batcher{workers: workers, writer: writer}
}

// MatchJobAgainstCandidates scores every candidate in the pool against the
// job and returns the top-N ranked descending by match score, ties broken by
// skills match then candidate ID. An empty pool yields an empty list. When
// persist is true the top-N results are written through the
// ApplicationWriter ("match job for all users"); re-running overwrites
// previous results.
func (b *Batcher) MatchJobAgainstCandidates(
	ctx context.Context,
	job models.JobRequirement,
	candidates []models.CandidateProfile,
	topN int,
	persist bool,
) ([]models.RankedCandidate, error) {
	if topN <= 0 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("topN must be positive, got %d", topN)}
	}
	// A malformed job fails the whole batch before any candidate is scored.
	if err := job.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]models.RankedCandidate, 0, len(candidates))
	if len(candidates) > 0 {
		results := make([]*models.MatchResult, len(candidates))
		if err := b.scoreAll(ctx, len(candidates), func(i int) {
			result, err := Score(candidates[i], job)
			if err != nil {
				// A bad candidate snapshot drops that candidate, not the batch.
				log.Printf("[Matcher] skipping candidate %s for job %s: %v", candidates[i].ID, job.ID, err)
				return
			}
			results[i] = &result
		}); err != nil {
			return nil, err
		}

		for i, r := range results {
			if r == nil {
				continue
			}
			ranked = append(ranked, models.RankedCandidate{CandidateID: candidates[i].ID, Match: *r})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Match.MatchScore != ranked[j].Match.MatchScore {
			return ranked[i].Match.MatchScore > ranked[j].Match.MatchScore
		}
		if ranked[i].Match.SkillsMatch != ranked[j].Match.SkillsMatch {
			return ranked[i].Match.SkillsMatch > ranked[j].Match.SkillsMatch
		}
		return ranked[i].CandidateID < ranked[j].CandidateID
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	if persist && b.writer != nil {
		for _, rc := range ranked {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, err := b.writer.UpsertMatch(ctx, job.ID, rc.CandidateID, rc.Match); err != nil {
				return nil, fmt.Errorf("persist match for candidate %s: %w", rc.CandidateID, err)
			}
		}
	}

	return ranked, nil
}

// MatchCandidateAgainstJobs is the symmetric ranking: one candidate against
// many jobs. Results are never persisted here.
func (b *Batcher) MatchCandidateAgainstJobs(
	ctx context.Context,
	candidate models.CandidateProfile,
	jobs []models.JobRequirement,
	topN int,
) ([]models.RankedJob, error) {
	if topN <= 0 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("topN must be positive, got %d", topN)}
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]models.RankedJob, 0, len(jobs))
	if len(jobs) > 0 {
		results := make([]*models.MatchResult, len(jobs))
		if err := b.scoreAll(ctx, len(jobs), func(i int) {
			result, err := Score(candidate, jobs[i])
			if err != nil {
				log.Printf("[Matcher] skipping job %s for candidate %s: %v", jobs[i].ID, candidate.ID, err)
				return
			}
			results[i] = &result
		}); err != nil {
			return nil, err
		}

		for i, r := range results {
			if r == nil {
				continue
			}
			ranked = append(ranked, models.RankedJob{JobID: jobs[i].ID, Match: *r})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Match.MatchScore != ranked[j].Match.MatchScore {
			return ranked[i].Match.MatchScore > ranked[j].Match.MatchScore
		}
		if ranked[i].Match.SkillsMatch != ranked[j].Match.SkillsMatch {
			return ranked[i].Match.SkillsMatch > ranked[j].Match.SkillsMatch
		}
		return ranked[i].JobID < ranked[j].JobID
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked, nil
}

// scoreAll runs score(i) for i in [0, n) across the worker pool. It returns
// ctx.Err() if the caller cancels; cancellation is best-effort, checked
// between items.
func (b *Batcher) scoreAll(ctx context.Context, n int, score func(i int)) error {
	indexes := make(chan int)
	var wg sync.WaitGroup

	workers := b.workers
	if workers > n {
		workers = n
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue // drain without scoring
				}
				score(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return ctx.Err()
}
