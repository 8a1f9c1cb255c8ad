package matching

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ravyz/matcher/internal/profile"
)

// Pair is one candidate/job combination to score.
type Pair struct {
	Candidate *profile.Candidate
	Job       *profile.Job
}

// MatchPairs scores every pair with at most workers goroutines. Results keep the
// order of pairs. The first scoring error cancels the remaining work.
func MatchPairs(ctx context.Context, strategy Strategy, pairs []Pair, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*Result, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := strategy.Score(p.Candidate, p.Job)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MatchJobs scores one candidate against many jobs.
func MatchJobs(ctx context.Context, strategy Strategy, candidate *profile.Candidate, jobs []*profile.Job, workers int) ([]*Result, error) {
	pairs := make([]Pair, len(jobs))
	for i, j := range jobs {
		pairs[i] = Pair{Candidate: candidate, Job: j}
	}
	return MatchPairs(ctx, strategy, pairs, workers)
}

// MatchCandidates scores many candidates against one job.
func MatchCandidates(ctx context.Context, strategy Strategy, candidates []*profile.Candidate, job *profile.Job, workers int) ([]*Result, error) {
	pairs := make([]Pair, len(candidates))
	for i, c := range candidates {
		pairs[i] = Pair{Candidate: c, Job: job}
	}
	return MatchPairs(ctx, strategy, pairs, workers)
}

// Rank sorts results by final score, best first. Ties are ordered by job id and
// then candidate id so the output is stable.
func Rank(results []*Result) {
	sort.SliceStable(results, func(a, b int) bool {
		ra, rb := results[a], results[b]
		if ra.FinalScore != rb.FinalScore {
			return ra.FinalScore > rb.FinalScore
		}
		if ra.JobID != rb.JobID {
			return ra.JobID < rb.JobID
		}
		return ra.CandidateID < rb.CandidateID
	})
}
