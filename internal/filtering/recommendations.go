package filtering

import (
	"github.com/ravyz/matcher/internal/matching"
	"github.com/ravyz/matcher/internal/profile"
)

// Recommendations is the working set the pipeline narrows down: scored results plus
// the jobs they refer to.
type Recommendations struct {
	Items []*matching.Result
	Jobs  map[string]*profile.Job
}

// NewRecommendations indexes jobs by id next to their results.
func NewRecommendations(results []*matching.Result, jobs []*profile.Job) *Recommendations {
	index := make(map[string]*profile.Job, len(jobs))
	for _, j := range jobs {
		index[j.ID] = j
	}
	return &Recommendations{Items: results, Jobs: index}
}

func (r *Recommendations) Len() int { return len(r.Items) }

// Job returns the job behind a result, or nil when it is unknown.
func (r *Recommendations) Job(result *matching.Result) *profile.Job {
	return r.Jobs[result.JobID]
}

// Keep retains results accepted by keep and returns the removed ones in order.
func (r *Recommendations) Keep(keep func(*matching.Result) bool) []*matching.Result {
	kept := make([]*matching.Result, 0, len(r.Items))
	var removed []*matching.Result
	for _, item := range r.Items {
		if keep(item) {
			kept = append(kept, item)
		} else {
			removed = append(removed, item)
		}
	}
	r.Items = kept
	return removed
}

// JobIDs lists the job ids of results.
func JobIDs(results []*matching.Result) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.JobID)
	}
	return ids
}
