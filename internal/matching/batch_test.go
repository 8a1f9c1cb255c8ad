package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravyz/matcher/internal/profile"
)

func TestMatchJobsKeepsOrder(t *testing.T) {
	t.Parallel()

	c := evenCandidate("cand", 4)
	jobs := []*profile.Job{
		evenJob("far", 1, 5),
		evenJob("exact", 4, 3),
		evenJob("near", 3, 3),
	}

	results, err := MatchJobs(context.Background(), Pillar{}, c, jobs, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, jobs[i].ID, r.JobID)
		assert.Equal(t, "cand", r.CandidateID)
	}

	Rank(results)
	assert.Equal(t, "exact", results[0].JobID)
	assert.Equal(t, "near", results[1].JobID)
	assert.Equal(t, "far", results[2].JobID)
}

func TestMatchCandidates(t *testing.T) {
	t.Parallel()

	candidates := []*profile.Candidate{evenCandidate("b", 4), evenCandidate("a", 4), evenCandidate("z", 2)}
	results, err := MatchCandidates(context.Background(), Hybrid{}, candidates, evenJob("job", 4, 3), 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	Rank(results)
	// equal scores fall back to id order
	assert.Equal(t, []string{"a", "b", "z"}, []string{results[0].CandidateID, results[1].CandidateID, results[2].CandidateID})
}

func TestMatchPairsStopsOnError(t *testing.T) {
	t.Parallel()

	bad := evenJob("bad", 4, 3)
	bad.PillarScores.Autonomy = 9

	_, err := MatchJobs(context.Background(), Hybrid{}, evenCandidate("c", 4), []*profile.Job{evenJob("ok", 4, 3), bad}, 1)
	assert.ErrorIs(t, err, profile.ErrInvalidProfile)
}

func TestMatchPairsCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MatchJobs(ctx, Hybrid{}, evenCandidate("c", 4), []*profile.Job{evenJob("j", 4, 3)}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchPairsEmpty(t *testing.T) {
	t.Parallel()

	results, err := MatchPairs(context.Background(), Hybrid{}, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
