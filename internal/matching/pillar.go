package matching

import "github.com/ravyz/matcher/internal/profile"

// Pillar scores only behavioral fit: pillar compatibility plus archetype boost.
type Pillar struct{}

func (Pillar) Name() string { return StrategyPillar }

func (Pillar) Score(candidate *profile.Candidate, job *profile.Job) (*Result, error) {
	if err := validateProfiles(candidate, job); err != nil {
		return nil, err
	}

	behavioral := ScoreBehavioral(candidate, job)
	r := &Result{
		Strategy:        StrategyPillar,
		CandidateID:     candidate.ID,
		JobID:           job.ID,
		FinalScore:      finalScore(behavioral.Score),
		BehavioralScore: round1(behavioral.Score),
		Breakdown:       Breakdown{Behavioral: behavioral},
	}
	r.explain()
	return r, nil
}
