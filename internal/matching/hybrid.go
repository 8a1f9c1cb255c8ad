package matching

import "github.com/ravyz/matcher/internal/profile"

const (
	behavioralWeight = 0.40
	experienceWeight = 0.35
	skillsWeight     = 0.25
)

// Hybrid combines behavioral, experience/education and skills scores with additive
// adjustments. It is the default strategy.
type Hybrid struct {
	Skills SkillMatcher
}

func (Hybrid) Name() string { return StrategyHybrid }

func (h Hybrid) Score(candidate *profile.Candidate, job *profile.Job) (*Result, error) {
	if err := validateProfiles(candidate, job); err != nil {
		return nil, err
	}

	b := Breakdown{
		Behavioral:  ScoreBehavioral(candidate, job),
		Experience:  ScoreExperience(candidate, job),
		Skills:      h.Skills.ScoreSkills(candidate, job),
		Adjustments: ScoreAdjustments(candidate, job),
	}

	weighted := b.Behavioral.Score*behavioralWeight +
		b.Experience.Score*experienceWeight +
		b.Skills.Score*skillsWeight

	r := &Result{
		Strategy:        StrategyHybrid,
		CandidateID:     candidate.ID,
		JobID:           job.ID,
		FinalScore:      finalScore(weighted + float64(b.Adjustments.Total)),
		BehavioralScore: round1(b.Behavioral.Score),
		ExperienceScore: round1(b.Experience.Score),
		SkillsScore:     round1(b.Skills.Score),
		Adjustments:     b.Adjustments.Total,
		Breakdown:       b,
	}
	r.explain()
	return r, nil
}
