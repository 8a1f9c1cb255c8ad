package matching

import (
	"math"

	"github.com/ravyz/matcher/internal/profile"
)

const (
	skillBoostThreshold = 80.0
	skillBoost          = 5.0
)

// SkillsBreakdown details which required skills the candidate covers.
type SkillsBreakdown struct {
	Required  []string `json:"required"`
	Matched   []string `json:"matched"`
	Missing   []string `json:"missing"`
	MatchRate float64  `json:"match_rate"`
	Boost     float64  `json:"boost"`
	Score     float64  `json:"score"`
}

// RequiredSkills merges required and technical skills of a job without duplicates.
func RequiredSkills(job *profile.Job) []string {
	return uniqueNormalized(job.RequiredSkills, job.TechnicalSkills)
}

// MatchRate computes the share of required skills covered by the candidate.
// A job without requirements is fully covered.
func (m SkillMatcher) MatchRate(candidateSkills, required []string) SkillsBreakdown {
	b := SkillsBreakdown{
		Required: required,
		Matched:  make([]string, 0, len(required)),
		Missing:  make([]string, 0),
	}
	if len(required) == 0 {
		b.MatchRate = maxScore
		b.Score = maxScore
		return b
	}

	for _, skill := range required {
		if m.Covers(candidateSkills, skill) {
			b.Matched = append(b.Matched, skill)
		} else {
			b.Missing = append(b.Missing, skill)
		}
	}

	b.MatchRate = float64(len(b.Matched)) / float64(len(required)) * maxScore
	b.Score = b.MatchRate
	return b
}

// ScoreSkills is MatchRate plus a 5 point boost when at least 80% is covered, capped at 100.
func (m SkillMatcher) ScoreSkills(candidate *profile.Candidate, job *profile.Job) SkillsBreakdown {
	b := m.MatchRate(candidate.Skills, RequiredSkills(job))
	if len(b.Required) > 0 && b.MatchRate >= skillBoostThreshold {
		b.Boost = skillBoost
		b.Score = math.Min(maxScore, b.MatchRate+skillBoost)
	}
	return b
}
