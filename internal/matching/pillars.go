// Package matching scores candidate/job pairs and explains the result.
package matching

import (
	"math"

	"github.com/ravyz/matcher/internal/profile"
)

const (
	mappedPillarPenalty = 20.0
	riskPenalty         = 15.0
	neutralRisk         = 3.0
	neutralScore        = 50.0
	maxScore            = 100.0
)

// pillarMapping bridges the candidate and job pillar spaces.
var pillarMapping = []struct {
	candidate profile.Pillar
	job       profile.JobPillar
}{
	{profile.Compensation, profile.Ambition},
	{profile.Ambiente, profile.Teamwork},
	{profile.Proposito, profile.Leadership},
	{profile.Crescimento, profile.Autonomy},
}

// PillarCompatibility is the closeness of one candidate pillar to its mapped job pillar.
// The risk entry has no candidate pillar and is measured against a neutral value.
type PillarCompatibility struct {
	CandidatePillar profile.Pillar    `json:"candidate_pillar,omitempty"`
	JobPillar       profile.JobPillar `json:"job_pillar"`
	CandidateScore  float64           `json:"candidate_score"`
	JobScore        float64           `json:"job_score"`
	Compatibility   float64           `json:"compatibility"`
}

// PillarCompatibilities compares both pillar vectors. Pillars missing on either side
// are left out.
func PillarCompatibilities(candidate profile.PillarScores, job profile.JobPillarScores) []PillarCompatibility {
	result := make([]PillarCompatibility, 0, len(profile.JobPillars))

	for _, m := range pillarMapping {
		c, j := candidate.Get(m.candidate), job.Get(m.job)
		if c == 0 || j == 0 {
			continue
		}
		result = append(result, PillarCompatibility{
			CandidatePillar: m.candidate,
			JobPillar:       m.job,
			CandidateScore:  c,
			JobScore:        j,
			Compatibility:   math.Max(0, maxScore-math.Abs(c-j)*mappedPillarPenalty),
		})
	}

	if risk := job.Risk; risk != 0 {
		result = append(result, PillarCompatibility{
			JobPillar:      profile.Risk,
			CandidateScore: neutralRisk,
			JobScore:       risk,
			Compatibility:  math.Max(0, maxScore-math.Abs(risk-neutralRisk)*riskPenalty),
		})
	}

	return result
}

// BaseBehavioralScore is the mean compatibility, or 50 when nothing was comparable.
func BaseBehavioralScore(pillars []PillarCompatibility) float64 {
	if len(pillars) == 0 {
		return neutralScore
	}
	sum := 0.0
	for _, p := range pillars {
		sum += p.Compatibility
	}
	return sum / float64(len(pillars))
}
