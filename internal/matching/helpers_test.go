package matching

import "github.com/ravyz/matcher/internal/profile"

func ptr(v float64) *float64 { return &v }

func evenCandidate(id string, v float64) *profile.Candidate {
	return &profile.Candidate{
		ID: id,
		PillarScores: profile.PillarScores{
			Compensation: v, Ambiente: v, Proposito: v, Crescimento: v,
		},
	}
}

func evenJob(id string, v, risk float64) *profile.Job {
	return &profile.Job{
		ID: id,
		PillarScores: profile.JobPillarScores{
			Ambition: v, Teamwork: v, Leadership: v, Autonomy: v, Risk: risk,
		},
	}
}
