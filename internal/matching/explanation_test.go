package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravyz/matcher/internal/archetype"
	"github.com/ravyz/matcher/internal/profile"
)

func TestExplainTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent compatibility (100%)."},
		{85, "Excellent compatibility (85%)."},
		{84, "Good compatibility (84%)."},
		{70, "Good compatibility (70%)."},
		{69, "Moderate compatibility (69%)."},
		{50, "Moderate compatibility (50%)."},
		{49, "Low compatibility (49%)."},
		{0, "Low compatibility (0%)."},
	}

	for _, tt := range tests {
		reasons := Explain(tt.score, Breakdown{})
		assert.Equal(t, []string{tt.want}, reasons, tt.score)
	}
}

func TestExplainPillarsAndArchetype(t *testing.T) {
	t.Parallel()

	b := Breakdown{Behavioral: BehavioralBreakdown{
		CandidateArchetype: archetype.Construtor,
		JobArchetype:       archetype.Colaborador,
		ArchetypeRelation:  archetype.RelationAdjacent,
		Pillars: []PillarCompatibility{
			{CandidatePillar: profile.Compensation, JobPillar: profile.Ambition, Compatibility: 60},
			{CandidatePillar: profile.Ambiente, JobPillar: profile.Teamwork, Compatibility: 90},
			{JobPillar: profile.Risk, Compatibility: 40},
		},
	}}

	want := []string{
		"Moderate compatibility (64%).",
		"Candidate archetype Construtor is compatible with the job archetype Colaborador.",
		"Strongest alignment: ambiente / teamwork (90%).",
		"Largest gap: risk tolerance (40%).",
	}
	assert.Equal(t, want, Explain(64, b))
	assert.Equal(t, Explain(64, b), Explain(64, b))
	assert.Equal(t, want[0]+" "+want[1]+" "+want[2]+" "+want[3], JoinExplanation(want))
}

func TestExplainSinglePillar(t *testing.T) {
	t.Parallel()

	b := Breakdown{Behavioral: BehavioralBreakdown{Pillars: []PillarCompatibility{
		{CandidatePillar: profile.Proposito, JobPillar: profile.Leadership, Compatibility: 20},
	}}}

	assert.Equal(t, []string{
		"Low compatibility (20%).",
		"Largest gap: proposito / leadership (20%).",
	}, Explain(20, b))
}

func TestExplainTiedWeakPillars(t *testing.T) {
	t.Parallel()

	candidate := profile.PillarScores{Compensation: 1, Ambiente: 1, Proposito: 1, Crescimento: 1}
	job := profile.JobPillarScores{Autonomy: 3.5, Leadership: 3.5, Teamwork: 3.5, Ambition: 3.5}

	pillars := PillarCompatibilities(candidate, job)
	assert.InDelta(t, 50.0, BaseBehavioralScore(pillars), 1e-9)

	assert.Equal(t, []string{
		"Moderate compatibility (50%).",
		"Largest gap: compensation / ambition (50%).",
	}, Explain(50, Breakdown{Behavioral: BehavioralBreakdown{Pillars: pillars}}))
}
