package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateValidate(t *testing.T) {
	t.Parallel()

	negative := -1.0
	tests := []struct {
		name    string
		input   Candidate
		wantErr bool
	}{
		{
			name:  "valid with unassessed pillar",
			input: Candidate{ID: "c1", PillarScores: PillarScores{Compensation: 4, Ambiente: 1, Proposito: 5}},
		},
		{
			name:    "missing id",
			input:   Candidate{PillarScores: PillarScores{Compensation: 3}},
			wantErr: true,
		},
		{
			name:    "pillar above range",
			input:   Candidate{ID: "c1", PillarScores: PillarScores{Crescimento: 5.5}},
			wantErr: true,
		},
		{
			name:    "pillar below range",
			input:   Candidate{ID: "c1", PillarScores: PillarScores{Ambiente: 0.5}},
			wantErr: true,
		},
		{
			name:    "negative experience",
			input:   Candidate{ID: "c1", YearsExperience: &negative},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidProfile))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestJobValidate(t *testing.T) {
	t.Parallel()

	ok := Job{ID: "j1", PillarScores: JobPillarScores{Autonomy: 2, Risk: 3, Ambition: 5}}
	assert.NoError(t, ok.Validate())

	bad := Job{ID: "j2", PillarScores: JobPillarScores{Leadership: 6}}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.Contains(t, err.Error(), "j2")
}

func TestPillarScoresGetSet(t *testing.T) {
	t.Parallel()

	var scores PillarScores
	for i, p := range Pillars {
		scores.Set(p, float64(i+1))
	}
	scores.Set(Pillar("unknown"), 5)

	assert.Equal(t, 1.0, scores.Get(Compensation))
	assert.Equal(t, 2.0, scores.Get(Ambiente))
	assert.Equal(t, 3.0, scores.Get(Proposito))
	assert.Equal(t, 4.0, scores.Get(Crescimento))
	assert.Zero(t, scores.Get(Pillar("unknown")))
}

func TestDecodeCandidate(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"id": "cand-42",
		"pillar_scores": map[string]any{
			"compensation": 4.2,
			"ambiente":     "3.5",
			"proposito":    4,
			"crescimento":  2.75,
		},
		"archetype":        "Protagonista",
		"years_experience": "6",
		"skills":           []any{"Go", "PostgreSQL"},
		"work_model":       "Remoto",
	}

	c, err := DecodeCandidate(raw)
	require.NoError(t, err)

	assert.Equal(t, "cand-42", c.ID)
	assert.InDelta(t, 3.5, c.PillarScores.Ambiente, 1e-9)
	assert.InDelta(t, 4.0, c.PillarScores.Proposito, 1e-9)
	require.NotNil(t, c.YearsExperience)
	assert.InDelta(t, 6.0, *c.YearsExperience, 1e-9)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, c.Skills)
	assert.Equal(t, []string{"Remoto"}, c.WorkModel)
	assert.NoError(t, c.Validate())
}

func TestDecodeJob(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"id":              "job-7",
		"pillar_scores":   map[string]any{"autonomy": 4, "risk": 3},
		"min_experience":  3,
		"required_skills": []any{"React"},
		"work_model":      "Híbrido",
	}

	j, err := DecodeJob(raw)
	require.NoError(t, err)
	assert.Equal(t, "job-7", j.ID)
	require.NotNil(t, j.MinExperience)
	assert.InDelta(t, 3.0, *j.MinExperience, 1e-9)
	assert.Equal(t, 3.0, j.PillarScores.Risk)
	assert.Zero(t, j.PillarScores.Leadership)
	assert.Nil(t, j.SalaryMin)
}
