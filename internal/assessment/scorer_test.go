package assessment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravyz/matcher/internal/archetype"
	"github.com/ravyz/matcher/internal/profile"
)

func uniform(v int) Responses {
	r := make(Responses, len(Questions))
	for _, q := range Questions {
		r[q.ID] = v
	}
	return r
}

func TestCatalogueShape(t *testing.T) {
	t.Parallel()

	require.Len(t, Questions, 30)

	wantCounts := map[profile.Pillar]int{
		profile.Compensation: 7,
		profile.Ambiente:     7,
		profile.Proposito:    7,
		profile.Crescimento:  9,
	}
	for pillar, want := range wantCounts {
		questions := QuestionsFor(pillar)
		assert.Len(t, questions, want, "pillar %s", pillar)

		contrasting := 0
		for _, q := range questions {
			if q.IsContrasting {
				contrasting++
			}
		}
		assert.Equal(t, 1, contrasting, "pillar %s must have exactly one contrasting item", pillar)
	}

	for _, id := range []string{"q6", "q14", "q20", "q28"} {
		assert.True(t, IsContrasting(id), id)
	}
	assert.False(t, IsContrasting("q1"))
	assert.False(t, IsContrasting("q99"))

	q, ok := Lookup("q28")
	require.True(t, ok)
	assert.Equal(t, profile.Crescimento, q.Pillar)
}

func TestScoreAllThreesIsNeutral(t *testing.T) {
	t.Parallel()

	scores, err := Score(uniform(3))
	require.NoError(t, err)

	for _, p := range profile.Pillars {
		assert.InDelta(t, 3.0, scores.Get(p), 1e-9, "pillar %s", p)
	}
}

func TestScoreInvertsContrastingQuestions(t *testing.T) {
	t.Parallel()

	r := uniform(5)
	r["q6"] = 1 // contributes 6-1 = 5

	scores, err := Score(r)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, scores.Compensation, 1e-9)

	r["q6"] = 5 // contributes 1
	scores, err = Score(r)
	require.NoError(t, err)
	assert.InDelta(t, (6*5.0+1)/7, scores.Compensation, 1e-9)
	assert.InDelta(t, (8*5.0+1)/9, scores.Crescimento, 1e-9)
}

func TestAdjustLaw(t *testing.T) {
	t.Parallel()

	for v := MinAnswer; v <= MaxAnswer; v++ {
		assert.Equal(t, 6-v, Adjust("q20", v))
		assert.Equal(t, v, Adjust("q21", v))
		assert.GreaterOrEqual(t, Adjust("q20", v), MinAnswer)
		assert.LessOrEqual(t, Adjust("q20", v), MaxAnswer)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	t.Parallel()

	// Deterministic sweep over mixed answer patterns.
	for seed := 0; seed < 200; seed++ {
		r := make(Responses, len(Questions))
		for i, q := range Questions {
			r[q.ID] = (seed*7+i*3+seed/5)%5 + 1
		}

		scores, err := Score(r)
		require.NoError(t, err)
		for _, p := range profile.Pillars {
			v := scores.Get(p)
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 5.0)
		}
	}
}

func TestScoreRejectsInvalidResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mutate         func(r Responses)
		wantMissing    []string
		wantOutOfRange []string
	}{
		{
			name:        "missing answer",
			mutate:      func(r Responses) { delete(r, "q12") },
			wantMissing: []string{"q12"},
		},
		{
			name:           "zero answer is not defaulted",
			mutate:         func(r Responses) { r["q3"] = 0 },
			wantOutOfRange: []string{"q3"},
		},
		{
			name: "several problems",
			mutate: func(r Responses) {
				delete(r, "q30")
				delete(r, "q1")
				r["q14"] = 6
			},
			wantMissing:    []string{"q1", "q30"},
			wantOutOfRange: []string{"q14"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := uniform(4)
			tt.mutate(r)

			_, err := Score(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidResponses))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantMissing, verr.Missing)
			assert.Equal(t, tt.wantOutOfRange, verr.OutOfRange)
		})
	}
}

func TestScoreIgnoresUnknownIDs(t *testing.T) {
	t.Parallel()

	r := uniform(2)
	r["q31"] = 9

	scores, err := Score(r)
	require.NoError(t, err)
	assert.InDelta(t, (6*2.0+4)/7, scores.Ambiente, 1e-9)
}

func TestValidateConsistency(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateConsistency(uniform(3)))

	r := uniform(5)
	// Direct answers of 5 with a contrasting 5 (adjusted 1) is a gap of 4.
	warnings := ValidateConsistency(r)
	assert.Equal(t, []string{
		"Inconsistency detected in pillar compensation",
		"Inconsistency detected in pillar ambiente",
		"Inconsistency detected in pillar proposito",
		"Inconsistency detected in pillar crescimento",
	}, warnings)

	r["q6"], r["q14"], r["q20"], r["q28"] = 1, 1, 1, 1
	assert.Empty(t, ValidateConsistency(r))

	// Gap of exactly 2 is tolerated.
	r = uniform(3)
	r["q20"] = 5
	assert.Empty(t, ValidateConsistency(r))
}

func TestValidateConsistencySkipsIncompletePillars(t *testing.T) {
	t.Parallel()

	r := uniform(5)
	delete(r, "q6")
	r["q14"] = 0

	warnings := ValidateConsistency(r)
	assert.Equal(t, []string{
		"Inconsistency detected in pillar proposito",
		"Inconsistency detected in pillar crescimento",
	}, warnings)
}

func TestEvaluateBalancedProfile(t *testing.T) {
	t.Parallel()

	res, err := Evaluate(uniform(3))
	require.NoError(t, err)

	assert.Equal(t, archetype.Equilibrado, res.Archetype.Archetype)
	assert.Equal(t, archetype.High, res.Archetype.Confidence)
	assert.Equal(t, "O Equilibrado", res.Narrative.Title)
	assert.Empty(t, res.Warnings)
}

func TestEvaluateRejectsIncompleteSubmission(t *testing.T) {
	t.Parallel()

	r := uniform(3)
	delete(r, "q7")

	res, err := Evaluate(r)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidResponses)
}
