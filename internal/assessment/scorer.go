package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ravyz/matcher/internal/profile"
)

// ErrInvalidResponses is wrapped by ValidationError.
var ErrInvalidResponses = errors.New("invalid responses")

// Responses maps a question id to its raw Likert answer.
type Responses map[string]int

// ValidationError lists every question that prevents scoring.
type ValidationError struct {
	Missing    []string
	OutOfRange []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing answers: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.OutOfRange) > 0 {
		parts = append(parts, fmt.Sprintf("answers outside [%d,%d]: %s", MinAnswer, MaxAnswer, strings.Join(e.OutOfRange, ", ")))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidResponses, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidResponses }

// Validate requires an in-range answer for every catalogue question.
// Ids that are not part of the catalogue are ignored.
func (r Responses) Validate() error {
	verr := &ValidationError{}
	for _, q := range Questions {
		v, ok := r[q.ID]
		switch {
		case !ok:
			verr.Missing = append(verr.Missing, q.ID)
		case v < MinAnswer || v > MaxAnswer:
			verr.OutOfRange = append(verr.OutOfRange, q.ID)
		}
	}

	if len(verr.Missing) > 0 || len(verr.OutOfRange) > 0 {
		return verr
	}
	return nil
}

// Adjust returns the scoring contribution of a raw answer: 6-raw for contrasting
// questions, raw otherwise.
func Adjust(questionID string, raw int) int {
	if IsContrasting(questionID) {
		return MaxAnswer + MinAnswer - raw
	}
	return raw
}

// Score validates the responses and averages the adjusted answers of each pillar.
func Score(r Responses) (profile.PillarScores, error) {
	if err := r.Validate(); err != nil {
		return profile.PillarScores{}, err
	}

	sums := make(map[profile.Pillar]int, len(profile.Pillars))
	counts := make(map[profile.Pillar]int, len(profile.Pillars))
	for _, q := range Questions {
		sums[q.Pillar] += Adjust(q.ID, r[q.ID])
		counts[q.Pillar]++
	}

	var scores profile.PillarScores
	for _, p := range profile.Pillars {
		if counts[p] == 0 {
			continue
		}
		scores.Set(p, float64(sums[p])/float64(counts[p]))
	}

	return scores, nil
}
