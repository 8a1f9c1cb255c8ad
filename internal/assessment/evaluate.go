package assessment

import (
	"github.com/ravyz/matcher/internal/archetype"
	"github.com/ravyz/matcher/internal/profile"
)

// Result bundles everything derived from one questionnaire submission.
type Result struct {
	PillarScores profile.PillarScores      `json:"pillar_scores"`
	Archetype    archetype.Result          `json:"archetype"`
	Narrative    archetype.NarrativeRecord `json:"narrative"`
	Warnings     []string                  `json:"warnings,omitempty"`
}

// Evaluate scores the responses, classifies the archetype and attaches consistency
// warnings. Only invalid responses produce an error.
func Evaluate(r Responses) (*Result, error) {
	scores, err := Score(r)
	if err != nil {
		return nil, err
	}

	classified := archetype.Classify(scores)

	return &Result{
		PillarScores: scores,
		Archetype:    classified,
		Narrative:    archetype.Narrative(classified.Archetype),
		Warnings:     ValidateConsistency(r),
	}, nil
}
