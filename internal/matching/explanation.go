package matching

import (
	"fmt"
	"strings"

	"github.com/ravyz/matcher/internal/archetype"
)

const (
	excellentTier     = 85
	goodTier          = 70
	moderateTier      = 50
	strongPillarLimit = 80.0
	weakPillarLimit   = 60.0
)

// Explain turns a score breakdown into ordered, human-readable sentences.
// It has no side effects and returns the same sentences for the same input.
func Explain(final int, b Breakdown) []string {
	reasons := []string{tierSentence(final)}

	if s := archetypeSentence(b.Behavioral); s != "" {
		reasons = append(reasons, s)
	}

	pillars := b.Behavioral.Pillars
	hi, lo := extremes(pillars)
	if hi >= 0 && pillars[hi].Compatibility >= strongPillarLimit {
		reasons = append(reasons, fmt.Sprintf("Strongest alignment: %s (%.0f%%).", pillarLabel(pillars[hi]), pillars[hi].Compatibility))
	}
	if lo >= 0 && pillars[lo].Compatibility < weakPillarLimit {
		reasons = append(reasons, fmt.Sprintf("Largest gap: %s (%.0f%%).", pillarLabel(pillars[lo]), pillars[lo].Compatibility))
	}

	return reasons
}

// JoinExplanation renders the sentences as a single explanation string.
func JoinExplanation(reasons []string) string {
	return strings.Join(reasons, " ")
}

func tierSentence(final int) string {
	switch {
	case final >= excellentTier:
		return fmt.Sprintf("Excellent compatibility (%d%%).", final)
	case final >= goodTier:
		return fmt.Sprintf("Good compatibility (%d%%).", final)
	case final >= moderateTier:
		return fmt.Sprintf("Moderate compatibility (%d%%).", final)
	default:
		return fmt.Sprintf("Low compatibility (%d%%).", final)
	}
}

func archetypeSentence(b BehavioralBreakdown) string {
	if b.CandidateArchetype == "" || b.JobArchetype == "" {
		return ""
	}
	switch b.ArchetypeRelation {
	case archetype.RelationExact:
		return fmt.Sprintf("Candidate and job share the %s archetype.", b.CandidateArchetype)
	case archetype.RelationAdjacent:
		return fmt.Sprintf("Candidate archetype %s is compatible with the job archetype %s.", b.CandidateArchetype, b.JobArchetype)
	default:
		return fmt.Sprintf("Candidate archetype %s differs from the job archetype %s.", b.CandidateArchetype, b.JobArchetype)
	}
}

// extremes returns the indexes of the first highest and first lowest compatibility,
// or -1 for both when there are no pillars. Both may point at the same entry; the
// strong and weak limits never overlap.
func extremes(pillars []PillarCompatibility) (int, int) {
	if len(pillars) == 0 {
		return -1, -1
	}
	hi, lo := 0, 0
	for i, p := range pillars {
		if p.Compatibility > pillars[hi].Compatibility {
			hi = i
		}
		if p.Compatibility < pillars[lo].Compatibility {
			lo = i
		}
	}
	return hi, lo
}

func pillarLabel(p PillarCompatibility) string {
	if p.CandidatePillar == "" {
		return fmt.Sprintf("%s tolerance", p.JobPillar)
	}
	return fmt.Sprintf("%s / %s", p.CandidatePillar, p.JobPillar)
}
