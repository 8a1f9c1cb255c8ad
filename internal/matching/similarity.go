package matching

import "strings"

// DefaultSkillThreshold is the minimum similarity for a candidate skill to count as
// covering a required skill.
const DefaultSkillThreshold = 0.7

// SimilarityFunc scores how close two skill names are, from 0 (unrelated) to 1 (same).
type SimilarityFunc func(a, b string) float64

// SkillSimilarity is the default SimilarityFunc: 1 when the normalized names are
// equal or one contains the other, token Jaccard similarity otherwise.
func SkillSimilarity(a, b string) float64 {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb || strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 1
	}
	return jaccard(na, nb)
}

// SkillMatcher decides whether a candidate covers required skills. The zero value uses
// SkillSimilarity with DefaultSkillThreshold.
type SkillMatcher struct {
	Similarity SimilarityFunc
	Threshold  float64
}

func (m SkillMatcher) similarity() SimilarityFunc {
	if m.Similarity == nil {
		return SkillSimilarity
	}
	return m.Similarity
}

func (m SkillMatcher) threshold() float64 {
	if m.Threshold <= 0 {
		return DefaultSkillThreshold
	}
	return m.Threshold
}

// Covers reports whether any candidate skill reaches the threshold against required.
func (m SkillMatcher) Covers(candidateSkills []string, required string) bool {
	sim, threshold := m.similarity(), m.threshold()
	for _, skill := range candidateSkills {
		if sim(skill, required) >= threshold {
			return true
		}
	}
	return false
}
