package archetype

import (
	"sort"

	"github.com/ravyz/matcher/internal/profile"
)

// Confidence grades how clearly the dominant pillars stand out.
type Confidence string

const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

const (
	balancedSpread      = 0.5
	idealistMinimum     = 4.5
	idealistSecondLimit = 3.5
	highConfidenceGap   = 0.7
	mediumConfidenceGap = 0.3
)

// Result is the outcome of classifying one pillar vector.
type Result struct {
	Archetype       string               `json:"archetype"`
	PillarScores    profile.PillarScores `json:"pillar_scores"`
	DominantPillars [2]profile.Pillar    `json:"dominant_pillars"`
	Confidence      Confidence           `json:"confidence"`
	Description     string               `json:"description"`
}

// pairTable maps "first_second" dominant pillars to an archetype.
//
// The ambiente/crescimento pair is ambiguous: both orders were historically mapped
// to either Construtor or Mobilizador. Here ambiente first yields Construtor and
// crescimento first yields Mobilizador until product settles the rule.
var pairTable = map[string]string{
	pairKey(profile.Compensation, profile.Ambiente):    Guardiao,
	pairKey(profile.Compensation, profile.Proposito):   Pragmatico,
	pairKey(profile.Compensation, profile.Crescimento): Realizador,
	pairKey(profile.Ambiente, profile.Compensation):    Conciliador,
	pairKey(profile.Ambiente, profile.Proposito):       Colaborador,
	pairKey(profile.Ambiente, profile.Crescimento):     Construtor,
	pairKey(profile.Proposito, profile.Compensation):   Estrategista,
	pairKey(profile.Proposito, profile.Ambiente):       Mentor,
	pairKey(profile.Proposito, profile.Crescimento):    Visionario,
	pairKey(profile.Crescimento, profile.Compensation): Protagonista,
	pairKey(profile.Crescimento, profile.Ambiente):     Mobilizador,
	pairKey(profile.Crescimento, profile.Proposito):    Explorador,
}

func pairKey(first, second profile.Pillar) string {
	return string(first) + "_" + string(second)
}

// lookupPair resolves the dominant pair, falling back when the table has no entry.
func lookupPair(first, second profile.Pillar) string {
	if name, ok := pairTable[pairKey(first, second)]; ok {
		return name
	}
	return Fallback
}

type ranked struct {
	pillar profile.Pillar
	score  float64
}

// rank orders the pillars by descending score; ties keep canonical pillar order.
func rank(scores profile.PillarScores) []ranked {
	result := make([]ranked, 0, len(profile.Pillars))
	for _, p := range profile.Pillars {
		result = append(result, ranked{pillar: p, score: scores.Get(p)})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].score > result[j].score
	})
	return result
}

// Classify derives the archetype of a candidate pillar vector. It is a pure function.
func Classify(scores profile.PillarScores) Result {
	r := rank(scores)
	first, second, lowest := r[0], r[1], r[len(r)-1]

	result := Result{
		PillarScores:    scores,
		DominantPillars: [2]profile.Pillar{first.pillar, second.pillar},
	}

	switch {
	case first.score-lowest.score < balancedSpread:
		result.Archetype = Equilibrado
		result.Confidence = High
	case first.pillar == profile.Proposito && first.score > idealistMinimum && second.score < idealistSecondLimit:
		result.Archetype = IdealistaPuro
		result.Confidence = High
	default:
		result.Archetype = lookupPair(first.pillar, second.pillar)
		result.Confidence = confidenceFromGap(first.score - second.score)
	}

	result.Description = Narrative(result.Archetype).Summary
	return result
}

func confidenceFromGap(gap float64) Confidence {
	switch {
	case gap > highConfidenceGap:
		return High
	case gap > mediumConfidenceGap:
		return Medium
	default:
		return Low
	}
}
