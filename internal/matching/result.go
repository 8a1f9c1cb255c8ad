package matching

import (
	"math"

	"github.com/ravyz/matcher/internal/archetype"
)

// Result is the immutable outcome of scoring one candidate against one job.
type Result struct {
	Strategy        string    `json:"strategy"`
	CandidateID     string    `json:"candidate_id"`
	JobID           string    `json:"job_id"`
	FinalScore      int       `json:"final_score"`
	BehavioralScore float64   `json:"behavioral_score"`
	ExperienceScore float64   `json:"experience_score"`
	SkillsScore     float64   `json:"skills_score"`
	Adjustments     int       `json:"adjustments"`
	Breakdown       Breakdown `json:"breakdown"`
	Reasons         []string  `json:"reasons"`
	Explanation     string    `json:"explanation"`
}

// Breakdown keeps every intermediate value behind a Result.
type Breakdown struct {
	Behavioral  BehavioralBreakdown `json:"behavioral"`
	Experience  ExperienceBreakdown `json:"experience"`
	Skills      SkillsBreakdown     `json:"skills"`
	Adjustments Adjustments         `json:"adjustments"`
	Factors     []Factor            `json:"factors,omitempty"`
}

// BehavioralBreakdown describes the pillar and archetype part of the score.
type BehavioralBreakdown struct {
	Pillars            []PillarCompatibility `json:"pillars"`
	Base               float64               `json:"base"`
	CandidateArchetype string                `json:"candidate_archetype"`
	JobArchetype       string                `json:"job_archetype"`
	ArchetypeRelation  archetype.Relation    `json:"archetype_relation"`
	ArchetypeBoost     int                   `json:"archetype_boost"`
	Score              float64               `json:"score"`
}

// Factor is one weighted component of the legacy model.
type Factor struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}

// finalScore clamps to [0,100] and rounds to the nearest integer.
func finalScore(v float64) int {
	return int(math.Round(clampScore(v)))
}

// round1 keeps one decimal for reporting.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (r *Result) explain() {
	r.Reasons = Explain(r.FinalScore, r.Breakdown)
	r.Explanation = JoinExplanation(r.Reasons)
}
