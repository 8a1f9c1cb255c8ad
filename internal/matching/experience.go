package matching

import (
	"math"

	"github.com/ravyz/matcher/internal/profile"
)

const (
	yearsWeight          = 0.50
	positionWeight       = 0.30
	educationWeight      = 0.20
	yearGapPenalty       = 20.0
	educationStepPenalty = 30.0
)

// ExperienceBreakdown holds the experience/education sub-scores, each in [0,100].
type ExperienceBreakdown struct {
	Years     float64 `json:"years"`
	Position  float64 `json:"position"`
	Education float64 `json:"education"`
	Score     float64 `json:"score"`
}

// Education levels on an ordinal scale. Zero means the level was not recognized.
const (
	LevelUnknown = iota
	LevelFundamental
	LevelMedio
	LevelTecnico
	LevelSuperior
	LevelPosGraduacao
	LevelMestrado
	LevelDoutorado
)

// educationKeywords is checked from the highest level down so that
// "pós-graduação" is not read as "graduação".
var educationKeywords = []struct {
	level    int
	keywords []string
}{
	{LevelDoutorado, []string{"doutorado", "doutor", "phd", "doctorate"}},
	{LevelMestrado, []string{"mestrado", "mestre", "master", "masters", "msc"}},
	{LevelPosGraduacao, []string{"pos", "posgraduacao", "especializacao", "mba", "postgraduate"}},
	{LevelSuperior, []string{"superior", "graduacao", "bacharelado", "bacharel", "licenciatura", "tecnologo", "bachelor", "faculdade"}},
	{LevelTecnico, []string{"tecnico", "technical"}},
	{LevelMedio, []string{"medio"}},
	{LevelFundamental, []string{"fundamental", "elementary"}},
}

// EducationLevel maps a free-text education entry to its ordinal level.
func EducationLevel(entry string) int {
	toks := tokenSet(entry)
	for _, e := range educationKeywords {
		for _, kw := range e.keywords {
			if toks[kw] {
				return e.level
			}
		}
	}
	return LevelUnknown
}

// YearsScore is 100 when the candidate meets the minimum, minus 20 points per
// missing year otherwise. A missing candidate value counts as zero years.
func YearsScore(candidateYears, minExperience *float64) float64 {
	if minExperience == nil || *minExperience <= 0 {
		return maxScore
	}
	years := 0.0
	if candidateYears != nil {
		years = *candidateYears
	}
	if years >= *minExperience {
		return maxScore
	}
	gap := *minExperience - years
	return math.Max(0, maxScore-yearGapPenalty*gap)
}

// PositionScore is the share of role keywords found in the candidate's current position.
func PositionScore(currentPosition, roleType string) float64 {
	role := keywords(roleType)
	if len(role) == 0 {
		return neutralScore
	}
	current := make(map[string]bool)
	for _, tok := range keywords(currentPosition) {
		current[tok] = true
	}
	matched := 0
	for _, tok := range role {
		if current[tok] {
			matched++
		}
	}
	return float64(matched) / float64(len(role)) * maxScore
}

// EducationScore gives full credit when the candidate's highest level reaches the
// lowest required level, and loses 30 points per level below it.
func EducationScore(candidate, required []string) float64 {
	requiredLevel := LevelUnknown
	for _, r := range required {
		level := EducationLevel(r)
		if level == LevelUnknown {
			continue
		}
		if requiredLevel == LevelUnknown || level < requiredLevel {
			requiredLevel = level
		}
	}
	if requiredLevel == LevelUnknown {
		return maxScore
	}

	candidateLevel := LevelUnknown
	for _, c := range candidate {
		if level := EducationLevel(c); level > candidateLevel {
			candidateLevel = level
		}
	}

	if candidateLevel >= requiredLevel {
		return maxScore
	}
	distance := float64(requiredLevel - candidateLevel)
	return math.Max(0, maxScore-educationStepPenalty*distance)
}

// ScoreExperience combines years (50%), position (30%) and education (20%).
func ScoreExperience(candidate *profile.Candidate, job *profile.Job) ExperienceBreakdown {
	b := ExperienceBreakdown{
		Years:     YearsScore(candidate.YearsExperience, job.MinExperience),
		Position:  PositionScore(candidate.CurrentPosition, job.RoleType),
		Education: EducationScore(candidate.Education, job.EducationRequired),
	}
	b.Score = b.Years*yearsWeight + b.Position*positionWeight + b.Education*educationWeight
	return b
}
