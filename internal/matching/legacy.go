package matching

import (
	"math"

	"github.com/ravyz/matcher/internal/profile"
)

// Legacy six-factor weights.
const (
	legacySkillsWeight     = 0.25
	legacyExperienceWeight = 0.20
	legacyLocationWeight   = 0.15
	legacySalaryWeight     = 0.15
	legacyCultureWeight    = 0.15
	legacyResumeWeight     = 0.10
)

const (
	locationWorkModel = 80.0
	locationPartial   = 60.0
	locationMismatch  = 30.0
	salaryGapPenalty  = 200.0
)

// Factor names reported in Breakdown.Factors.
const (
	FactorSkills     = "skills"
	FactorExperience = "experience"
	FactorLocation   = "location"
	FactorSalary     = "salary"
	FactorCulture    = "culture"
	FactorResume     = "resume"
)

// Legacy is the six-factor weighted model kept for callers that still rely on it.
type Legacy struct {
	Skills SkillMatcher
}

func (Legacy) Name() string { return StrategyLegacy }

func (l Legacy) Score(candidate *profile.Candidate, job *profile.Job) (*Result, error) {
	if err := validateProfiles(candidate, job); err != nil {
		return nil, err
	}

	skills := l.Skills.MatchRate(candidate.Skills, RequiredSkills(job))
	experience := ScoreExperience(candidate, job)
	behavioral := ScoreBehavioral(candidate, job)

	factors := []Factor{
		{Name: FactorSkills, Weight: legacySkillsWeight, Score: skills.MatchRate},
		{Name: FactorExperience, Weight: legacyExperienceWeight, Score: experience.Years},
		{Name: FactorLocation, Weight: legacyLocationWeight, Score: LocationScore(candidate, job)},
		{Name: FactorSalary, Weight: legacySalaryWeight, Score: SalaryScore(candidate, job)},
		{Name: FactorCulture, Weight: legacyCultureWeight, Score: behavioral.Base},
		{Name: FactorResume, Weight: legacyResumeWeight, Score: ResumeCompleteness(candidate)},
	}

	total := 0.0
	for i := range factors {
		factors[i].Score = round1(factors[i].Score)
		total += factors[i].Score * factors[i].Weight
	}

	r := &Result{
		Strategy:        StrategyLegacy,
		CandidateID:     candidate.ID,
		JobID:           job.ID,
		FinalScore:      finalScore(total),
		BehavioralScore: round1(behavioral.Base),
		ExperienceScore: round1(experience.Years),
		SkillsScore:     round1(skills.MatchRate),
		Breakdown: Breakdown{
			Behavioral: behavioral,
			Experience: experience,
			Skills:     skills,
			Factors:    factors,
		},
	}
	r.explain()
	return r, nil
}

// LocationScore rates how well the job's place and work model suit the candidate.
func LocationScore(candidate *profile.Candidate, job *profile.Job) float64 {
	if normalize(job.Location) == "" && normalize(job.WorkModel) == "" {
		return neutralScore
	}
	if LocationMatches(candidate, job) {
		return maxScore
	}
	if wm := normalize(job.WorkModel); wm != "" {
		for _, accepted := range candidate.WorkModel {
			if normalize(accepted) == wm {
				return locationWorkModel
			}
		}
	}
	if jaccard(candidate.Location, job.Location) > 0 {
		return locationPartial
	}
	return locationMismatch
}

// SalaryScore compares the candidate's expectation with the job's range.
// Missing data on either side is neutral.
func SalaryScore(candidate *profile.Candidate, job *profile.Job) float64 {
	cMin, cMax := candidate.ExpectedSalaryMin, candidate.ExpectedSalaryMax
	jMin, jMax := job.SalaryMin, job.SalaryMax
	if cMin == nil || cMax == nil || jMin == nil || jMax == nil {
		return neutralScore
	}
	if *jMin <= *cMax && *cMin <= *jMax {
		return maxScore
	}
	if *jMin > *cMax {
		return maxScore
	}
	if *cMin <= 0 {
		return neutralScore
	}
	gap := (*cMin - *jMax) / *cMin
	return math.Max(0, maxScore-salaryGapPenalty*gap)
}

// ResumeCompleteness is the share of optional resume fields the candidate filled in.
func ResumeCompleteness(candidate *profile.Candidate) float64 {
	present := []bool{
		len(candidate.Skills) > 0,
		len(candidate.Education) > 0,
		len(candidate.Languages) > 0,
		candidate.YearsExperience != nil,
		normalize(candidate.CurrentPosition) != "",
		normalize(candidate.Location) != "",
	}
	filled := 0
	for _, ok := range present {
		if ok {
			filled++
		}
	}
	return float64(filled) / float64(len(present)) * maxScore
}
