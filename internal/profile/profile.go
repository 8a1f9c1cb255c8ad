// Package profile holds the read-only inputs of the matching engine: pillar vectors,
// candidate profiles and job profiles.
package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// ErrInvalidProfile is wrapped by every profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

var validate = validator.New()

// Pillar names a candidate behavioral dimension.
type Pillar string

const (
	Compensation Pillar = "compensation"
	Ambiente     Pillar = "ambiente"
	Proposito    Pillar = "proposito"
	Crescimento  Pillar = "crescimento"
)

// Pillars lists the candidate pillars in canonical order.
var Pillars = []Pillar{Compensation, Ambiente, Proposito, Crescimento}

// JobPillar names a job behavioral dimension.
type JobPillar string

const (
	Autonomy   JobPillar = "autonomy"
	Leadership JobPillar = "leadership"
	Teamwork   JobPillar = "teamwork"
	Risk       JobPillar = "risk"
	Ambition   JobPillar = "ambition"
)

// JobPillars lists the job pillars in canonical order.
var JobPillars = []JobPillar{Autonomy, Leadership, Teamwork, Risk, Ambition}

// PillarScores is the candidate pillar vector. A zero value means the pillar was not assessed.
type PillarScores struct {
	Compensation float64 `json:"compensation" validate:"omitempty,gte=1,lte=5"`
	Ambiente     float64 `json:"ambiente" validate:"omitempty,gte=1,lte=5"`
	Proposito    float64 `json:"proposito" validate:"omitempty,gte=1,lte=5"`
	Crescimento  float64 `json:"crescimento" validate:"omitempty,gte=1,lte=5"`
}

// Get returns the score of the given pillar, or 0 for an unknown pillar.
func (p PillarScores) Get(pillar Pillar) float64 {
	switch pillar {
	case Compensation:
		return p.Compensation
	case Ambiente:
		return p.Ambiente
	case Proposito:
		return p.Proposito
	case Crescimento:
		return p.Crescimento
	default:
		return 0
	}
}

// Set stores score under the given pillar. Unknown pillars are ignored.
func (p *PillarScores) Set(pillar Pillar, score float64) {
	switch pillar {
	case Compensation:
		p.Compensation = score
	case Ambiente:
		p.Ambiente = score
	case Proposito:
		p.Proposito = score
	case Crescimento:
		p.Crescimento = score
	}
}

// JobPillarScores is the job pillar vector. A zero value means the pillar was not assessed.
type JobPillarScores struct {
	Autonomy   float64 `json:"autonomy" validate:"omitempty,gte=1,lte=5"`
	Leadership float64 `json:"leadership" validate:"omitempty,gte=1,lte=5"`
	Teamwork   float64 `json:"teamwork" validate:"omitempty,gte=1,lte=5"`
	Risk       float64 `json:"risk" validate:"omitempty,gte=1,lte=5"`
	Ambition   float64 `json:"ambition" validate:"omitempty,gte=1,lte=5"`
}

// Get returns the score of the given job pillar, or 0 for an unknown pillar.
func (p JobPillarScores) Get(pillar JobPillar) float64 {
	switch pillar {
	case Autonomy:
		return p.Autonomy
	case Leadership:
		return p.Leadership
	case Teamwork:
		return p.Teamwork
	case Risk:
		return p.Risk
	case Ambition:
		return p.Ambition
	default:
		return 0
	}
}

// Candidate is the matching input describing a job seeker.
type Candidate struct {
	ID                string       `json:"id" validate:"required"`
	PillarScores      PillarScores `json:"pillar_scores"`
	Archetype         string       `json:"archetype"`
	YearsExperience   *float64     `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
	CurrentPosition   string       `json:"current_position,omitempty"`
	Skills            []string     `json:"skills,omitempty"`
	Education         []string     `json:"education,omitempty"`
	Languages         []string     `json:"languages,omitempty"`
	Location          string       `json:"location,omitempty"`
	WorkModel         []string     `json:"work_model,omitempty"`
	ExpectedSalaryMin *float64     `json:"expected_salary_min,omitempty" validate:"omitempty,gte=0"`
	ExpectedSalaryMax *float64     `json:"expected_salary_max,omitempty" validate:"omitempty,gte=0"`
}

// Job is the matching input describing a job posting.
type Job struct {
	ID                string          `json:"id" validate:"required"`
	PillarScores      JobPillarScores `json:"pillar_scores"`
	Archetype         string          `json:"archetype"`
	MinExperience     *float64        `json:"min_experience,omitempty" validate:"omitempty,gte=0"`
	RequiredSkills    []string        `json:"required_skills,omitempty"`
	TechnicalSkills   []string        `json:"technical_skills,omitempty"`
	EducationRequired []string        `json:"education_required,omitempty"`
	LanguagesRequired []string        `json:"languages_required,omitempty"`
	RoleType          string          `json:"role_type,omitempty"`
	Location          string          `json:"location,omitempty"`
	WorkModel         string          `json:"work_model,omitempty"`
	SalaryMin         *float64        `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax         *float64        `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks identifiers, pillar ranges and numeric bounds of the candidate.
func (c *Candidate) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: candidate %q: %w", ErrInvalidProfile, c.ID, err)
	}
	return nil
}

// Validate checks identifiers, pillar ranges and numeric bounds of the job.
func (j *Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("%w: job %q: %w", ErrInvalidProfile, j.ID, err)
	}
	return nil
}

// DecodeCandidate converts a loosely typed payload (for example a resume parser output
// merged with assessment results) into a Candidate.
func DecodeCandidate(raw map[string]any) (*Candidate, error) {
	var c Candidate
	if err := decode(raw, &c); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}
	return &c, nil
}

// DecodeJob converts a loosely typed job form payload into a Job.
func DecodeJob(raw map[string]any) (*Job, error) {
	var j Job
	if err := decode(raw, &j); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return &j, nil
}

func decode(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
