package matching

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ravyz/matcher/internal/archetype"
	"github.com/ravyz/matcher/internal/profile"
)

// Names of the registered scoring models.
const (
	StrategyHybrid = "hybrid"
	StrategyPillar = "pillar"
	StrategyLegacy = "legacy"
)

var ErrUnknownStrategy = errors.New("unknown matching strategy")

// Strategy scores a candidate against a job. Implementations are pure and safe for
// concurrent use.
type Strategy interface {
	Name() string
	Score(candidate *profile.Candidate, job *profile.Job) (*Result, error)
}

var registry = map[string]Strategy{
	StrategyHybrid: Hybrid{},
	StrategyPillar: Pillar{},
	StrategyLegacy: Legacy{},
}

// Lookup returns the strategy registered under name. An empty name selects hybrid.
func Lookup(name string) (Strategy, error) {
	if name == "" {
		name = StrategyHybrid
	}
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Strategies())
	}
	return s, nil
}

// Strategies lists the registered strategy names in alphabetical order.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateProfiles(candidate *profile.Candidate, job *profile.Job) error {
	if candidate == nil || job == nil {
		return fmt.Errorf("%w: candidate and job are required", profile.ErrInvalidProfile)
	}
	if err := candidate.Validate(); err != nil {
		return err
	}
	return job.Validate()
}

// ScoreBehavioral is the pillar compatibility mean plus the archetype boost, capped at 100.
func ScoreBehavioral(candidate *profile.Candidate, job *profile.Job) BehavioralBreakdown {
	pillars := PillarCompatibilities(candidate.PillarScores, job.PillarScores)
	b := BehavioralBreakdown{
		Pillars:            pillars,
		Base:               BaseBehavioralScore(pillars),
		CandidateArchetype: candidate.Archetype,
		JobArchetype:       job.Archetype,
		ArchetypeRelation:  archetype.Relate(candidate.Archetype, job.Archetype),
		ArchetypeBoost:     archetype.Boost(candidate.Archetype, job.Archetype),
	}
	b.Score = clampScore(b.Base + float64(b.ArchetypeBoost))
	return b
}
