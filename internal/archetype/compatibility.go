package archetype

// Relation describes how a job archetype relates to a candidate archetype.
type Relation string

const (
	RelationExact    Relation = "exact"
	RelationAdjacent Relation = "adjacent"
	RelationNone     Relation = "none"
)

const (
	ExactBoost    = 10
	AdjacentBoost = 5
)

// adjacency lists, per candidate archetype, the job archetypes considered compatible.
// Lists are intentionally not mirrored: A listing B says nothing about B listing A.
var adjacency = map[string][]string{
	Protagonista:  {Realizador, Mobilizador, Explorador},
	Construtor:    {Colaborador, Mobilizador, Realizador},
	Guardiao:      {Pragmatico, Conciliador},
	Equilibrado:   {Colaborador, Conciliador, Construtor},
	Colaborador:   {Construtor, Mentor, Conciliador},
	IdealistaPuro: {Visionario, Mentor},
	Mobilizador:   {Protagonista, Construtor, Explorador},
	Estrategista:  {Visionario, Pragmatico},
	Realizador:    {Pragmatico, Construtor},
	Explorador:    {Visionario, Protagonista},
	Mentor:        {Colaborador, IdealistaPuro},
	Visionario:    {Explorador, Estrategista},
	Conciliador:   {Colaborador, Guardiao},
	Pragmatico:    {Guardiao, Realizador},
}

// Compatible returns the archetypes listed as compatible with the given one.
func Compatible(name string) []string {
	list := adjacency[name]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Relate classifies the relation between a candidate and a job archetype.
// Empty names never match.
func Relate(candidate, job string) Relation {
	if candidate == "" || job == "" {
		return RelationNone
	}
	if candidate == job {
		return RelationExact
	}
	for _, name := range adjacency[candidate] {
		if name == job {
			return RelationAdjacent
		}
	}
	return RelationNone
}

// Boost returns the additive behavioral bonus for an archetype pair: 10 for an exact
// match, 5 when the job archetype is in the candidate's list, 0 otherwise.
func Boost(candidate, job string) int {
	switch Relate(candidate, job) {
	case RelationExact:
		return ExactBoost
	case RelationAdjacent:
		return AdjacentBoost
	default:
		return 0
	}
}
