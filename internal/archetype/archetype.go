// Package archetype classifies candidate pillar scores into a discrete archetype and
// relates archetypes to each other.
package archetype

// Archetype names. The set is closed: Classify only ever returns one of these.
const (
	Protagonista  = "Protagonista"
	Construtor    = "Construtor"
	Guardiao      = "Guardião"
	Equilibrado   = "Equilibrado"
	Colaborador   = "Colaborador"
	IdealistaPuro = "Idealista Puro"
	Mobilizador   = "Mobilizador"
	Estrategista  = "Estrategista"
	Realizador    = "Realizador"
	Explorador    = "Explorador"
	Mentor        = "Mentor"
	Visionario    = "Visionário"
	Conciliador   = "Conciliador"
	Pragmatico    = "Pragmático"
)

// Fallback is returned for dominant pillar pairs missing from the table.
const Fallback = Colaborador

// All lists every archetype in a stable order.
var All = []string{
	Protagonista, Construtor, Guardiao, Equilibrado, Colaborador, IdealistaPuro, Mobilizador,
	Estrategista, Realizador, Explorador, Mentor, Visionario, Conciliador, Pragmatico,
}

// Known reports whether name belongs to the archetype set.
func Known(name string) bool {
	_, ok := narratives[name]
	return ok
}
