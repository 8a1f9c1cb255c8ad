package archetype

// NarrativeRecord is the fixed descriptive text attached to an archetype.
type NarrativeRecord struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

var genericNarrative = NarrativeRecord{
	Title:           "Perfil em construção",
	Summary:         "A profile that does not fit a single dominant pattern.",
	Strengths:       []string{"Adaptability across contexts"},
	Risks:           []string{"Unclear priorities when choosing roles"},
	Recommendations: []string{"Revisit the assessment after a few months of work experience"},
}

var narratives = map[string]NarrativeRecord{
	Protagonista: {
		Title:           "O Protagonista",
		Summary:         "Driven by growth and rewarded results; takes ownership of ambitious goals.",
		Strengths:       []string{"Initiative", "Results orientation", "Comfort with visibility"},
		Risks:           []string{"Impatience with slow processes", "Overlooks team dynamics"},
		Recommendations: []string{"Roles with clear growth tracks and variable pay", "Pair with collaborative peers"},
	},
	Construtor: {
		Title:           "O Construtor",
		Summary:         "Grows by building things together with a trusted team.",
		Strengths:       []string{"Team cohesion", "Steady learning", "Reliability"},
		Risks:           []string{"Avoids conflict", "Slower to take solo risks"},
		Recommendations: []string{"Squads with long-lived ownership", "Mentoring programs"},
	},
	Guardiao: {
		Title:           "O Guardião",
		Summary:         "Values stability, fair compensation and a safe working environment.",
		Strengths:       []string{"Consistency", "Risk awareness", "Loyalty"},
		Risks:           []string{"Resistance to change", "Low appetite for ambiguity"},
		Recommendations: []string{"Established companies with structured benefits", "Clear processes"},
	},
	Equilibrado: {
		Title:           "O Equilibrado",
		Summary:         "No pillar dominates; adapts to a wide range of cultures.",
		Strengths:       []string{"Versatility", "Balanced judgement"},
		Risks:           []string{"Hard to motivate with a single lever"},
		Recommendations: []string{"Generalist roles", "Rotations across teams"},
	},
	Colaborador: {
		Title:           "O Colaborador",
		Summary:         "Motivated by people and by a shared purpose.",
		Strengths:       []string{"Empathy", "Cooperation", "Engagement with the mission"},
		Risks:           []string{"Difficulty saying no", "Underestimates own value"},
		Recommendations: []string{"Cross-functional teams", "Mission-driven organizations"},
	},
	IdealistaPuro: {
		Title:           "O Idealista Puro",
		Summary:         "Purpose outweighs every other factor by a wide margin.",
		Strengths:       []string{"Conviction", "Resilience for a cause"},
		Risks:           []string{"Frustration in commercial settings", "Burnout"},
		Recommendations: []string{"NGOs, social impact and education", "Explicit impact metrics"},
	},
	Mobilizador: {
		Title:           "O Mobilizador",
		Summary:         "Seeks growth and energizes the people around them.",
		Strengths:       []string{"Influence", "Energy", "Learning agility"},
		Risks:           []string{"Spreads attention too thin"},
		Recommendations: []string{"Team lead tracks", "Change management initiatives"},
	},
	Estrategista: {
		Title:           "O Estrategista",
		Summary:         "Connects purpose with sustainable financial outcomes.",
		Strengths:       []string{"Long-term thinking", "Business acumen"},
		Risks:           []string{"Over-analysis"},
		Recommendations: []string{"Strategy and product roles", "Impact businesses"},
	},
	Realizador: {
		Title:           "O Realizador",
		Summary:         "Turns ambition into delivery; compensation tracks progress.",
		Strengths:       []string{"Execution", "Goal focus"},
		Risks:           []string{"Short-term bias"},
		Recommendations: []string{"Target-based roles", "Fast-paced companies"},
	},
	Explorador: {
		Title:           "O Explorador",
		Summary:         "Learns continuously in pursuit of meaningful challenges.",
		Strengths:       []string{"Curiosity", "Autonomy", "Innovation"},
		Risks:           []string{"Boredom with routine"},
		Recommendations: []string{"R&D and innovation teams", "Startups"},
	},
	Mentor: {
		Title:           "O Mentor",
		Summary:         "Finds purpose in developing people and healthy teams.",
		Strengths:       []string{"Coaching", "Listening", "Culture building"},
		Risks:           []string{"Neglects own career goals"},
		Recommendations: []string{"People leadership", "Learning and development"},
	},
	Visionario: {
		Title:           "O Visionário",
		Summary:         "Combines a strong sense of purpose with the drive to grow.",
		Strengths:       []string{"Vision", "Inspiration", "Boldness"},
		Risks:           []string{"Detachment from execution details"},
		Recommendations: []string{"Founding or early-stage roles", "Innovation leadership"},
	},
	Conciliador: {
		Title:           "O Conciliador",
		Summary:         "Prioritizes harmony at work backed by fair reward.",
		Strengths:       []string{"Mediation", "Stability in teams"},
		Risks:           []string{"Avoids necessary confrontation"},
		Recommendations: []string{"Client-facing and support roles", "Stable cultures"},
	},
	Pragmatico: {
		Title:           "O Pragmático",
		Summary:         "Weighs purpose and pay with a practical mindset.",
		Strengths:       []string{"Objectivity", "Negotiation"},
		Risks:           []string{"Seen as transactional"},
		Recommendations: []string{"Roles with transparent compensation policies"},
	},
}

// Narrative returns the fixed narrative of an archetype, or a generic one for names
// outside the set.
func Narrative(name string) NarrativeRecord {
	if n, ok := narratives[name]; ok {
		return n
	}
	return genericNarrative
}
