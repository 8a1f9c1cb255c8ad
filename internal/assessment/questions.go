// Package assessment turns raw questionnaire answers into candidate pillar scores.
package assessment

import "github.com/ravyz/matcher/internal/profile"

// Question is a single Likert item of the candidate questionnaire.
type Question struct {
	ID            string         `json:"id"`
	Pillar        profile.Pillar `json:"pillar"`
	IsContrasting bool           `json:"is_contrasting"`
	Text          string         `json:"text"`
}

const (
	MinAnswer = 1
	MaxAnswer = 5
)

// Questions is the fixed catalogue: 7 compensation, 7 ambiente, 7 proposito and
// 9 crescimento items. q6, q14, q20 and q28 are reverse-scored.
var Questions = []Question{
	{ID: "q1", Pillar: profile.Compensation, Text: "Um salário acima da média é decisivo na escolha de uma vaga."},
	{ID: "q2", Pillar: profile.Compensation, Text: "Benefícios como plano de saúde e previdência pesam muito para mim."},
	{ID: "q3", Pillar: profile.Compensation, Text: "Prefiro remuneração variável atrelada a metas."},
	{ID: "q4", Pillar: profile.Compensation, Text: "Estabilidade financeira é minha prioridade profissional."},
	{ID: "q5", Pillar: profile.Compensation, Text: "Eu trocaria de empresa por um aumento significativo."},
	{ID: "q6", Pillar: profile.Compensation, IsContrasting: true, Text: "Aceitaria ganhar menos para trabalhar em algo que amo."},
	{ID: "q7", Pillar: profile.Compensation, Text: "Negocio ativamente meu salário e meus reajustes."},

	{ID: "q8", Pillar: profile.Ambiente, Text: "Um bom relacionamento com a equipe é essencial para mim."},
	{ID: "q9", Pillar: profile.Ambiente, Text: "Valorizo líderes acessíveis e abertos ao diálogo."},
	{ID: "q10", Pillar: profile.Ambiente, Text: "Prefiro ambientes colaborativos a ambientes competitivos."},
	{ID: "q11", Pillar: profile.Ambiente, Text: "Flexibilidade de horário influencia minha satisfação."},
	{ID: "q12", Pillar: profile.Ambiente, Text: "A cultura da empresa pesa tanto quanto o cargo."},
	{ID: "q13", Pillar: profile.Ambiente, Text: "Sinto-me mais produtivo quando confio nos colegas."},
	{ID: "q14", Pillar: profile.Ambiente, IsContrasting: true, Text: "Consigo render bem mesmo em um ambiente hostil."},

	{ID: "q15", Pillar: profile.Proposito, Text: "Preciso acreditar na missão da empresa em que trabalho."},
	{ID: "q16", Pillar: profile.Proposito, Text: "Quero que meu trabalho gere impacto positivo na sociedade."},
	{ID: "q17", Pillar: profile.Proposito, Text: "Valores éticos da empresa são inegociáveis para mim."},
	{ID: "q18", Pillar: profile.Proposito, Text: "Busco tarefas que tenham significado pessoal."},
	{ID: "q19", Pillar: profile.Proposito, Text: "Gosto de inspirar pessoas em torno de uma causa."},
	{ID: "q20", Pillar: profile.Proposito, IsContrasting: true, Text: "O propósito da empresa pouco importa se o trabalho for bom."},
	{ID: "q21", Pillar: profile.Proposito, Text: "Sustentabilidade e diversidade influenciam minhas escolhas."},

	{ID: "q22", Pillar: profile.Crescimento, Text: "Quero assumir novos desafios com frequência."},
	{ID: "q23", Pillar: profile.Crescimento, Text: "Um plano de carreira claro é fundamental para mim."},
	{ID: "q24", Pillar: profile.Crescimento, Text: "Invisto tempo próprio em cursos e certificações."},
	{ID: "q25", Pillar: profile.Crescimento, Text: "Busco posições de liderança no médio prazo."},
	{ID: "q26", Pillar: profile.Crescimento, Text: "Prefiro empresas que investem no desenvolvimento dos funcionários."},
	{ID: "q27", Pillar: profile.Crescimento, Text: "Gosto de ter autonomia para propor e testar ideias."},
	{ID: "q28", Pillar: profile.Crescimento, IsContrasting: true, Text: "Prefiro permanecer na mesma função por muitos anos."},
	{ID: "q29", Pillar: profile.Crescimento, Text: "Feedback constante me ajuda a evoluir."},
	{ID: "q30", Pillar: profile.Crescimento, Text: "Aceito riscos em troca de crescimento acelerado."},
}

var (
	questionsByID = indexQuestions()

	// consistencyProbes holds the direct items compared against each pillar's
	// contrasting item by ValidateConsistency.
	consistencyProbes = map[profile.Pillar]probe{
		profile.Compensation: {direct: []string{"q1", "q4", "q5"}, contrasting: "q6"},
		profile.Ambiente:     {direct: []string{"q8", "q10", "q13"}, contrasting: "q14"},
		profile.Proposito:    {direct: []string{"q15", "q16", "q18"}, contrasting: "q20"},
		profile.Crescimento:  {direct: []string{"q22", "q23", "q27"}, contrasting: "q28"},
	}
)

type probe struct {
	direct      []string
	contrasting string
}

func indexQuestions() map[string]Question {
	byID := make(map[string]Question, len(Questions))
	for _, q := range Questions {
		byID[q.ID] = q
	}
	return byID
}

// Lookup returns the question with the given id.
func Lookup(id string) (Question, bool) {
	q, ok := questionsByID[id]
	return q, ok
}

// IsContrasting reports whether the question id is reverse-scored.
func IsContrasting(id string) bool {
	return questionsByID[id].IsContrasting
}

// QuestionsFor returns the questions of a pillar in catalogue order.
func QuestionsFor(pillar profile.Pillar) []Question {
	result := make([]Question, 0, 9)
	for _, q := range Questions {
		if q.Pillar == pillar {
			result = append(result, q)
		}
	}
	return result
}
