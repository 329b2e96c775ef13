package classifier

import (
	"strings"

	"campaign_pulse/internal/domain"
	"campaign_pulse/internal/textutil"
)

const (
	keywordConfidence  = 1.0
	catchAllConfidence = 0.5
)

// themeKeywords maps each theme to its trigger words, stored without accents
// so matching happens on folded text.
var themeKeywords = map[domain.Theme][]string{
	domain.ThemeSaude: {
		"saude", "hospital", "medico", "sus", "vacina", "remedio", "enfermeiro",
		"clinica", "atendimento", "posto", "ubs", "farmacia", "doenca", "pandemia", "leito",
	},
	domain.ThemeSeguranca: {
		"seguranca", "policia", "violencia", "crime", "assalto", "roubo", "droga",
		"trafico", "guarda", "pm", "delegacia", "preso", "arma", "homicidio", "patrulha",
	},
	domain.ThemeEducacao: {
		"educacao", "escola", "professor", "ensino", "aluno", "universidade", "creche",
		"aula", "estudante", "faculdade", "merenda", "alfabetizacao", "bolsa", "enem", "pedagogia",
	},
	domain.ThemeEconomia: {
		"economia", "imposto", "salario", "preco", "inflacao", "comercio", "industria",
		"pib", "taxa", "renda", "cesta", "dinheiro", "custo", "mercado", "investimento",
	},
	domain.ThemeInfraestrutura: {
		"obra", "asfalto", "saneamento", "rua", "ponte", "transporte", "onibus",
		"estrada", "agua", "esgoto", "iluminacao", "pavimentacao", "buraco", "moradia", "habitacao",
	},
	domain.ThemeCorrupcao: {
		"corrupcao", "roubo", "desvio", "propina", "lavagem", "fraude", "improbidade",
		"nepotismo", "superfaturamento", "licitacao", "corrupto", "caixa", "mafia", "investigacao", "denuncia",
	},
	domain.ThemeEmprego: {
		"emprego", "trabalho", "desemprego", "carteira", "vaga", "contratacao", "salario",
		"clt", "informal", "renda", "capacitacao", "curso", "profissional", "oportunidade", "demissao",
	},
	domain.ThemeMeioAmbiente: {
		"ambiente", "lixo", "poluicao", "verde", "reciclagem", "desmatamento", "rio",
		"agua", "ecologia", "sustentabilidade", "queimada", "floresta", "clima", "parque", "saneamento",
	},
}

// MatchThemes assigns keyword themes to a text. Matching is substring based
// over the folded text, at most one tag per theme. A text matching nothing
// gets the catch-all theme at half confidence.
func MatchThemes(text string) []domain.ThemeTag {
	folded := textutil.Fold(text)

	var tags []domain.ThemeTag
	for _, theme := range domain.Themes {
		keywords := themeKeywords[theme]
		if len(keywords) == 0 {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(folded, kw) {
				tags = append(tags, domain.ThemeTag{
					Theme:      theme,
					Confidence: keywordConfidence,
					Method:     domain.MethodKeyword,
				})
				break
			}
		}
	}

	if len(tags) == 0 {
		tags = append(tags, domain.ThemeTag{
			Theme:      domain.ThemeOutros,
			Confidence: catchAllConfidence,
			Method:     domain.MethodKeyword,
		})
	}

	return tags
}
