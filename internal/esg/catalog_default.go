package esg

import "strconv"

func newCategory(id, title string, texts ...string) Category {
	cat := Category{ID: id, Title: title, Questions: make([]Question, 0, len(texts))}
	for i, text := range texts {
		cat.Questions = append(cat.Questions, Question{
			ID:       id + "_" + strconv.Itoa(i+1),
			Text:     text,
			Category: id,
		})
	}
	return cat
}

// DefaultCatalog returns the built-in municipal ESG questionnaire. Each call
// returns a fresh copy.
func DefaultCatalog() Catalog {
	return Catalog{Categories: []Category{
		newCategory("governanca", "1. Governança e Transparência",
			"O município possui uma política ESG formalmente aprovada e publicada?",
			"Existe um comitê ou instância responsável pelo acompanhamento da agenda ESG?",
			"O portal da transparência publica dados orçamentários atualizados mensalmente?",
			"Há canais de ouvidoria com prazos de resposta definidos e monitorados?",
			"O município mantém um programa de integridade e prevenção à corrupção?",
			"Os indicadores de desempenho da gestão são divulgados à população?",
		),
		newCategory("ambiental", "2. Gestão Ambiental",
			"O município possui plano municipal de meio ambiente vigente?",
			"Existe licenciamento ambiental municipal estruturado?",
			"Há programa de arborização urbana e proteção de áreas verdes?",
			"O município monitora a qualidade do ar e da água?",
			"Existem ações de educação ambiental nas escolas municipais?",
			"Há fiscalização ambiental com equipe própria?",
		),
		newCategory("clima", "3. Mudanças Climáticas e Energia",
			"O município realizou inventário de emissões de gases de efeito estufa?",
			"Existe plano de adaptação e resiliência a eventos climáticos extremos?",
			"Os prédios públicos adotam medidas de eficiência energética?",
			"O município utiliza fontes renováveis de energia em equipamentos públicos?",
			"A iluminação pública foi modernizada para tecnologia LED?",
		),
		newCategory("social", "4. Responsabilidade Social",
			"O município possui políticas de inclusão para pessoas com deficiência?",
			"Há programas de geração de emprego e renda para populações vulneráveis?",
			"Existem ações afirmativas de equidade de gênero e raça na gestão pública?",
			"O município mantém conselhos participativos ativos?",
			"A rede de saúde e assistência social cobre todos os bairros?",
			"Há programas de capacitação continuada para servidores?",
		),
		newCategory("residuos", "5. Resíduos e Saneamento",
			"O município possui plano de gestão integrada de resíduos sólidos?",
			"Existe coleta seletiva em operação?",
			"Há parceria com cooperativas de catadores?",
			"A destinação final dos resíduos é feita em aterro sanitário licenciado?",
			"O município possui plano municipal de saneamento básico atualizado?",
		),
		newCategory("economia", "6. Economia e Compras Sustentáveis",
			"As licitações incluem critérios de sustentabilidade?",
			"Há incentivo a fornecedores locais e pequenos negócios nas compras públicas?",
			"O município apoia iniciativas de economia circular?",
			"Existem incentivos fiscais vinculados a práticas sustentáveis?",
		),
	}}
}
