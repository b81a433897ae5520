package esg

// ruleSet assigns cells to horizons in canonical order.
func ruleSet(immediate, short, medium, long, strategic RuleCell) RuleSet {
	return RuleSet{
		TimeFrameImmediate: immediate,
		TimeFrameShort:     short,
		TimeFrameMedium:    medium,
		TimeFrameLong:      long,
		TimeFrameStrategic: strategic,
	}
}

func cell(priority Priority, title, description string) RuleCell {
	return RuleCell{Title: title, Description: description, Priority: priority}
}

// DefaultRules returns the built-in action plan rule table. Each call returns
// a fresh copy.
func DefaultRules() RuleTable {
	return RuleTable{
		Default: map[Tier]RuleSet{
			TierCritical: ruleSet(
				cell(PriorityHigh, "Diagnóstico emergencial de {cat}",
					"Levantar a situação atual de {cat}, identificar lacunas legais e nomear um responsável pela área."),
				cell(PriorityHigh, "Plano de correção em {cat}",
					"Elaborar um plano de ação com metas mensuráveis para corrigir as principais falhas em {cat}."),
				cell(PriorityHigh, "Estruturação de processos de {cat}",
					"Formalizar procedimentos, normas e rotinas mínimas de {cat} com apoio técnico."),
				cell(PriorityMedium, "Institucionalização de {cat}",
					"Incorporar as metas de {cat} ao PPA e à LOA, garantindo orçamento recorrente."),
				cell(PriorityMedium, "Política municipal de {cat}",
					"Aprovar lei ou decreto que estabeleça a política municipal de {cat} com indicadores de longo prazo."),
			),
			TierRegular: ruleSet(
				cell(PriorityMedium, "Revisão das práticas de {cat}",
					"Revisar as práticas existentes de {cat} e priorizar as lacunas de maior impacto."),
				cell(PriorityMedium, "Indicadores de {cat}",
					"Definir indicadores de desempenho para {cat} e iniciar o monitoramento periódico."),
				cell(PriorityMedium, "Otimização de processos de {cat}",
					"Padronizar e digitalizar os processos de {cat} para ganhar eficiência."),
				cell(PriorityLow, "Capacitação em {cat}",
					"Promover capacitação das equipes envolvidas em {cat} e compartilhar boas práticas."),
				cell(PriorityLow, "Certificação em {cat}",
					"Buscar certificações ou selos reconhecidos que atestem o avanço em {cat}."),
			),
			TierExcellent: ruleSet(
				cell(PriorityLow, "Comunicação dos resultados de {cat}",
					"Divulgar à população os resultados alcançados em {cat}."),
				cell(PriorityLow, "Inovação em {cat}",
					"Identificar projetos inovadores que ampliem os resultados de {cat}."),
				cell(PriorityMedium, "Parcerias em {cat}",
					"Firmar parcerias com universidades, empresas e organismos internacionais para {cat}."),
				cell(PriorityLow, "Referência regional em {cat}",
					"Compartilhar a experiência de {cat} com municípios vizinhos e consórcios."),
				cell(PriorityLow, "Legado em {cat}",
					"Consolidar {cat} como política de Estado, blindada contra descontinuidade entre gestões."),
			),
		},
		Categories: map[string]map[Tier]RuleSet{
			"governanca": {
				TierCritical: ruleSet(
					cell(PriorityHigh, "Nomeação do comitê de {cat}",
						"Instituir por portaria um comitê responsável por {cat} e publicar seus membros."),
					cell(PriorityHigh, "Adequação do portal da transparência",
						"Atualizar o portal da transparência e os canais de ouvidoria, atendendo às exigências mínimas de {cat}."),
					cell(PriorityHigh, "Programa de integridade",
						"Implantar programa de integridade com código de conduta e canal de denúncias para reforçar {cat}."),
					cell(PriorityMedium, "Gestão por indicadores",
						"Implantar painel de indicadores de gestão com publicação periódica, consolidando {cat}."),
					cell(PriorityMedium, "Política ESG municipal",
						"Aprovar a política ESG municipal com metas de {cat} vinculadas ao planejamento plurianual."),
				),
				TierExcellent: ruleSet(
					cell(PriorityLow, "Relatório público de {cat}",
						"Publicar relatório anual de sustentabilidade destacando os avanços em {cat}."),
					cell(PriorityLow, "Dados abertos",
						"Ampliar a oferta de dados abertos e APIs públicas relacionadas a {cat}."),
					cell(PriorityMedium, "Orçamento participativo digital",
						"Implantar orçamento participativo digital como evolução de {cat}."),
					cell(PriorityLow, "Rede de municípios íntegros",
						"Liderar uma rede regional de boas práticas em {cat}."),
					cell(PriorityLow, "Reconhecimento internacional em {cat}",
						"Candidatar o município a premiações e padrões internacionais de {cat}."),
				),
			},
			"ambiental": {
				TierCritical: ruleSet(
					cell(PriorityHigh, "Levantamento de passivos ambientais",
						"Mapear passivos e riscos ambientais e definir responsáveis pela área de {cat}."),
					cell(PriorityHigh, "Estruturação do licenciamento",
						"Estruturar o licenciamento e a fiscalização ambiental municipal como base de {cat}."),
					cell(PriorityHigh, "Plano municipal de meio ambiente",
						"Elaborar o plano municipal de meio ambiente com metas para {cat}."),
					cell(PriorityMedium, "Monitoramento ambiental",
						"Implantar monitoramento contínuo da qualidade do ar e da água como parte de {cat}."),
					cell(PriorityMedium, "Fundo municipal de meio ambiente",
						"Criar ou reativar o fundo municipal de meio ambiente para financiar {cat}."),
				),
				TierRegular: ruleSet(
					cell(PriorityMedium, "Revisão do plano de {cat}",
						"Revisar o plano vigente de {cat} à luz dos indicadores atuais."),
					cell(PriorityMedium, "Arborização urbana",
						"Ampliar o programa de arborização e de áreas verdes, fortalecendo {cat}."),
					cell(PriorityMedium, "Educação ambiental",
						"Integrar a educação ambiental ao currículo das escolas municipais como ação de {cat}."),
					cell(PriorityLow, "Digitalização do licenciamento",
						"Digitalizar o licenciamento ambiental para reduzir prazos em {cat}."),
					cell(PriorityLow, "Corredores ecológicos",
						"Planejar corredores ecológicos e unidades de conservação no âmbito de {cat}."),
				),
			},
			"social": {
				TierCritical: ruleSet(
					cell(PriorityHigh, "Mapeamento de vulnerabilidades",
						"Mapear territórios e populações vulneráveis para orientar as ações de {cat}."),
					cell(PriorityHigh, "Reativação dos conselhos",
						"Reativar os conselhos participativos municipais relacionados a {cat}."),
					cell(PriorityHigh, "Acessibilidade dos serviços",
						"Adequar a acessibilidade dos equipamentos públicos, priorizando a área de {cat}."),
					cell(PriorityMedium, "Programas de emprego e renda",
						"Estruturar programas de emprego e renda voltados às populações vulneráveis dentro de {cat}."),
					cell(PriorityMedium, "Política de equidade",
						"Aprovar política municipal de equidade de gênero e raça como eixo de {cat}."),
				),
			},
		},
	}
}
