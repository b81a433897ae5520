// Package esg holds the municipal ESG self-assessment core: the questionnaire
// catalog, the scoring engine, the action plan generator and the aggregator.
//
// Every function in this package is pure. Catalogs, answers and results are
// never mutated; each call allocates fresh output, so callers may share
// inputs across goroutines without locking.
package esg

import "strings"

// Answer is a respondent's reply to a single question.
type Answer string

const (
	AnswerYes     Answer = "sim"
	AnswerPartial Answer = "parcial"
	AnswerNo      Answer = "nao"
	// AnswerNotApplicable is accepted on input but never counted.
	AnswerNotApplicable Answer = "na"
)

// ParseAnswer normalizes a raw answer value. ok is false for anything outside
// the closed set.
func ParseAnswer(raw string) (Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sim", "yes":
		return AnswerYes, true
	case "parcial", "partial":
		return AnswerPartial, true
	case "nao", "não", "no":
		return AnswerNo, true
	case "na", "n/a", "nao_se_aplica":
		return AnswerNotApplicable, true
	}
	return "", false
}

// credit returns the numerator/denominator contribution of an answer.
// counted is false when the answer must be left out of both.
func (a Answer) credit() (score float64, counted bool) {
	switch a {
	case AnswerYes:
		return 1, true
	case AnswerPartial:
		return 0.5, true
	case AnswerNo:
		return 0, true
	}
	return 0, false
}

// AnswersState maps question id to answer. A missing key means unanswered.
type AnswersState map[string]Answer

// Tier is a maturity classification derived from a percentage.
type Tier string

const (
	TierCritical  Tier = "critico"
	TierRegular   Tier = "regular"
	TierExcellent Tier = "excelente"
)

const (
	excellentThreshold = 80.0
	regularThreshold   = 40.0
)

// TierFor classifies a percentage. Lower bounds are inclusive.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= excellentThreshold:
		return TierExcellent
	case percentage >= regularThreshold:
		return TierRegular
	default:
		return TierCritical
	}
}

// Label returns the display name of the tier.
func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excelente"
	case TierRegular:
		return "Regular"
	default:
		return "Crítico"
	}
}

// TimeFrame is an action plan horizon.
type TimeFrame string

const (
	TimeFrameImmediate TimeFrame = "imediato"
	TimeFrameShort     TimeFrame = "curto"
	TimeFrameMedium    TimeFrame = "medio"
	TimeFrameLong      TimeFrame = "longo"
	TimeFrameStrategic TimeFrame = "estrategico"
)

// TimeFrames lists every horizon in canonical display order.
func TimeFrames() []TimeFrame {
	return []TimeFrame{
		TimeFrameImmediate,
		TimeFrameShort,
		TimeFrameMedium,
		TimeFrameLong,
		TimeFrameStrategic,
	}
}

// Label returns the display name of the horizon.
func (tf TimeFrame) Label() string {
	switch tf {
	case TimeFrameImmediate:
		return "Imediato (1 mês)"
	case TimeFrameShort:
		return "Curto prazo (3 meses)"
	case TimeFrameMedium:
		return "Médio prazo (6 meses)"
	case TimeFrameLong:
		return "Longo prazo (1 ano)"
	case TimeFrameStrategic:
		return "Estratégico (5 anos)"
	}
	return string(tf)
}

// Responsible returns the municipal role that owns actions in this horizon.
func (tf TimeFrame) Responsible() string {
	switch tf {
	case TimeFrameImmediate:
		return "Gabinete do Prefeito"
	case TimeFrameShort:
		return "Coordenação Técnica ESG"
	case TimeFrameMedium:
		return "Secretaria de Planejamento"
	case TimeFrameLong:
		return "Secretaria Executiva"
	case TimeFrameStrategic:
		return "Prefeito e Câmara Municipal"
	}
	return "Coordenação Técnica ESG"
}

// Priority of an action plan item.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// CategoryScore is the accumulated credit of one category.
type CategoryScore struct {
	Score      float64 `json:"score"`
	Max        float64 `json:"max"`
	Percentage float64 `json:"percentage"`
}

// AssessmentResult is the scored outcome of one or many assessments.
type AssessmentResult struct {
	TotalScore     float64                  `json:"totalScore"`
	MaxScore       float64                  `json:"maxScore"`
	Percentage     float64                  `json:"percentage"`
	Level          Tier                     `json:"level"`
	CategoryScores map[string]CategoryScore `json:"categoryScores"`
}

// ActionPlanItem is one generated action.
type ActionPlanItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timeline    TimeFrame `json:"timeline"`
	Responsible string    `json:"responsible"`
	Impact      string    `json:"impact"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
}

func percentage(score, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return score / max * 100
}
