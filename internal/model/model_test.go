package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"esg-maturity-backend/internal/esg"
)

func TestAssessment_AnswersState(t *testing.T) {
	a := Assessment{Answers: []AnswerRecord{
		{QuestionID: "q1", Answer: "sim"},
		{QuestionID: "q2", Answer: "parcial"},
		{QuestionID: "q3", Answer: "desconhecido"},
	}}

	state := a.AnswersState()

	assert.Equal(t, esg.AnswersState{"q1": esg.AnswerYes, "q2": esg.AnswerPartial}, state)
}

func TestAssessment_ResultRoundTrip(t *testing.T) {
	result := esg.AssessmentResult{
		TotalScore: 3.5,
		MaxScore:   5,
		Percentage: 70,
		Level:      esg.TierRegular,
		CategoryScores: map[string]esg.CategoryScore{
			"social": {Score: 3.5, Max: 5, Percentage: 70},
		},
	}
	var a Assessment

	a.ApplyResult(result)

	assert.Equal(t, "regular", a.Level)
	assert.Equal(t, result, a.Result())
	assert.False(t, a.IsCompleted())
	a.Status = StatusCompleted
	assert.True(t, a.IsCompleted())
}
