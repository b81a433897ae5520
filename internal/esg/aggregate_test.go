package esg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	agg, ok := Aggregate(DefaultCatalog(), nil)

	assert.False(t, ok)
	assert.Nil(t, agg.CategoryScores)
}

func TestAggregate_AveragesPercentages(t *testing.T) {
	catalog := singleCategoryCatalog()
	results := []AssessmentResult{
		{CategoryScores: map[string]CategoryScore{"cat": {Score: 0.6, Max: 2, Percentage: 30}}},
		{CategoryScores: map[string]CategoryScore{"cat": {Score: 1, Max: 2, Percentage: 50}}},
		{CategoryScores: map[string]CategoryScore{"cat": {Score: 0.7, Max: 1, Percentage: 70}}},
	}

	agg, ok := Aggregate(catalog, results)

	require.True(t, ok)
	cs := agg.CategoryScores["cat"]
	assert.InDelta(t, 50.0, cs.Percentage, 1e-9)
	assert.Equal(t, 2.0, cs.Max)
	assert.InDelta(t, 1.0, cs.Score, 1e-9)
	assert.InDelta(t, 50.0, agg.Percentage, 1e-9)
	assert.Equal(t, TierRegular, agg.Level)
	assert.Equal(t, TierRegular, agg.CategoryTier("cat"))
}

func TestAggregate_MissingCategoryCountsAsZero(t *testing.T) {
	catalog := twoCategoryCatalog()
	results := []AssessmentResult{
		{CategoryScores: map[string]CategoryScore{"a": {Percentage: 100}, "b": {Percentage: 80}}},
		{CategoryScores: map[string]CategoryScore{"a": {Percentage: 60}}},
	}

	agg, ok := Aggregate(catalog, results)

	require.True(t, ok)
	assert.InDelta(t, 80.0, agg.CategoryScores["a"].Percentage, 1e-9)
	assert.InDelta(t, 40.0, agg.CategoryScores["b"].Percentage, 1e-9)
	assert.InDelta(t, 60.0, agg.Percentage, 1e-9)
	assert.Equal(t, 10.0, agg.MaxScore)
}

func TestAggregate_Additivity(t *testing.T) {
	catalog := DefaultCatalog()
	results := []AssessmentResult{
		Score(catalog, allAnswered(catalog, AnswerYes)),
		Score(catalog, allAnswered(catalog, AnswerPartial)),
		Score(catalog, AnswersState{"clima_1": AnswerNo}),
	}

	agg, ok := Aggregate(catalog, results)
	require.True(t, ok)

	var score, max float64
	for _, cs := range agg.CategoryScores {
		score += cs.Score
		max += cs.Max
		assert.GreaterOrEqual(t, cs.Percentage, 0.0)
		assert.LessOrEqual(t, cs.Percentage, 100.0)
	}
	assert.InDelta(t, score, agg.TotalScore, 1e-9)
	assert.Equal(t, max, agg.MaxScore)
	assert.Equal(t, float64(catalog.QuestionCount()), agg.MaxScore)
}

func TestAggregate_ZeroQuestionCategory(t *testing.T) {
	catalog := Catalog{Categories: []Category{{ID: "empty", Title: "Vazia"}}}
	agg, ok := Aggregate(catalog, []AssessmentResult{Score(catalog, nil)})

	require.True(t, ok)
	assert.Equal(t, CategoryScore{}, agg.CategoryScores["empty"])
	assert.Zero(t, agg.Percentage)
	assert.Equal(t, TierCritical, agg.Level)
}
