package esg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlan_Completeness(t *testing.T) {
	catalog := DefaultCatalog()
	result := Score(catalog, AnswersState{"governanca_1": AnswerYes, "clima_2": AnswerPartial})

	plan := GeneratePlan(catalog, DefaultRules(), result)

	require.Len(t, plan, 5*len(catalog.Categories))
	seen := map[string]map[TimeFrame]int{}
	for _, item := range plan {
		if seen[item.Category] == nil {
			seen[item.Category] = map[TimeFrame]int{}
		}
		seen[item.Category][item.Timeline]++
	}
	for _, cat := range catalog.Categories {
		for _, tf := range TimeFrames() {
			assert.Equal(t, 1, seen[cat.ID][tf], "%s/%s", cat.ID, tf)
		}
	}
}

func TestGeneratePlan_BlocksKeepCanonicalTimeFrameOrder(t *testing.T) {
	catalog := DefaultCatalog()
	plan := GeneratePlan(catalog, DefaultRules(), Score(catalog, nil))

	timeFrames := TimeFrames()
	for i, item := range plan {
		assert.Equal(t, timeFrames[i%5], item.Timeline, "item %d", i)
		assert.Equal(t, plan[i-i%5].Category, item.Category, "item %d", i)
	}
}

func TestGeneratePlan_NoPlaceholderLeak(t *testing.T) {
	catalog := DefaultCatalog()
	rules := DefaultRules()
	answerSets := []AnswersState{
		{},
		allAnswered(catalog, AnswerYes),
		allAnswered(catalog, AnswerPartial),
		allAnswered(catalog, AnswerNo),
	}
	for _, answers := range answerSets {
		for _, item := range GeneratePlan(catalog, rules, Score(catalog, answers)) {
			assert.NotContains(t, item.Title, Placeholder)
			assert.NotContains(t, item.Description, Placeholder)
		}
	}
}

func TestGeneratePlan_UnansweredCategoryStillPlanned(t *testing.T) {
	catalog := singleCategoryCatalog()
	result := Score(catalog, AnswersState{})

	plan := GeneratePlan(catalog, DefaultRules(), result)

	require.Len(t, plan, 5)
	for _, item := range plan {
		assert.Equal(t, "cat", item.Category)
		assert.Equal(t, ImpactFor(TierCritical), item.Impact)
		assert.Equal(t, DefaultRules().Default[TierCritical][item.Timeline].Priority, item.Priority)
		assert.Contains(t, item.Description, "Categoria Teste")
		assert.NotContains(t, item.Description, "1. Categoria Teste")
	}
}

func TestGeneratePlan_WeakestCategoryFirst(t *testing.T) {
	catalog := twoCategoryCatalog()
	answers := AnswersState{
		// a: 1/5 = 20%
		"a1": AnswerYes, "a2": AnswerNo, "a3": AnswerNo, "a4": AnswerNo, "a5": AnswerNo,
		// b: 4.5/5 = 90%
		"b1": AnswerYes, "b2": AnswerYes, "b3": AnswerYes, "b4": AnswerYes, "b5": AnswerPartial,
	}
	catalog.Categories[0], catalog.Categories[1] = catalog.Categories[1], catalog.Categories[0]
	result := Score(catalog, answers)
	require.Equal(t, 20.0, result.CategoryScores["a"].Percentage)
	require.Equal(t, 90.0, result.CategoryScores["b"].Percentage)

	plan := GeneratePlan(catalog, DefaultRules(), result)

	require.Len(t, plan, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, "a", plan[i].Category)
		assert.Equal(t, ImpactFor(TierCritical), plan[i].Impact)
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, "b", plan[i].Category)
		assert.Equal(t, ImpactFor(TierExcellent), plan[i].Impact)
	}
}

func TestGeneratePlan_TiesKeepCatalogOrder(t *testing.T) {
	catalog := twoCategoryCatalog()
	plan := GeneratePlan(catalog, DefaultRules(), Score(catalog, nil))

	assert.Equal(t, "a", plan[0].Category)
	assert.Equal(t, "b", plan[5].Category)
}

func TestGeneratePlan_ResponsibleDependsOnTimeFrameOnly(t *testing.T) {
	catalog := DefaultCatalog()
	plan := GeneratePlan(catalog, DefaultRules(), Score(catalog, allAnswered(catalog, AnswerPartial)))

	for _, item := range plan {
		assert.Equal(t, item.Timeline.Responsible(), item.Responsible)
	}
	assert.Equal(t, "Gabinete do Prefeito", TimeFrameImmediate.Responsible())
	assert.Equal(t, "Prefeito e Câmara Municipal", TimeFrameStrategic.Responsible())
}

func TestGeneratePlan_CategorySpecificRules(t *testing.T) {
	catalog := Catalog{Categories: []Category{
		{ID: "governanca", Title: "1. Governança e Transparência", Questions: []Question{
			{ID: "g1", Category: "governanca"},
		}},
	}}
	rules := DefaultRules()

	plan := GeneratePlan(catalog, rules, Score(catalog, AnswersState{"g1": AnswerNo}))

	want := rules.Categories["governanca"][TierCritical][TimeFrameImmediate]
	assert.Equal(t, strings.ReplaceAll(want.Title, Placeholder, "Governança e Transparência"), plan[0].Title)
	assert.Equal(t, want.Priority, plan[0].Priority)
}

func TestGeneratePlan_MissingTierFallsBackToDefault(t *testing.T) {
	catalog := Catalog{Categories: []Category{
		{ID: "governanca", Title: "Governança", Questions: []Question{{ID: "g1", Category: "governanca"}}},
	}}
	rules := DefaultRules()
	_, hasRegular := rules.Categories["governanca"][TierRegular]
	require.False(t, hasRegular)

	plan := GeneratePlan(catalog, rules, Score(catalog, AnswersState{"g1": AnswerPartial}))

	for _, item := range plan {
		want := rules.Default[TierRegular][item.Timeline]
		assert.Equal(t, strings.ReplaceAll(want.Title, Placeholder, "Governança"), item.Title)
		assert.Equal(t, ImpactFor(TierRegular), item.Impact)
	}
}

func TestGeneratePlan_EmptyRuleTable(t *testing.T) {
	catalog := twoCategoryCatalog()
	plan := GeneratePlan(catalog, RuleTable{}, Score(catalog, nil))

	require.Len(t, plan, 10)
	for _, item := range plan {
		assert.NotEmpty(t, item.Title)
		assert.NotContains(t, item.Title, Placeholder)
		assert.NotContains(t, item.Description, Placeholder)
		assert.Equal(t, PriorityHigh, item.Priority)
	}
}

func TestGeneratePlan_FromAggregate(t *testing.T) {
	catalog := singleCategoryCatalog()
	results := []AssessmentResult{
		{CategoryScores: map[string]CategoryScore{"cat": {Percentage: 30}}},
		{CategoryScores: map[string]CategoryScore{"cat": {Percentage: 50}}},
		{CategoryScores: map[string]CategoryScore{"cat": {Percentage: 70}}},
	}
	agg, ok := Aggregate(catalog, results)
	require.True(t, ok)

	plan := GeneratePlan(catalog, DefaultRules(), agg)

	require.Len(t, plan, 5)
	for _, item := range plan {
		assert.Equal(t, ImpactFor(TierRegular), item.Impact)
	}
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	catalog := DefaultCatalog()
	result := Score(catalog, AnswersState{"ambiental_1": AnswerYes, "residuos_2": AnswerNo})

	assert.Equal(t, GeneratePlan(catalog, DefaultRules(), result), GeneratePlan(catalog, DefaultRules(), result))
}

func TestGroupByTimeFrame(t *testing.T) {
	catalog := twoCategoryCatalog()
	plan := GeneratePlan(catalog, DefaultRules(), Score(catalog, nil))

	groups := GroupByTimeFrame(plan)

	require.Len(t, groups, 5)
	for i, g := range groups {
		assert.Equal(t, TimeFrames()[i], g.TimeFrame)
		require.Len(t, g.Items, 2)
		assert.Equal(t, "a", g.Items[0].Category)
		assert.Equal(t, "b", g.Items[1].Category)
	}
}

func TestGroupByTimeFrame_Empty(t *testing.T) {
	groups := GroupByTimeFrame(nil)

	require.Len(t, groups, 5)
	for _, g := range groups {
		assert.Empty(t, g.Items)
		assert.NotEmpty(t, g.Label)
	}
}

func allAnswered(catalog Catalog, answer Answer) AnswersState {
	answers := AnswersState{}
	for _, cat := range catalog.Categories {
		for _, q := range cat.Questions {
			answers[q.ID] = answer
		}
	}
	return answers
}
