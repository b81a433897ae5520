package esg

// Aggregate reduces many results into one synthetic municipal result by
// averaging each category's percentage. It returns false when results is
// empty so callers cannot mistake "no respondents" for "everyone scored 0%".
//
// Every result weighs the same regardless of how many questions its
// respondent answered. A category absent from a result counts as 0%. Each
// category's max is its nominal question count and its score is derived from
// the averaged percentage.
func Aggregate(catalog Catalog, results []AssessmentResult) (AssessmentResult, bool) {
	if len(results) == 0 {
		return AssessmentResult{}, false
	}

	agg := AssessmentResult{
		CategoryScores: make(map[string]CategoryScore, len(catalog.Categories)),
	}
	n := float64(len(results))

	for _, cat := range catalog.Categories {
		var sum float64
		for _, r := range results {
			sum += r.CategoryScores[cat.ID].Percentage
		}
		avg := sum / n
		nominal := float64(len(cat.Questions))
		cs := CategoryScore{
			Score:      avg / 100 * nominal,
			Max:        nominal,
			Percentage: avg,
		}
		agg.CategoryScores[cat.ID] = cs
		agg.TotalScore += cs.Score
		agg.MaxScore += cs.Max
	}

	agg.Percentage = percentage(agg.TotalScore, agg.MaxScore)
	agg.Level = TierFor(agg.Percentage)
	return agg, true
}
