package esg

// Score computes category and overall maturity for a set of answers.
//
// Unanswered questions, N/A answers and values outside the closed answer set
// contribute to neither score nor max. Score never fails.
func Score(catalog Catalog, answers AnswersState) AssessmentResult {
	result := AssessmentResult{
		CategoryScores: make(map[string]CategoryScore, len(catalog.Categories)),
	}

	for _, cat := range catalog.Categories {
		var cs CategoryScore
		for _, q := range cat.Questions {
			answer, ok := answers[q.ID]
			if !ok {
				continue
			}
			credit, counted := answer.credit()
			if !counted {
				continue
			}
			cs.Score += credit
			cs.Max++
		}
		cs.Percentage = percentage(cs.Score, cs.Max)

		result.CategoryScores[cat.ID] = cs
		result.TotalScore += cs.Score
		result.MaxScore += cs.Max
	}

	result.Percentage = percentage(result.TotalScore, result.MaxScore)
	result.Level = TierFor(result.Percentage)
	return result
}

// CategoryTier classifies one category of a result. Categories missing from
// the result are treated as 0%.
func (r AssessmentResult) CategoryTier(categoryID string) Tier {
	return TierFor(r.CategoryScores[categoryID].Percentage)
}
