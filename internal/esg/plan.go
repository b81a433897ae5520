package esg

import "sort"

// GeneratePlan builds the action plan for a result: five actions per catalog
// category, weakest categories first, horizons in canonical order.
func GeneratePlan(catalog Catalog, rules RuleTable, result AssessmentResult) []ActionPlanItem {
	categories := make([]Category, len(catalog.Categories))
	copy(categories, catalog.Categories)
	sort.SliceStable(categories, func(i, j int) bool {
		return result.CategoryScores[categories[i].ID].Percentage <
			result.CategoryScores[categories[j].ID].Percentage
	})

	timeFrames := TimeFrames()
	plan := make([]ActionPlanItem, 0, len(categories)*len(timeFrames))
	for _, cat := range categories {
		tier := result.CategoryTier(cat.ID)
		name := cat.DisplayName()
		impact := ImpactFor(tier)
		for _, tf := range timeFrames {
			cell := rules.Cell(cat.ID, tier, tf)
			plan = append(plan, ActionPlanItem{
				Title:       render(cell.Title, name),
				Description: render(cell.Description, name),
				Timeline:    tf,
				Responsible: tf.Responsible(),
				Impact:      impact,
				Priority:    cell.Priority,
				Category:    cat.ID,
			})
		}
	}
	return plan
}

// TimeFrameGroup is the slice of a plan that falls in one horizon.
type TimeFrameGroup struct {
	TimeFrame TimeFrame        `json:"timeframe"`
	Label     string           `json:"label"`
	Items     []ActionPlanItem `json:"items"`
}

// GroupByTimeFrame buckets a plan by horizon in canonical order, keeping the
// plan order inside each bucket. Empty horizons are still returned.
func GroupByTimeFrame(plan []ActionPlanItem) []TimeFrameGroup {
	timeFrames := TimeFrames()
	index := make(map[TimeFrame]int, len(timeFrames))
	groups := make([]TimeFrameGroup, len(timeFrames))
	for i, tf := range timeFrames {
		index[tf] = i
		groups[i] = TimeFrameGroup{TimeFrame: tf, Label: tf.Label(), Items: []ActionPlanItem{}}
	}
	for _, item := range plan {
		i, ok := index[item.Timeline]
		if !ok {
			continue
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
