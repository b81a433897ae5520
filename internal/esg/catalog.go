package esg

import (
	"fmt"
	"regexp"
)

// Question is a single yes/partial/no item of the questionnaire.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Category groups questions under a titled dimension.
type Category struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Catalog is the ordered questionnaire definition.
type Catalog struct {
	Categories []Category `json:"categories"`
}

var ordinalPrefix = regexp.MustCompile(`^\s*\d+\.\s*`)

// DisplayName returns the category title without a leading "<n>. " ordinal.
func (c Category) DisplayName() string {
	return ordinalPrefix.ReplaceAllString(c.Title, "")
}

// Question looks up a question by id.
func (c Catalog) Question(id string) (Question, bool) {
	for _, cat := range c.Categories {
		for _, q := range cat.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// Category looks up a category by id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// QuestionCount returns the number of questions across all categories.
func (c Catalog) QuestionCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Questions)
	}
	return n
}

// Validate checks id uniqueness and that every question names its owner.
func (c Catalog) Validate() error {
	categories := make(map[string]bool, len(c.Categories))
	questions := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %q has an empty id", cat.Title)
		}
		if categories[cat.ID] {
			return fmt.Errorf("duplicate category id %q", cat.ID)
		}
		categories[cat.ID] = true
		for _, q := range cat.Questions {
			if q.ID == "" {
				return fmt.Errorf("category %q has a question with an empty id", cat.ID)
			}
			if questions[q.ID] {
				return fmt.Errorf("duplicate question id %q", q.ID)
			}
			if q.Category != cat.ID {
				return fmt.Errorf("question %q belongs to %q but is listed under %q", q.ID, q.Category, cat.ID)
			}
			questions[q.ID] = true
		}
	}
	return nil
}
