package esg

import "strings"

// Placeholder is replaced by the category display name in rule templates.
const Placeholder = "{cat}"

// RuleCell is the template for one action in one horizon.
type RuleCell struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// RuleSet holds the five horizon cells of one (entity, tier) pair.
type RuleSet map[TimeFrame]RuleCell

// RuleTable is the static plan configuration. Categories overrides Default
// for the categories it names.
type RuleTable struct {
	Default    map[Tier]RuleSet            `json:"default"`
	Categories map[string]map[Tier]RuleSet `json:"categories"`
}

// Cell resolves the template for a category, tier and horizon, falling back
// to the default rule set and finally to a generic cell.
func (t RuleTable) Cell(categoryID string, tier Tier, tf TimeFrame) RuleCell {
	if byTier, ok := t.Categories[categoryID]; ok {
		if cell, ok := byTier[tier][tf]; ok {
			return cell
		}
	}
	if cell, ok := t.Default[tier][tf]; ok {
		return cell
	}
	return genericCell(tier, tf)
}

func genericCell(tier Tier, tf TimeFrame) RuleCell {
	priority := PriorityMedium
	switch tier {
	case TierCritical:
		priority = PriorityHigh
	case TierExcellent:
		priority = PriorityLow
	}
	return RuleCell{
		Title:       "Plano de ação em {cat}",
		Description: "Definir e executar ações de " + strings.ToLower(tf.Label()) + " para a área de {cat}.",
		Priority:    priority,
	}
}

// ImpactFor describes the expected outcome of acting on a tier.
func ImpactFor(tier Tier) string {
	switch tier {
	case TierExcellent:
		return "Inovação e legado: consolida a liderança do município e gera referência para outras gestões."
	case TierRegular:
		return "Eficiência operacional: melhora processos existentes e amplia resultados com os recursos atuais."
	default:
		return "Mitigação de riscos: reduz a exposição legal, financeira e reputacional do município."
	}
}

func render(template, category string) string {
	return strings.ReplaceAll(template, Placeholder, category)
}
