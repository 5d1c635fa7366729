package taxonomy

import (
	"strings"

	"github.com/octopus-synapse/techcatalog/internal/models"
)

// Classify resolves a raw tag and its normalized slug to a skill category.
//
// Lookup order: exact match on the lowercased raw tag, then exact match on
// the slug, then the OTHER default with no niche. Pure function over the
// static tables; the same input always yields the same result.
func (t *Tables) Classify(tag, slug string) Category {
	if cat, ok := t.categories[strings.ToLower(tag)]; ok {
		return cat
	}
	if cat, ok := t.categories[slug]; ok {
		return cat
	}
	return Category{Type: models.SkillOther}
}

// SkillDisplayName resolves the English display name for a tag using the
// same two-tier (raw tag, then slug) fallback as Classify. The empty string
// means no override exists and the caller should format the raw name.
func (t *Tables) SkillDisplayName(tag, slug string) string {
	if name, ok := t.displayNames[strings.ToLower(tag)]; ok {
		return name
	}
	return t.displayNames[slug]
}

// SkillTranslation resolves the Portuguese display name for a tag, two-tier
// fallback as above. Empty when the tag has no translation (brand names keep
// their English form).
func (t *Tables) SkillTranslation(tag, slug string) string {
	if name, ok := t.translations[strings.ToLower(tag)]; ok {
		return name
	}
	return t.translations[slug]
}

// SkillColor resolves the brand color for a tag, empty when unknown.
func (t *Tables) SkillColor(tag, slug string) string {
	if color, ok := t.colors[strings.ToLower(tag)]; ok {
		return color
	}
	return t.colors[slug]
}

// SkillAliases returns the static alias set for a slug, nil when none exist.
func (t *Tables) SkillAliases(slug string) []string {
	return t.aliases[slug]
}

// SkillKeywords returns the static keyword set for a slug, nil when none exist.
func (t *Tables) SkillKeywords(slug string) []string {
	return t.keywords[slug]
}
