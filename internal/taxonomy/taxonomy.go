package taxonomy

import (
	"github.com/octopus-synapse/techcatalog/internal/models"
)

// Category is the classification a raw tag resolves to: a skill type plus an
// optional niche slug.
type Category struct {
	Type  models.SkillType
	Niche string
}

// LanguageMeta is static per-language metadata that the remote dataset does
// not carry.
type LanguageMeta struct {
	Paradigms []string
	Typing    string
	Website   string
}

// AreaSeed describes one taxonomy root row.
type AreaSeed struct {
	Type   string
	NameEn string
	NamePt string
	Icon   string
	Color  string
	Order  int
}

// NicheSeed describes one second-level taxonomy row.
type NicheSeed struct {
	Slug     string
	AreaType string
	NameEn   string
	NamePt   string
	Icon     string
	Order    int
}

// Tables is the immutable classification dataset. Construct with [Load] and
// share freely; all accessors are read-only.
type Tables struct {
	categories    map[string]Category
	displayNames  map[string]string
	translations  map[string]string
	colors        map[string]string
	aliases       map[string][]string
	keywords      map[string][]string
	languageMeta  map[string]LanguageMeta
	languageNames map[string]string
	ranking       map[string]int
	areas         []AreaSeed
	niches        []NicheSeed
}

// Load assembles the full classification dataset.
//
// The category table is merged from the thematic sub-maps in a fixed order.
// On a duplicate key the FIRST registration wins; Go map literals would give
// last-wins semantics, so the merge is an explicit loop. Changing the order
// below changes classification results.
func Load() *Tables {
	subMaps := []map[string]Category{
		frameworkCategories,
		databaseCategories,
		devopsCategories,
		dataAICategories,
		testingCategories,
		designCategories,
		securityCategories,
		collaborationCategories,
		libraryCategories,
		methodologyCategories,
		blockchainCategories,
		ideCategories,
	}

	categories := make(map[string]Category)
	for _, sub := range subMaps {
		for key, cat := range sub {
			if _, exists := categories[key]; !exists {
				categories[key] = cat
			}
		}
	}

	ranking := make(map[string]int, len(languageRanking))
	for i, name := range languageRanking {
		if _, exists := ranking[name]; !exists {
			ranking[name] = i
		}
	}

	return &Tables{
		categories:    categories,
		displayNames:  skillDisplayNames,
		translations:  skillTranslations,
		colors:        skillColors,
		aliases:       skillAliases,
		keywords:      skillKeywords,
		languageMeta:  languageMetadata,
		languageNames: languageTranslations,
		ranking:       ranking,
		areas:         areaSeeds,
		niches:        nicheSeeds,
	}
}

// Areas returns the static area seed list in display order.
func (t *Tables) Areas() []AreaSeed { return t.areas }

// Niches returns the static niche seed list in display order.
func (t *Tables) Niches() []NicheSeed { return t.niches }

// LanguageMeta returns static paradigm/typing/website metadata for a language
// display name. The zero value is returned for unknown languages.
func (t *Tables) LanguageMeta(name string) LanguageMeta {
	return t.languageMeta[name]
}

// LanguageName returns the localized display name for a language, falling
// back to the original name when no translation exists.
func (t *Tables) LanguageName(name string) string {
	if local, ok := t.languageNames[name]; ok {
		return local
	}
	return name
}

// LanguagePopularity scores a language from the fixed ranking list:
// 1000 minus its index when ranked, 0 otherwise. Ranked languages therefore
// always sort strictly above the unranked floor, in list order.
func (t *Tables) LanguagePopularity(name string) int {
	if idx, ok := t.ranking[name]; ok {
		return 1000 - idx
	}
	return 0
}
