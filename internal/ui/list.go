package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/octopus-synapse/techcatalog/internal/catalog"
)

var (
	_ list.Item = areaItem{}
	_ list.Item = nicheItem{}
	_ list.Item = skillItem{}
	_ list.Item = languageItem{}
)

// areaItem wraps [catalog.AreaView] to implement [list.Item].
type areaItem struct {
	area catalog.AreaView
}

func (i areaItem) FilterValue() string { return i.area.NameEn }
func (i areaItem) Title() string       { return i.area.NameEn }
func (i areaItem) Description() string { return i.area.NamePt }

// nicheItem wraps [catalog.NicheView] to implement [list.Item].
type nicheItem struct {
	niche catalog.NicheView
}

func (i nicheItem) FilterValue() string { return i.niche.NameEn }
func (i nicheItem) Title() string       { return i.niche.NameEn }
func (i nicheItem) Description() string { return i.niche.NamePt }

// skillItem wraps [catalog.SkillView] to implement [list.Item].
type skillItem struct {
	skill catalog.SkillView
}

func (i skillItem) FilterValue() string { return i.skill.NameEn }
func (i skillItem) Title() string       { return i.skill.NameEn }
func (i skillItem) Description() string {
	desc := fmt.Sprintf("%s • popularity %d", i.skill.Type, i.skill.Popularity)
	if len(i.skill.Aliases) > 0 {
		desc = fmt.Sprintf("%s • aka %s", desc, strings.Join(i.skill.Aliases, ", "))
	}
	return desc
}

// languageItem wraps [catalog.LanguageView] to implement [list.Item].
type languageItem struct {
	language catalog.LanguageView
}

func (i languageItem) FilterValue() string { return i.language.NameEn }
func (i languageItem) Title() string       { return i.language.NameEn }
func (i languageItem) Description() string {
	parts := []string{}
	if i.language.Typing != "" {
		parts = append(parts, i.language.Typing+" typing")
	}
	if len(i.language.Paradigms) > 0 {
		parts = append(parts, strings.Join(i.language.Paradigms, ", "))
	}
	parts = append(parts, fmt.Sprintf("popularity %d", i.language.Popularity))
	return strings.Join(parts, " • ")
}
