package catalog

import (
	"github.com/octopus-synapse/techcatalog/internal/models"
)

// AreaView is the public shape for a taxonomy root.
type AreaView struct {
	Type   string `json:"type"`
	NameEn string `json:"name_en"`
	NamePt string `json:"name_pt"`
	Icon   string `json:"icon,omitempty"`
	Color  string `json:"color,omitempty"`
	Order  int    `json:"order"`
}

// NicheView is the public shape for a second-level taxonomy entry.
type NicheView struct {
	Slug     string `json:"slug"`
	AreaType string `json:"area_type"`
	NameEn   string `json:"name_en"`
	NamePt   string `json:"name_pt"`
	Icon     string `json:"icon,omitempty"`
	Order    int    `json:"order"`
}

// LanguageView is the public shape for a programming language.
type LanguageView struct {
	Slug           string   `json:"slug"`
	NameEn         string   `json:"name_en"`
	NameLocal      string   `json:"name_local"`
	Color          string   `json:"color,omitempty"`
	Website        string   `json:"website,omitempty"`
	Aliases        []string `json:"aliases"`
	FileExtensions []string `json:"file_extensions"`
	Paradigms      []string `json:"paradigms"`
	Typing         string   `json:"typing,omitempty"`
	Popularity     int      `json:"popularity"`
}

// SkillView is the public shape for a tech skill.
type SkillView struct {
	Slug       string   `json:"slug"`
	NameEn     string   `json:"name_en"`
	NamePt     string   `json:"name_pt"`
	Type       string   `json:"type"`
	Color      string   `json:"color,omitempty"`
	Aliases    []string `json:"aliases"`
	Keywords   []string `json:"keywords"`
	Popularity int      `json:"popularity"`
}

// SearchResult is the combined search shape: the caller's limit is split
// evenly between the two families.
type SearchResult struct {
	Languages []LanguageView `json:"languages"`
	Skills    []SkillView    `json:"skills"`
}

func toAreaView(a *models.TechArea) AreaView {
	return AreaView{Type: a.Type, NameEn: a.NameEn, NamePt: a.NamePt, Icon: a.Icon, Color: a.Color, Order: a.Order}
}

func toNicheView(n *models.TechNiche) NicheView {
	return NicheView{Slug: n.Slug, AreaType: n.AreaType, NameEn: n.NameEn, NamePt: n.NamePt, Icon: n.Icon, Order: n.Order}
}

func toLanguageView(l *models.ProgrammingLanguage) LanguageView {
	return LanguageView{
		Slug:           l.Slug,
		NameEn:         l.NameEn,
		NameLocal:      l.NameLocal,
		Color:          l.Color,
		Website:        l.Website,
		Aliases:        l.Aliases,
		FileExtensions: l.FileExtensions,
		Paradigms:      l.Paradigms,
		Typing:         l.Typing,
		Popularity:     l.Popularity,
	}
}

func toSkillView(s *models.TechSkill) SkillView {
	return SkillView{
		Slug:       s.Slug,
		NameEn:     s.NameEn,
		NamePt:     s.NamePt,
		Type:       string(s.Type),
		Color:      s.Color,
		Aliases:    s.Aliases,
		Keywords:   s.Keywords,
		Popularity: s.Popularity,
	}
}
