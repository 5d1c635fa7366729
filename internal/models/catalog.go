package models

import (
	"fmt"
	"time"
)

// SkillType is the fixed classification category for a [TechSkill].
type SkillType string

const (
	SkillFramework   SkillType = "FRAMEWORK"
	SkillLibrary     SkillType = "LIBRARY"
	SkillTool        SkillType = "TOOL"
	SkillDatabase    SkillType = "DATABASE"
	SkillMethodology SkillType = "METHODOLOGY"
	SkillPlatform    SkillType = "PLATFORM"
	SkillOther       SkillType = "OTHER"
)

// Valid reports whether t is one of the enumerated skill types.
func (t SkillType) Valid() bool {
	switch t {
	case SkillFramework, SkillLibrary, SkillTool, SkillDatabase, SkillMethodology, SkillPlatform, SkillOther:
		return true
	}
	return false
}

// ParseSkillType maps a string onto a [SkillType], defaulting to [SkillOther]
// for anything outside the enumeration.
func ParseSkillType(s string) SkillType {
	t := SkillType(s)
	if !t.Valid() {
		return SkillOther
	}
	return t
}

// TechArea is the taxonomy root. The type string is the unique natural key
// (e.g. "DEVELOPMENT"); rows are upserted from a static seed list and never deleted.
type TechArea struct {
	ID     string
	Type   string
	NameEn string
	NamePt string
	Icon   string
	Color  string
	Order  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *TechArea) Key() string { return a.Type }

func (a *TechArea) Validate() error {
	if a.Type == "" {
		return fmt.Errorf("area type is required")
	}
	if a.NameEn == "" || a.NamePt == "" {
		return fmt.Errorf("area %s: both display names are required", a.Type)
	}
	return nil
}

// TechNiche is the second taxonomy level. Every niche belongs to exactly one
// area via AreaType; Slug is the unique natural key.
type TechNiche struct {
	ID       string
	Slug     string
	AreaType string
	NameEn   string
	NamePt   string
	Icon     string
	Order    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *TechNiche) Key() string { return n.Slug }

func (n *TechNiche) Validate() error {
	if n.Slug == "" {
		return fmt.Errorf("niche slug is required")
	}
	if n.AreaType == "" {
		return fmt.Errorf("niche %s: area type is required", n.Slug)
	}
	if n.NameEn == "" || n.NamePt == "" {
		return fmt.Errorf("niche %s: both display names are required", n.Slug)
	}
	return nil
}

// ProgrammingLanguage is a canonical language record. Slug is the unique
// natural key; Popularity comes from the fixed ranking list (0 when unranked).
type ProgrammingLanguage struct {
	ID             string
	Slug           string
	NameEn         string
	NameLocal      string
	Color          string // empty when the source provides none
	Website        string
	Aliases        []string
	FileExtensions []string
	Paradigms      []string
	Typing         string // "static", "dynamic", "gradual" or empty
	Popularity     int
	IsActive       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *ProgrammingLanguage) Key() string { return l.Slug }

func (l *ProgrammingLanguage) Validate() error {
	if l.Slug == "" {
		return fmt.Errorf("language slug is required")
	}
	if l.NameEn == "" {
		return fmt.Errorf("language %s: name is required", l.Slug)
	}
	if l.Popularity < 0 {
		return fmt.Errorf("language %s: popularity must be non-negative", l.Slug)
	}
	return nil
}

// TechSkill is a canonical skill record. Slug is the unique natural key.
// NicheID is a weak reference resolved from a niche slug at upsert time and
// left empty when the lookup misses. Popularity is the source occurrence count.
type TechSkill struct {
	ID         string
	Slug       string
	NameEn     string
	NamePt     string
	Type       SkillType
	NicheID    string
	Color      string
	Aliases    []string
	Keywords   []string
	Popularity int
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *TechSkill) Key() string { return s.Slug }

func (s *TechSkill) Validate() error {
	if s.Slug == "" {
		return fmt.Errorf("skill slug is required")
	}
	if s.NameEn == "" {
		return fmt.Errorf("skill %s: name is required", s.Slug)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("skill %s: invalid type %q", s.Slug, s.Type)
	}
	if s.Popularity < 0 {
		return fmt.Errorf("skill %s: popularity must be non-negative", s.Slug)
	}
	return nil
}
