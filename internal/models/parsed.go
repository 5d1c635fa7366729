package models

// ParsedLanguage is a normalized candidate record produced by the language
// dataset parser. It carries no persistence identity; the slug is matched
// against the store during upsert.
type ParsedLanguage struct {
	Slug           string
	NameEn         string
	NameLocal      string
	Color          string
	Website        string
	Aliases        []string
	FileExtensions []string
	Paradigms      []string
	Typing         string
	Popularity     int
}

// ParsedSkill is a normalized, classified candidate record produced by the
// tag popularity parser. NicheSlug is resolved to a niche row id at upsert
// time; an empty value means the classifier had no niche for this skill.
type ParsedSkill struct {
	Slug       string
	NameEn     string
	NamePt     string
	Type       SkillType
	NicheSlug  string
	Color      string
	Aliases    []string
	Keywords   []string
	Popularity int
}

// SyncResult aggregates per-family counters and stage errors for one sync run.
// It is returned to the caller and never persisted. Errors holds one message
// per failed stage; a partially successful run is the expected outcome when a
// source is unavailable.
type SyncResult struct {
	AreasCreated      int      `json:"areas_created"`
	NichesCreated     int      `json:"niches_created"`
	LanguagesInserted int      `json:"languages_inserted"`
	LanguagesUpdated  int      `json:"languages_updated"`
	SkillsInserted    int      `json:"skills_inserted"`
	SkillsUpdated     int      `json:"skills_updated"`
	Errors            []string `json:"errors,omitempty"`
}

// Ok reports whether the run completed without any stage failures.
func (r *SyncResult) Ok() bool { return len(r.Errors) == 0 }
