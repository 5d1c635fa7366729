package sources

import (
	"context"

	"github.com/octopus-synapse/techcatalog/internal/models"
)

// LanguageSource fetches and normalizes programming language candidates.
type LanguageSource interface {
	// Languages fetches the remote dataset and returns kept entries sorted
	// by popularity descending. Any fetch or parse failure fails the whole
	// call; no partial list is returned.
	Languages(ctx context.Context) ([]models.ParsedLanguage, error)
}

// SkillSource fetches and normalizes classified skill candidates.
type SkillSource interface {
	// Skills pages through the remote tag API and returns deduplicated,
	// classified entries. Pagination failures end collection early but keep
	// already-fetched pages; only a failure on the first page is an error.
	Skills(ctx context.Context) ([]models.ParsedSkill, error)
}
