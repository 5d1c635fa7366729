package models

// Model defines the base interface for all persistent catalog entities.
// Implementations include TechArea, TechNiche, ProgrammingLanguage and TechSkill.
type Model interface {
	Key() string     // Key returns the natural slug identifying this record within its family
	Validate() error // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for slug-keyed catalog persistence.
// Implementations handle database interactions for specific entity types.
type Repository[T Model] interface {
	Upsert(model T) (bool, error) // Upsert inserts or fully overwrites by slug; true means a new row was inserted
	GetBySlug(slug string) (T, error)
	List() ([]T, error)
}
