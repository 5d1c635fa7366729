// Package repositories provides the persistence layer for the tech catalog.
//
// Each repository implements models.Repository[T] for one entity family over
// database/sql, with slug-keyed idempotent upserts: an existing row is fully
// overwritten (not merged), a missing row is inserted with a generated id.
// Read methods filter soft-deactivated rows and return listings in the order
// the read layer serves them (popularity descending, or taxonomy display
// order).
package repositories
