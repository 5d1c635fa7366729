// Package taxonomy holds the static classification data for the tech catalog
// and the pure resolvers built on top of it.
//
// All lookup tables (category sub-maps, translations, colors, aliases,
// keywords, language metadata, the popularity ranking and the area/niche
// seeds) are assembled once by [Load] into an immutable [Tables] value that is
// injected into the parsers and the sync engine. Nothing in this package
// mutates state after Load returns, which keeps classification deterministic
// and trivially testable.
package taxonomy
