// Package sources implements the external data parsers feeding the catalog
// sync pipeline.
//
// Two sources exist: [LinguistSource] fetches and filters the language
// classification dataset (a remote YAML document), [TagSource] pages through
// the tag popularity API. Both produce normalized in-memory candidate records
// ([models.ParsedLanguage], [models.ParsedSkill]) and know nothing about
// persistence. Classification and enrichment happen here, against an injected
// [taxonomy.Tables].
package sources
