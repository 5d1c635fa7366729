// Package models defines domain entities and persistence interfaces for the tech catalog.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): in-memory candidate records produced by the source parsers
//   - [ParsedLanguage] : normalized programming language from the language dataset
//   - [ParsedSkill] : normalized, classified skill from the tag popularity API
//   - [SyncResult] : ephemeral per-run counters and stage errors
//
// 2. Persistent Entities: database-backed catalog rows keyed by natural slugs
//   - [TechArea] : taxonomy root (development, infrastructure, ...)
//   - [TechNiche] : second taxonomy level, owned by exactly one area
//   - [ProgrammingLanguage] : canonical language record
//   - [TechSkill] : canonical skill record with optional niche link
//
// All persistent entities implement the Model interface providing natural-key access and validation.
// The Repository[T] interface defines the slug-keyed upsert contract used by the sync pipeline.
package models
