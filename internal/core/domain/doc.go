// Package domain defines the core business entities for Dossier.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PromptDefinition: A pre-authored research prompt with instructions
//   - TemplateDictionary: Placeholder substitutions applied to prompt text
//   - Category: The term-table selector for query enrichment
//   - SearchRequest / SearchResponse: The backend search contract
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
