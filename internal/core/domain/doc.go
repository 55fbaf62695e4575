// Package domain defines the core business entities for Quarry.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A text document travelling the preprocessing pipeline
//   - Entity: A canonical, deduplicated real-world referent
//   - EntityOccurrence: A mention of an entity at a token offset
//   - Chunk: A token-range projection of a document
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
