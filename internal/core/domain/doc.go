// Package domain defines the core entities for wxr.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Result: The cross-referenced model of one WordPress export
//   - Post: A content item, with its comments, raw meta and resolved fields
//   - FieldDefinition: An Advanced Custom Fields schema entry
//   - RawDocument: Opaque bytes from an ingestor
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
