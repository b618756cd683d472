// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Ingestor: Fetches the bytes of an export (file, stdin)
//   - DocumentParser: Builds a resolved Result from raw bytes
//   - ResultStore: Keeps recent results addressable by document ID
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or parser package
package driven
