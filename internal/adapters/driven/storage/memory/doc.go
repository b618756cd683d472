// Package memory provides in-process implementations of driven ports.
//
// Adapters:
//   - ResultStore: expiring cache of parse results
//   - ConfigStore: map-backed configuration, used in tests
package memory
