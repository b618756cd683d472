// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - ParseService: ingest, parse and cache export documents
//   - SettingsService: typed access to the configuration file
package services
