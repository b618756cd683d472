package domain

import "time"

const unknownDescription = "Unknown"

// OutputFormat selects how parse results are encoded.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatJSON encodes results as JSON.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML encodes results as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatJSON:
		return "JSON"
	case OutputFormatYAML:
		return "YAML"
	default:
		return unknownDescription
	}
}

// OutputSettings controls result encoding.
type OutputSettings struct {
	Format OutputFormat
	Indent bool
}

// LogSettings controls diagnostic output.
type LogSettings struct {
	Verbose bool
}

// CacheSettings controls the in-process result cache.
type CacheSettings struct {
	// TTL is how long a parsed result stays available to the MCP server.
	TTL time.Duration
}

// WatchSettings controls the watch command.
type WatchSettings struct {
	// Interval is the minimum spacing between two re-parses.
	Interval time.Duration
}

// Settings holds all user-configurable options.
type Settings struct {
	Output OutputSettings
	Log    LogSettings
	Cache  CacheSettings
	Watch  WatchSettings
}

// DefaultSettings returns settings with default values.
func DefaultSettings() Settings {
	return Settings{
		Output: OutputSettings{
			Format: OutputFormatJSON,
			Indent: true,
		},
		Cache: CacheSettings{
			TTL: 10 * time.Minute,
		},
		Watch: WatchSettings{
			Interval: 500 * time.Millisecond,
		},
	}
}
