package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format      OutputFormat
		valid       bool
		description string
	}{
		{OutputFormatJSON, true, "JSON"},
		{OutputFormatYAML, true, "YAML"},
		{OutputFormat("xml"), false, "Unknown"},
		{OutputFormat(""), false, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
			assert.Equal(t, tt.description, tt.format.Description())
			assert.Equal(t, string(tt.format), tt.format.String())
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, OutputFormatJSON, s.Output.Format)
	assert.True(t, s.Output.Indent)
	assert.False(t, s.Log.Verbose)
	assert.Equal(t, 10*time.Minute, s.Cache.TTL)
	assert.Equal(t, 500*time.Millisecond, s.Watch.Interval)
}
