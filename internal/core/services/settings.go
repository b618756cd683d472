package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/wxr-cli/internal/core/domain"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wxr-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyOutputFormat  = "output.format"
	KeyOutputIndent  = "output.indent"
	KeyLogVerbose    = "log.verbose"
	KeyCacheTTL      = "cache.ttl"
	KeyWatchInterval = "watch.interval"
)

var settingKeys = []string{KeyOutputFormat, KeyOutputIndent, KeyLogVerbose, KeyCacheTTL, KeyWatchInterval}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	return &domain.Settings{
		Output: domain.OutputSettings{
			Format: s.getFormat(defaults.Output.Format),
			Indent: s.getBool(KeyOutputIndent, defaults.Output.Indent),
		},
		Log: domain.LogSettings{
			Verbose: s.getBool(KeyLogVerbose, defaults.Log.Verbose),
		},
		Cache: domain.CacheSettings{
			TTL: s.getDuration(KeyCacheTTL, defaults.Cache.TTL),
		},
		Watch: domain.WatchSettings{
			Interval: s.getDuration(KeyWatchInterval, defaults.Watch.Interval),
		},
	}, nil
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case KeyOutputFormat:
		format := domain.OutputFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("%w: output format %q", domain.ErrUnsupportedType, value)
		}
		stored = format.String()
	case KeyOutputIndent, KeyLogVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		stored = b
	case KeyCacheTTL, KeyWatchInterval:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s must be a positive duration such as 10m", domain.ErrInvalidInput, key)
		}
		stored = d.String()
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the supported setting keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(KeyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d := s.configStore.GetDuration(key)
	if d <= 0 {
		return defaultVal
	}
	return d
}
