package ui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds framework-wide tunables: the values that are not per-widget
// style but also should not be hardcoded. A Manager owns one Settings value;
// widgets read it through their manager.
type Settings struct {
	// ScrollStep is the pixel distance one mouse-wheel tick scrolls a
	// ScrollView.
	ScrollStep float64 `toml:"scroll_step"`

	// ScrollbarWidth is the track width of ScrollView scrollbars.
	ScrollbarWidth float64 `toml:"scrollbar_width"`

	// ScrollbarMinThumb is the minimum scrollbar thumb length.
	ScrollbarMinThumb float64 `toml:"scrollbar_min_thumb"`

	// CursorBlinkInterval is the time in seconds between text-input cursor
	// visibility toggles.
	CursorBlinkInterval float64 `toml:"cursor_blink_interval"`
}

// DefaultSettings returns the stock tunables.
func DefaultSettings() Settings {
	return Settings{
		ScrollStep:          20,
		ScrollbarWidth:      10,
		ScrollbarMinThumb:   30,
		CursorBlinkInterval: 0.5,
	}
}

// Validate fails fast on values that would misbehave silently at runtime.
func (s Settings) Validate() error {
	if s.ScrollStep <= 0 {
		return fmt.Errorf("settings: scroll_step must be positive, got %g", s.ScrollStep)
	}
	if s.ScrollbarWidth <= 0 {
		return fmt.Errorf("settings: scrollbar_width must be positive, got %g", s.ScrollbarWidth)
	}
	if s.ScrollbarMinThumb < 0 {
		return fmt.Errorf("settings: scrollbar_min_thumb must not be negative, got %g", s.ScrollbarMinThumb)
	}
	if s.CursorBlinkInterval <= 0 {
		return fmt.Errorf("settings: cursor_blink_interval must be positive, got %g", s.CursorBlinkInterval)
	}
	return nil
}

// LoadSettings reads a TOML settings file. Keys absent from the file keep
// their defaults; present keys are validated.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes TOML settings from memory.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
