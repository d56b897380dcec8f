// Package config holds the connector style configuration and the server's
// startup settings.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Style describes how the connector line is drawn. It is replaced
// wholesale on every configuration change; there are no partial updates.
type Style struct {
	LineColor   string  `json:"lineColor"   yaml:"lineColor"`
	LineWidth   float64 `json:"lineWidth"   yaml:"lineWidth"`
	LineOpacity float64 `json:"lineOpacity" yaml:"lineOpacity"`
}

var defaultStyle = Style{
	LineColor:   "red",
	LineWidth:   1,
	LineOpacity: 50,
}

// DefaultStyle returns the fallback style.
func DefaultStyle() Style {
	return defaultStyle
}

// StyleFrom overlays the fields present in v onto the defaults. v is
// whatever arrived on the wire (initializationOptions or
// didChangeConfiguration settings); only fields it carries overwrite.
// Out-of-range values fall back to the defaults.
func StyleFrom(v any) (Style, error) {
	style := defaultStyle

	data, err := json.Marshal(v)
	if err != nil {
		return Style{}, fmt.Errorf("failed to marshal style source: %w", err)
	}
	if err := json.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("failed to unmarshal into Style: %w", err)
	}

	return style.sanitized(), nil
}

func (s Style) sanitized() Style {
	if s.LineColor == "" {
		s.LineColor = defaultStyle.LineColor
	}
	if s.LineWidth <= 0 {
		s.LineWidth = defaultStyle.LineWidth
	}
	if s.LineOpacity < 0 || s.LineOpacity > 100 {
		s.LineOpacity = defaultStyle.LineOpacity
	}
	return s
}

// Store holds the current style. Reads always see the latest replaced
// value.
type Store struct {
	mu    sync.RWMutex
	style Style
}

// NewStore creates a Store seeded with the default style.
func NewStore() *Store {
	return &Store{style: defaultStyle}
}

// Current returns the style as of the last replacement.
func (s *Store) Current() Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.style
}

// Replace swaps in a new style wholesale.
func (s *Store) Replace(style Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = style
}

// Settings are the server's own startup options, read once from an
// optional YAML file.
type Settings struct {
	LogFile    string `yaml:"logfile"`
	ParserPool int    `yaml:"parser_pool"`
	Style      Style  `yaml:"style"`
}

var defaultSettings = Settings{
	ParserPool: 4,
	Style:      defaultStyle,
}

// LoadSettings reads YAML settings from r over the defaults.
func LoadSettings(r io.Reader) (Settings, error) {
	settings := defaultSettings

	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	settings.Style = settings.Style.sanitized()
	if settings.ParserPool <= 0 {
		settings.ParserPool = defaultSettings.ParserPool
	}
	return settings, nil
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return defaultSettings
}
