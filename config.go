package imbridge

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CursorControlMode selects when the bridge overrides the host cursor on
// the engine's behalf.
type CursorControlMode int

const (
	// CursorControlWhenCaptured overrides the cursor only while the
	// engine wants pointer capture. This is the default.
	CursorControlWhenCaptured CursorControlMode = iota

	// CursorControlAlways keeps the override active every frame.
	CursorControlAlways

	// CursorControlDisabled never touches the host cursor.
	CursorControlDisabled
)

// String returns the mode's configuration-file spelling.
func (m CursorControlMode) String() string {
	switch m {
	case CursorControlWhenCaptured:
		return "when_captured"
	case CursorControlAlways:
		return "always"
	case CursorControlDisabled:
		return "disabled"
	}
	return fmt.Sprintf("CursorControlMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler for TOML round trips.
func (m CursorControlMode) MarshalText() ([]byte, error) {
	switch m {
	case CursorControlWhenCaptured, CursorControlAlways, CursorControlDisabled:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown cursor control mode %d", int(m))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CursorControlMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "when_captured":
		*m = CursorControlWhenCaptured
	case "always":
		*m = CursorControlAlways
	case "disabled":
		*m = CursorControlDisabled
	default:
		return fmt.Errorf("unknown cursor control mode %q", text)
	}
	return nil
}

// Config holds the bridge's tunable behavior. Zero-value fields are not
// meaningful; start from DefaultConfig.
type Config struct {
	// CursorControl selects the cursor arbitration mode.
	CursorControl CursorControlMode `toml:"cursor_control"`

	// ScrollSensitivity scales wheel deltas before they reach the
	// engine.
	ScrollSensitivity float32 `toml:"scroll_sensitivity"`

	// GamepadNavigation forwards the primary gamepad as engine
	// navigation input.
	GamepadNavigation bool `toml:"gamepad_navigation"`

	// FontSize is the pixel size of the initial built-in font.
	FontSize float32 `toml:"font_size"`
}

// DefaultConfig returns the bridge defaults.
func DefaultConfig() Config {
	return Config{
		CursorControl:     CursorControlWhenCaptured,
		ScrollSensitivity: 1,
		GamepadNavigation: false,
		FontSize:          13,
	}
}

// LoadConfig reads a TOML configuration file over the defaults. On error
// the defaults are returned alongside the error so callers can degrade.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Option configures a Bridge at construction.
type Option func(*Config)

// WithConfig replaces the whole configuration, e.g. one from LoadConfig.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithCursorControl sets the cursor arbitration mode.
func WithCursorControl(mode CursorControlMode) Option {
	return func(c *Config) { c.CursorControl = mode }
}

// WithScrollSensitivity sets the wheel delta scale factor.
func WithScrollSensitivity(factor float32) Option {
	return func(c *Config) { c.ScrollSensitivity = factor }
}

// WithGamepadNavigation toggles gamepad forwarding.
func WithGamepadNavigation(enabled bool) Option {
	return func(c *Config) { c.GamepadNavigation = enabled }
}

// WithFontSize sets the pixel size of the initial built-in font.
func WithFontSize(px float32) Option {
	return func(c *Config) { c.FontSize = px }
}
