package config

import "fmt"

// SegmentID names one field of the rendered status line. The set is closed:
// segment value logic switches exhaustively over these constants.
type SegmentID string

const (
	SegmentModel        SegmentID = "model"
	SegmentCwd          SegmentID = "cwd"
	SegmentGit          SegmentID = "git"
	SegmentContext      SegmentID = "context"
	SegmentTokens       SegmentID = "tokens"
	SegmentLimits       SegmentID = "limits"
	SegmentSession      SegmentID = "session"
	SegmentCodexVersion SegmentID = "codex_version"
)

// AllSegmentIDs is the canonical ordering used by quick-config and the
// configurator when a segment has to be appended.
var AllSegmentIDs = []SegmentID{
	SegmentModel,
	SegmentCwd,
	SegmentGit,
	SegmentContext,
	SegmentTokens,
	SegmentLimits,
	SegmentSession,
	SegmentCodexVersion,
}

func (id SegmentID) Valid() bool {
	for _, known := range AllSegmentIDs {
		if id == known {
			return true
		}
	}
	return false
}

// StyleMode selects the glyph dialect used when picking segment icons.
type StyleMode string

const (
	ModePlain     StyleMode = "plain"
	ModeNerdFont  StyleMode = "nerd_font"
	ModePowerline StyleMode = "powerline"
)

func (m StyleMode) Valid() bool {
	switch m {
	case ModePlain, ModeNerdFont, ModePowerline:
		return true
	}
	return false
}

// NamedColor is a 16-color ANSI palette entry.
type NamedColor string

const (
	ColorRed           NamedColor = "red"
	ColorGreen         NamedColor = "green"
	ColorYellow        NamedColor = "yellow"
	ColorBlue          NamedColor = "blue"
	ColorMagenta       NamedColor = "magenta"
	ColorCyan          NamedColor = "cyan"
	ColorWhite         NamedColor = "white"
	ColorBrightBlack   NamedColor = "bright_black"
	ColorBrightRed     NamedColor = "bright_red"
	ColorBrightGreen   NamedColor = "bright_green"
	ColorBrightYellow  NamedColor = "bright_yellow"
	ColorBrightBlue    NamedColor = "bright_blue"
	ColorBrightMagenta NamedColor = "bright_magenta"
	ColorBrightCyan    NamedColor = "bright_cyan"
	ColorBrightWhite   NamedColor = "bright_white"
)

// Config is the persisted configuration. The effective config handed to the
// segment builder is this structure after a theme merge.
type Config struct {
	Theme    string          `toml:"theme" json:"theme"`
	Style    StyleConfig     `toml:"style" json:"style"`
	Rollout  RolloutConfig   `toml:"rollout" json:"rollout"`
	Segments []SegmentConfig `toml:"segments" json:"segments"`
}

type StyleConfig struct {
	Mode      StyleMode `toml:"mode" json:"mode"`
	Separator string    `toml:"separator" json:"separator"`
}

type RolloutConfig struct {
	ScanDepthDays int    `toml:"scan_depth_days" json:"scan_depth_days"`
	MaxFiles      int    `toml:"max_files" json:"max_files"`
	PathOverride  string `toml:"path_override,omitempty" json:"path_override,omitempty"`
}

type SegmentConfig struct {
	ID SegmentID `toml:"id" json:"id"`
	// Enabled is a pointer so a hand-edited file that omits the key keeps the
	// segment on (absent means true).
	Enabled *bool          `toml:"enabled,omitempty" json:"enabled,omitempty"`
	Icon    IconConfig     `toml:"icon" json:"icon"`
	Colors  ColorConfig    `toml:"colors" json:"colors"`
	Styles  StyleOptions   `toml:"styles" json:"styles"`
	Options map[string]any `toml:"options,omitempty" json:"options,omitempty"`
}

type IconConfig struct {
	Plain    string `toml:"plain" json:"plain"`
	NerdFont string `toml:"nerd_font" json:"nerd_font"`
}

type ColorConfig struct {
	Icon       *NamedColor `toml:"icon,omitempty" json:"icon,omitempty"`
	Text       *NamedColor `toml:"text,omitempty" json:"text,omitempty"`
	Background *NamedColor `toml:"background,omitempty" json:"background,omitempty"`
}

type StyleOptions struct {
	TextBold bool `toml:"text_bold" json:"text_bold"`
}

func (s SegmentConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

func (s *SegmentConfig) SetEnabled(v bool) {
	s.Enabled = &v
}

// OptionBool reads a boolean entry from the free-form option map.
func (s SegmentConfig) OptionBool(key string, fallback bool) bool {
	if v, ok := s.Options[key].(bool); ok {
		return v
	}
	return fallback
}

// OptionString reads a string entry from the free-form option map.
func (s SegmentConfig) OptionString(key, fallback string) string {
	if v, ok := s.Options[key].(string); ok {
		return v
	}
	return fallback
}

func (s *SegmentConfig) SetOption(key string, value any) {
	if s.Options == nil {
		s.Options = map[string]any{}
	}
	s.Options[key] = value
}

// Clone returns a deep copy. The configurator mutates a working copy across
// the whole session and Reset must restore the original untouched.
func (c Config) Clone() Config {
	out := c
	out.Segments = make([]SegmentConfig, len(c.Segments))
	for i, seg := range c.Segments {
		out.Segments[i] = seg.clone()
	}
	return out
}

func (s SegmentConfig) clone() SegmentConfig {
	out := s
	if s.Enabled != nil {
		v := *s.Enabled
		out.Enabled = &v
	}
	out.Colors = s.Colors.Clone()
	if s.Options != nil {
		out.Options = make(map[string]any, len(s.Options))
		for k, v := range s.Options {
			out.Options[k] = v
		}
	}
	return out
}

func (c ColorConfig) Clone() ColorConfig {
	out := c
	if c.Icon != nil {
		v := *c.Icon
		out.Icon = &v
	}
	if c.Text != nil {
		v := *c.Text
		out.Text = &v
	}
	if c.Background != nil {
		v := *c.Background
		out.Background = &v
	}
	return out
}

// Validate rejects configurations the render pipeline cannot work with.
// Called on every load and before every save.
func (c Config) Validate() error {
	if len(c.Segments) == 0 {
		return fmt.Errorf("segments cannot be empty")
	}
	seen := map[SegmentID]bool{}
	for _, seg := range c.Segments {
		if !seg.ID.Valid() {
			return fmt.Errorf("unknown segment id: %q", seg.ID)
		}
		if seen[seg.ID] {
			return fmt.Errorf("duplicate segment id: %q", seg.ID)
		}
		seen[seg.ID] = true
	}
	if !c.Style.Mode.Valid() {
		return fmt.Errorf("unknown style mode: %q", c.Style.Mode)
	}
	if c.Rollout.ScanDepthDays <= 0 {
		return fmt.Errorf("rollout scan_depth_days must be positive, got %d", c.Rollout.ScanDepthDays)
	}
	if c.Rollout.MaxFiles <= 0 {
		return fmt.Errorf("rollout max_files must be positive, got %d", c.Rollout.MaxFiles)
	}
	return nil
}

// Normalize fills zero values left by a partially written file with defaults.
func (c *Config) Normalize() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Style.Mode == "" {
		c.Style.Mode = ModePlain
	}
	if c.Style.Separator == "" {
		c.Style.Separator = DefaultSeparator
	}
	if c.Rollout.ScanDepthDays == 0 {
		c.Rollout.ScanDepthDays = DefaultScanDepthDays
	}
	if c.Rollout.MaxFiles == 0 {
		c.Rollout.MaxFiles = DefaultMaxFiles
	}
	if len(c.Segments) == 0 {
		c.Segments = DefaultSegments()
	}
}
