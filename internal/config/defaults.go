package config

const (
	DefaultTheme         = "default"
	DefaultSeparator     = " | "
	DefaultScanDepthDays = 14
	DefaultMaxFiles      = 200
)

// Default returns the configuration used when no file exists on disk.
func Default() Config {
	return Config{
		Theme: DefaultTheme,
		Style: StyleConfig{
			Mode:      ModePlain,
			Separator: DefaultSeparator,
		},
		Rollout: RolloutConfig{
			ScanDepthDays: DefaultScanDepthDays,
			MaxFiles:      DefaultMaxFiles,
		},
		Segments: DefaultSegments(),
	}
}

// DefaultSegments lists the segments enabled out of the box. Session and
// codex_version stay in the catalog but are opt-in.
func DefaultSegments() []SegmentConfig {
	return []SegmentConfig{
		DefaultSegmentFor(SegmentModel),
		DefaultSegmentFor(SegmentCwd),
		DefaultSegmentFor(SegmentGit),
		DefaultSegmentFor(SegmentContext),
		DefaultSegmentFor(SegmentTokens),
		DefaultSegmentFor(SegmentLimits),
	}
}

func DefaultSegmentFor(id SegmentID) SegmentConfig {
	seg := SegmentConfig{ID: id}
	seg.SetEnabled(true)
	switch id {
	case SegmentModel:
		seg.Icon = IconConfig{Plain: "M", NerdFont: ""}
		seg.Colors = colorPair(ColorCyan)
	case SegmentCwd:
		seg.Icon = IconConfig{Plain: "DIR", NerdFont: ""}
		seg.Colors = colorPair(ColorBlue)
	case SegmentGit:
		seg.Icon = IconConfig{Plain: "GIT", NerdFont: ""}
		seg.Colors = colorPair(ColorMagenta)
	case SegmentContext:
		seg.Icon = IconConfig{Plain: "CTX", NerdFont: ""}
		seg.Colors = colorPair(ColorYellow)
	case SegmentTokens:
		seg.Icon = IconConfig{Plain: "TOK", NerdFont: ""}
		seg.Colors = colorPair(ColorGreen)
	case SegmentLimits:
		seg.Icon = IconConfig{Plain: "LIM", NerdFont: ""}
		seg.Colors = colorPair(ColorRed)
	case SegmentSession:
		seg.Icon = IconConfig{Plain: "SID", NerdFont: ""}
		seg.Colors = colorPair(ColorBrightBlack)
	case SegmentCodexVersion:
		seg.Icon = IconConfig{Plain: "VER", NerdFont: ""}
		seg.Colors = colorPair(ColorBrightBlack)
	}
	return seg
}

func colorPair(c NamedColor) ColorConfig {
	icon := c
	text := c
	return ColorConfig{Icon: &icon, Text: &text}
}
