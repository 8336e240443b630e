package theme

import "github.com/lusipad/codexline/internal/config"

// BuiltinNames is the closed catalog of themes that ship with codexline.
func BuiltinNames() []string {
	return []string{
		"default",
		"minimal",
		"gruvbox",
		"nord",
		"powerline-dark",
		"powerline-light",
		"powerline-rose-pine",
		"powerline-tokyo-night",
	}
}

func Builtin(name string) (Spec, bool) {
	switch name {
	case "default":
		return styleOnly(name, config.ModeNerdFont, " · "), true
	case "minimal":
		return styleOnly(name, config.ModePlain, " | "), true
	case "gruvbox":
		spec := styleOnly(name, config.ModeNerdFont, " ❯ ")
		spec.Segments = palette(
			config.ColorBrightYellow,
			config.ColorBrightGreen,
			config.ColorBrightRed,
			config.ColorYellow,
			config.ColorGreen,
			config.ColorRed,
		)
		return spec, true
	case "nord":
		spec := styleOnly(name, config.ModeNerdFont, " • ")
		spec.Segments = palette(
			config.ColorCyan,
			config.ColorBrightCyan,
			config.ColorBrightBlue,
			config.ColorBrightWhite,
			config.ColorWhite,
			config.ColorBrightMagenta,
		)
		return spec, true
	case "powerline-dark":
		spec := styleOnly(name, config.ModePowerline, "  ")
		spec.Segments = palette(
			config.ColorBrightWhite,
			config.ColorBrightBlue,
			config.ColorBrightMagenta,
			config.ColorBrightYellow,
			config.ColorBrightGreen,
			config.ColorBrightRed,
		)
		return spec, true
	case "powerline-light":
		spec := styleOnly(name, config.ModePowerline, "  ")
		spec.Segments = palette(
			config.ColorBlue,
			config.ColorCyan,
			config.ColorMagenta,
			config.ColorYellow,
			config.ColorGreen,
			config.ColorRed,
		)
		return spec, true
	case "powerline-rose-pine":
		spec := styleOnly(name, config.ModePowerline, "  ")
		spec.Segments = palette(
			config.ColorBrightMagenta,
			config.ColorBrightCyan,
			config.ColorBrightYellow,
			config.ColorBrightBlue,
			config.ColorBrightGreen,
			config.ColorBrightRed,
		)
		return spec, true
	case "powerline-tokyo-night":
		spec := styleOnly(name, config.ModePowerline, "  ")
		spec.Segments = palette(
			config.ColorBrightCyan,
			config.ColorBrightBlue,
			config.ColorBrightMagenta,
			config.ColorBrightWhite,
			config.ColorBrightGreen,
			config.ColorBrightRed,
		)
		return spec, true
	}
	return Spec{}, false
}

func styleOnly(name string, mode config.StyleMode, separator string) Spec {
	return Spec{
		Name: name,
		Style: &config.StyleConfig{
			Mode:      mode,
			Separator: separator,
		},
	}
}

// palette colors the six core segments in order: model, cwd, git, context,
// tokens, limits.
func palette(model, cwd, git, contextColor, tokens, limits config.NamedColor) []SegmentOverride {
	return []SegmentOverride{
		segColor(config.SegmentModel, model),
		segColor(config.SegmentCwd, cwd),
		segColor(config.SegmentGit, git),
		segColor(config.SegmentContext, contextColor),
		segColor(config.SegmentTokens, tokens),
		segColor(config.SegmentLimits, limits),
	}
}

func segColor(id config.SegmentID, c config.NamedColor) SegmentOverride {
	icon := c
	text := c
	return SegmentOverride{
		ID: id,
		Colors: &config.ColorConfig{
			Icon: &icon,
			Text: &text,
		},
	}
}
