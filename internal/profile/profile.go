// Package profile applies opinionated presets to a configuration: the quick
// starter layout and targeted enhancements.
package profile

import "github.com/lusipad/codexline/internal/config"

type Enhancement string

const (
	EnhancementGit           Enhancement = "git"
	EnhancementObservability Enhancement = "observability"
)

func ParseEnhancement(v string) (Enhancement, bool) {
	switch Enhancement(v) {
	case EnhancementGit, EnhancementObservability:
		return Enhancement(v), true
	}
	return "", false
}

// ApplyQuick installs the canonical segment order, enables the core five
// segments, and sets their recommended options.
func ApplyQuick(cfg *config.Config) {
	for _, id := range config.AllSegmentIDs {
		ensureSegment(cfg, id)
	}
	reorder(cfg, config.AllSegmentIDs)

	core := map[config.SegmentID]bool{
		config.SegmentModel:   true,
		config.SegmentCwd:     true,
		config.SegmentGit:     true,
		config.SegmentContext: true,
		config.SegmentTokens:  true,
	}
	for i := range cfg.Segments {
		cfg.Segments[i].SetEnabled(core[cfg.Segments[i].ID])
	}

	setOption(cfg, config.SegmentCwd, "basename", true)
	setOption(cfg, config.SegmentGit, "detailed", false)
	setOption(cfg, config.SegmentContext, "mode", "used")
}

// ApplyEnhancement layers one capability preset onto cfg.
func ApplyEnhancement(cfg *config.Config, enh Enhancement) {
	switch enh {
	case EnhancementGit:
		ensureSegment(cfg, config.SegmentGit)
		setEnabled(cfg, config.SegmentGit, true)
		setOption(cfg, config.SegmentGit, "detailed", true)
	case EnhancementObservability:
		for _, id := range []config.SegmentID{
			config.SegmentContext,
			config.SegmentTokens,
			config.SegmentLimits,
			config.SegmentSession,
			config.SegmentCodexVersion,
		} {
			ensureSegment(cfg, id)
			setEnabled(cfg, id, true)
		}
		setOption(cfg, config.SegmentContext, "mode", "used")
		reorder(cfg, config.AllSegmentIDs)
	}
}

func ensureSegment(cfg *config.Config, id config.SegmentID) {
	for _, seg := range cfg.Segments {
		if seg.ID == id {
			return
		}
	}
	cfg.Segments = append(cfg.Segments, config.DefaultSegmentFor(id))
}

// reorder moves the listed ids to the front in the given order; segments not
// listed keep their relative order at the tail.
func reorder(cfg *config.Config, order []config.SegmentID) {
	ordered := make([]config.SegmentConfig, 0, len(cfg.Segments))
	rest := cfg.Segments
	for _, id := range order {
		for i, seg := range rest {
			if seg.ID == id {
				ordered = append(ordered, seg)
				rest = append(rest[:i:i], rest[i+1:]...)
				break
			}
		}
	}
	cfg.Segments = append(ordered, rest...)
}

func setEnabled(cfg *config.Config, id config.SegmentID, v bool) {
	for i := range cfg.Segments {
		if cfg.Segments[i].ID == id {
			cfg.Segments[i].SetEnabled(v)
			return
		}
	}
}

func setOption(cfg *config.Config, id config.SegmentID, key string, value any) {
	for i := range cfg.Segments {
		if cfg.Segments[i].ID == id {
			cfg.Segments[i].SetOption(key, value)
			return
		}
	}
}
