// Package segment maps the effective configuration against a StatusContext
// to produce the renderable pieces of the status line.
package segment

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lusipad/codexline/internal/collect"
	"github.com/lusipad/codexline/internal/config"
)

// Piece is the renderer's sole input: one resolved segment.
type Piece struct {
	ID        config.SegmentID   `json:"id"`
	Icon      string             `json:"icon"`
	Value     string             `json:"value"`
	IconColor *config.NamedColor `json:"icon_color,omitempty"`
	TextColor *config.NamedColor `json:"text_color,omitempty"`
	Bold      bool               `json:"bold"`
}

// PlainText is the uncolored "icon value" form of the piece.
func (p Piece) PlainText() string {
	if p.Icon == "" {
		return p.Value
	}
	return p.Icon + " " + p.Value
}

// Build walks the enabled segments in configured order. A segment whose value
// cannot be computed from ctx is omitted entirely, not rendered empty.
func Build(cfg config.Config, ctx collect.StatusContext) []Piece {
	var pieces []Piece
	for _, seg := range cfg.Segments {
		if !seg.IsEnabled() {
			continue
		}
		value, ok := segmentValue(cfg.Style.Mode, seg, ctx)
		if !ok {
			continue
		}
		pieces = append(pieces, Piece{
			ID:        seg.ID,
			Icon:      iconForMode(cfg.Style.Mode, seg),
			Value:     value,
			IconColor: seg.Colors.Icon,
			TextColor: seg.Colors.Text,
			Bold:      seg.Styles.TextBold,
		})
	}
	return pieces
}

func segmentValue(mode config.StyleMode, seg config.SegmentConfig, ctx collect.StatusContext) (string, bool) {
	switch seg.ID {
	case config.SegmentModel:
		if ctx.Model == "" {
			return "", false
		}
		return SimplifyModelName(ctx.Model), true
	case config.SegmentCwd:
		return cwdValue(seg, ctx), true
	case config.SegmentGit:
		if ctx.Git == nil {
			return "", false
		}
		return gitValue(mode, seg, ctx), true
	case config.SegmentContext:
		return contextValue(seg, ctx)
	case config.SegmentTokens:
		return tokensValue(ctx)
	case config.SegmentLimits:
		return limitsValue(ctx)
	case config.SegmentSession:
		if ctx.Session == nil || ctx.Session.ThreadID == "" {
			return "", false
		}
		return shortenID(ctx.Session.ThreadID), true
	case config.SegmentCodexVersion:
		if ctx.Session == nil || ctx.Session.CLIVersion == "" {
			return "", false
		}
		return "v" + ctx.Session.CLIVersion, true
	}
	return "", false
}

// iconForMode picks the glyph: plain mode always uses the plain icon; glyph
// modes prefer the nerd-font icon and fall back to plain when it is empty.
func iconForMode(mode config.StyleMode, seg config.SegmentConfig) string {
	if mode == config.ModePlain {
		return seg.Icon.Plain
	}
	if seg.Icon.NerdFont != "" {
		return seg.Icon.NerdFont
	}
	return seg.Icon.Plain
}

func cwdValue(seg config.SegmentConfig, ctx collect.StatusContext) string {
	if seg.OptionBool("basename", true) {
		if name := filepath.Base(ctx.Cwd); name != "." && name != string(filepath.Separator) {
			return name
		}
	}
	return ctx.Cwd
}

func gitValue(mode config.StyleMode, seg config.SegmentConfig, ctx collect.StatusContext) string {
	git := ctx.Git

	clean, dirty, conflict := "ok", "*", "!"
	if mode != config.ModePlain {
		clean, dirty, conflict = "✓", "●", "⚠"
	}

	symbol := clean
	switch {
	case git.Conflicted > 0:
		symbol = conflict
	case git.Dirty:
		symbol = dirty
	}

	parts := []string{git.Branch, symbol}
	if git.Ahead != nil && *git.Ahead > 0 {
		parts = append(parts, fmt.Sprintf("↑%d", *git.Ahead))
	}
	if git.Behind != nil && *git.Behind > 0 {
		parts = append(parts, fmt.Sprintf("↓%d", *git.Behind))
	}

	if seg.OptionBool("detailed", false) {
		if git.Staged > 0 {
			parts = append(parts, fmt.Sprintf("S%d", git.Staged))
		}
		if git.Unstaged > 0 {
			parts = append(parts, fmt.Sprintf("U%d", git.Unstaged))
		}
		if git.Untracked > 0 {
			parts = append(parts, fmt.Sprintf("N%d", git.Untracked))
		}
		if git.Conflicted > 0 {
			parts = append(parts, fmt.Sprintf("C%d", git.Conflicted))
		}
	}
	return strings.Join(parts, " ")
}

func contextValue(seg config.SegmentConfig, ctx collect.StatusContext) (string, bool) {
	if ctx.Usage == nil {
		return "", false
	}
	if seg.OptionString("mode", "remaining") == "used" {
		if ctx.Usage.UsedPercent == nil {
			return "", false
		}
		return fmt.Sprintf("%d%% used", *ctx.Usage.UsedPercent), true
	}
	if ctx.Usage.RemainingPercent == nil {
		return "", false
	}
	return fmt.Sprintf("%d%% left", *ctx.Usage.RemainingPercent), true
}

func tokensValue(ctx collect.StatusContext) (string, bool) {
	if ctx.Usage == nil || ctx.Usage.TotalTokens <= 0 {
		return "", false
	}
	return fmt.Sprintf("%s in %s out %s total",
		CompactTokens(ctx.Usage.InputTokens),
		CompactTokens(ctx.Usage.OutputTokens),
		CompactTokens(ctx.Usage.TotalTokens),
	), true
}

func limitsValue(ctx collect.StatusContext) (string, bool) {
	if ctx.Limits == nil {
		return "", false
	}
	var parts []string
	if v := ctx.Limits.PrimaryUsedPercent; v != nil {
		parts = append(parts, fmt.Sprintf("5h %d%%", roundPercent(*v)))
	}
	if v := ctx.Limits.SecondaryUsedPercent; v != nil {
		parts = append(parts, fmt.Sprintf("weekly %d%%", roundPercent(*v)))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func roundPercent(v float64) int64 {
	if v < 0 {
		return int64(v - 0.5)
	}
	return int64(v + 0.5)
}

// CompactTokens renders a count with a K/M suffix: 1200 -> "1.2K",
// 2300000 -> "2.3M", 999 -> "999".
func CompactTokens(value int64) string {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(value)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(value)/1_000)
	default:
		return fmt.Sprintf("%d", value)
	}
}

// modelLabels maps raw model identifier substrings to short display labels.
// First match wins; unmapped names render verbatim.
var modelLabels = []struct {
	needle string
	label  string
}{
	{"claude-4-sonnet", "Sonnet 4"},
	{"claude-sonnet-4", "Sonnet 4"},
	{"claude-3-7-sonnet", "Sonnet 3.7"},
	{"gpt-5-codex", "gpt-5-codex"},
	{"gpt-5", "gpt-5"},
}

func SimplifyModelName(model string) string {
	lower := strings.ToLower(model)
	for _, entry := range modelLabels {
		if strings.Contains(lower, entry.needle) {
			return entry.label
		}
	}
	return model
}

func shortenID(id string) string {
	runes := []rune(id)
	if len(runes) > 8 {
		return string(runes[:8])
	}
	return id
}
