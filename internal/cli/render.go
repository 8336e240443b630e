package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/collect"
	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/render"
	"github.com/lusipad/codexline/internal/segment"
	"github.com/lusipad/codexline/internal/theme"
)

type renderReport struct {
	Line    string                `json:"line"`
	Pieces  []segment.Piece       `json:"pieces"`
	Context collect.StatusContext `json:"context"`
}

func runRender(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := effectiveConfig(opts)
	if err != nil {
		return err
	}
	if opts.plain {
		cfg.Style.Mode = config.ModePlain
	}

	col, err := collect.Collect(cfg)
	if err != nil {
		return err
	}

	pieces := segment.Build(cfg, col.Context)

	if opts.jsonOut {
		report := renderReport{
			Line:    render.Line(pieces, cfg.Style.Separator, true),
			Pieces:  pieces,
			Context: col.Context,
		}
		return writeJSON(cmd, report)
	}

	plain := opts.plain || cfg.Style.Mode == config.ModePlain
	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Line(pieces, cfg.Style.Separator, plain))
	return err
}

// effectiveConfig loads the stored config and resolves the theme. An explicit
// --theme that fails to apply is fatal; the config's own theme degrades to the
// unthemed config so a broken theme file never kills the status line.
func effectiveConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.NewStore(opts.configPath).Load()
	if err != nil {
		return config.Config{}, err
	}

	if opts.themeName != "" {
		themed, err := theme.Apply(cfg, opts.themeName, config.ThemesDir())
		if err != nil {
			return config.Config{}, err
		}
		return themed, nil
	}

	themed, err := theme.Apply(cfg, cfg.Theme, config.ThemesDir())
	if err != nil {
		return cfg, nil
	}
	return themed, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
