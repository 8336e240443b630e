package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/collect"
	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/render"
	"github.com/lusipad/codexline/internal/segment"
	"github.com/lusipad/codexline/internal/theme"
	"github.com/lusipad/codexline/internal/tui"
)

func newConfigureCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Open the interactive configurator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigure(cmd, root)
		},
	}
}

func runConfigure(cmd *cobra.Command, root *rootOptions) error {
	store := config.NewStore(root.configPath)
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	names, err := theme.ListNames(config.ThemesDir())
	if err != nil {
		return err
	}

	deps := tui.Deps{
		Themes: names,
		ApplyTheme: func(base config.Config, name string) (config.Config, error) {
			return theme.Apply(base, name, config.ThemesDir())
		},
		Preview: func(cfg config.Config) (string, error) {
			col, err := collect.Collect(cfg)
			if err != nil {
				return "", err
			}
			pieces := segment.Build(cfg, col.Context)
			return render.Line(pieces, cfg.Style.Separator, true), nil
		},
		Save: store.Save,
	}

	_, saved, err := tui.Configure(cfg, deps)
	if err != nil {
		return err
	}
	if saved {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", store.Path())
	}
	return nil
}
