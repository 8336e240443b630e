package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/theme"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config and materialize the builtin themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, root)
		},
	}
}

func runInit(cmd *cobra.Command, root *rootOptions) error {
	store := config.NewStore(root.configPath)
	created, err := store.Init()
	if err != nil {
		return err
	}
	if created {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", store.Path())
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", store.Path())
	}

	themesDir := config.ThemesDir()
	if err := theme.WriteBuiltinsIfMissing(themesDir); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Builtin themes available in %s\n", themesDir)
	return nil
}
