package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/config"
)

func newPrintConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print-config",
		Short: "Print the effective stored configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewStore(root.configPath).Load()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), buf.String())
			return err
		},
	}
}

func newCheckConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, root)
		},
	}
}

func runCheck(cmd *cobra.Command, root *rootOptions) error {
	store := config.NewStore(root.configPath)
	if _, err := os.Stat(store.Path()); os.IsNotExist(err) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No config file at %s, defaults in effect\n", store.Path())
		return nil
	}
	if _, err := store.Load(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", store.Path())
	return nil
}
