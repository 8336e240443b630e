// Package cli wires the command tree. The bare root command renders the
// status line, or opens the menu when both ends of the terminal are a TTY.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath string
	themeName  string
	plain      bool
	jsonOut    bool
}

var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "codexline",
		Short:         "Render a themeable status line for Codex sessions",
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !anyRenderFlagSet(cmd) && isInteractive() {
				return runMenu(cmd, opts)
			}
			return runRender(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: $CODEX_HOME/codexline/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.themeName, "theme", "", "Render with this theme instead of the configured one")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Disable colors and glyphs")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Emit JSON instead of text")

	cmd.AddCommand(
		newInitCmd(opts),
		newPrintConfigCmd(opts),
		newCheckConfigCmd(opts),
		newDoctorCmd(opts),
		newInspectCmd(opts),
		newConfigureCmd(opts),
		newMenuCmd(opts),
		newQuickConfigCmd(opts),
	)

	return cmd
}

func anyRenderFlagSet(cmd *cobra.Command) bool {
	for _, name := range []string{"config", "theme", "plain", "json"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
