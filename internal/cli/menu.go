package cli

import (
	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/tui"
)

func newMenuCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the main menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, root)
		},
	}
}

func runMenu(cmd *cobra.Command, root *rootOptions) error {
	choice, err := tui.Menu()
	if err != nil {
		return err
	}
	switch choice {
	case tui.MenuRender:
		return runRender(cmd, root)
	case tui.MenuConfigure:
		return runConfigure(cmd, root)
	case tui.MenuInit:
		return runInit(cmd, root)
	case tui.MenuCheck:
		return runCheck(cmd, root)
	}
	return nil
}
