package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/collect"
	"github.com/lusipad/codexline/internal/gitstatus"
	"github.com/lusipad/codexline/internal/rollout"
)

type inspectReport struct {
	CodexHome     string               `json:"codex_home"`
	SessionsDir   string               `json:"sessions_dir"`
	LatestRollout string               `json:"latest_rollout,omitempty"`
	Model         string               `json:"model,omitempty"`
	Usage         *rollout.TokenUsage  `json:"usage,omitempty"`
	Limits        *rollout.RateLimits  `json:"limits,omitempty"`
	Session       *rollout.SessionMeta `json:"session,omitempty"`
	Git           *gitstatus.Status    `json:"git,omitempty"`
}

func newInspectCmd(root *rootOptions) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the raw collected context as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch source {
			case "rollout", "git", "all":
			default:
				return fmt.Errorf("unknown source %q (want rollout, git, or all)", source)
			}

			cfg, err := effectiveConfig(root)
			if err != nil {
				return err
			}
			col, err := collect.Collect(cfg)
			if err != nil {
				return err
			}

			report := inspectReport{
				CodexHome:   col.CodexHome,
				SessionsDir: col.SessionsDir,
			}
			if source == "rollout" || source == "all" {
				report.LatestRollout = col.LatestRollout
				report.Model = col.Context.Model
				report.Usage = col.Context.Usage
				report.Limits = col.Context.Limits
				report.Session = col.Context.Session
			}
			if source == "git" || source == "all" {
				report.Git = col.Context.Git
			}
			return writeJSON(cmd, report)
		},
	}

	cmd.Flags().StringVar(&source, "source", "all", "Which collectors to include: rollout, git, or all")
	return cmd
}
