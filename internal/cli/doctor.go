package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lusipad/codexline/internal/collect"
	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/gitstatus"
)

type doctorReport struct {
	ConfigPath        string            `json:"config_path"`
	ConfigExists      bool              `json:"config_exists"`
	Theme             string            `json:"theme"`
	StyleMode         config.StyleMode  `json:"style_mode"`
	Separator         string            `json:"separator"`
	CodexHome         string            `json:"codex_home"`
	SessionsDir       string            `json:"sessions_dir"`
	SessionsDirExists bool              `json:"sessions_dir_exists"`
	LatestRollout     string            `json:"latest_rollout,omitempty"`
	Git               *gitstatus.Status `json:"git,omitempty"`
	Warnings          []string          `json:"warnings"`
}

func newDoctorCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment codexline renders from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := buildDoctorReport(root)
			if err != nil {
				return err
			}
			if root.jsonOut {
				return writeJSON(cmd, report)
			}
			printDoctorReport(cmd, report)
			return nil
		},
	}
}

func buildDoctorReport(root *rootOptions) (doctorReport, error) {
	store := config.NewStore(root.configPath)
	report := doctorReport{
		ConfigPath: store.Path(),
		CodexHome:  config.CodexHome(),
		Warnings:   []string{},
	}
	if _, err := os.Stat(store.Path()); err == nil {
		report.ConfigExists = true
	} else {
		report.Warnings = append(report.Warnings, "no config file, defaults in effect (run codexline init)")
	}

	cfg, err := store.Load()
	if err != nil {
		cfg = config.Default()
		report.Warnings = append(report.Warnings, "config unreadable: "+err.Error())
	}
	report.Theme = cfg.Theme
	report.StyleMode = cfg.Style.Mode
	report.Separator = cfg.Style.Separator

	col, err := collect.Collect(cfg)
	if err != nil {
		return doctorReport{}, err
	}
	report.SessionsDir = col.SessionsDir
	if _, err := os.Stat(col.SessionsDir); err == nil {
		report.SessionsDirExists = true
	} else {
		report.Warnings = append(report.Warnings, "sessions directory does not exist: "+col.SessionsDir)
	}
	report.LatestRollout = col.LatestRollout
	if col.LatestRollout == "" {
		report.Warnings = append(report.Warnings, "no usable rollout file found")
	}
	report.Git = col.Context.Git
	if col.Context.Git == nil {
		report.Warnings = append(report.Warnings, "current directory is not a git repository")
	}
	return report, nil
}

func printDoctorReport(cmd *cobra.Command, report doctorReport) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Config:       %s (exists: %v)\n", report.ConfigPath, report.ConfigExists)
	_, _ = fmt.Fprintf(out, "Theme:        %s\n", report.Theme)
	_, _ = fmt.Fprintf(out, "Style:        %s, separator %q\n", report.StyleMode, report.Separator)
	_, _ = fmt.Fprintf(out, "Codex home:   %s\n", report.CodexHome)
	_, _ = fmt.Fprintf(out, "Sessions dir: %s (exists: %v)\n", report.SessionsDir, report.SessionsDirExists)
	if report.LatestRollout != "" {
		_, _ = fmt.Fprintf(out, "Rollout:      %s\n", report.LatestRollout)
	}
	if report.Git != nil {
		_, _ = fmt.Fprintf(out, "Git:          branch %s\n", report.Git.Branch)
	}
	if len(report.Warnings) == 0 {
		_, _ = fmt.Fprintln(out, "No warnings.")
		return
	}
	for _, w := range report.Warnings {
		_, _ = fmt.Fprintf(out, "Warning: %s\n", w)
	}
}
