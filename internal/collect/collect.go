// Package collect assembles the immutable per-invocation StatusContext from
// the git probe, the rollout scanner, and the process environment.
package collect

import (
	"fmt"
	"os"
	"time"

	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/gitstatus"
	"github.com/lusipad/codexline/internal/rollout"
)

// StatusContext is one frozen view of the world. A nil/empty field means "no
// data available", not an error.
type StatusContext struct {
	Now         time.Time            `json:"now"`
	Cwd         string               `json:"cwd"`
	ProjectRoot string               `json:"project_root,omitempty"`
	Model       string               `json:"model,omitempty"`
	Git         *gitstatus.Status    `json:"git,omitempty"`
	Usage       *rollout.TokenUsage  `json:"usage,omitempty"`
	Limits      *rollout.RateLimits  `json:"limits,omitempty"`
	Session     *rollout.SessionMeta `json:"session,omitempty"`
}

// Collection wraps the context with the paths the collectors actually used,
// for doctor/inspect output.
type Collection struct {
	CodexHome     string        `json:"codex_home"`
	SessionsDir   string        `json:"sessions_dir"`
	LatestRollout string        `json:"latest_rollout,omitempty"`
	Context       StatusContext `json:"context"`
}

// Collect runs the whole collection path once. The only fatal condition is an
// undeterminable working directory; a missing repo or empty sessions dir
// degrades to absent fields.
func Collect(cfg config.Config) (Collection, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Collection{}, fmt.Errorf("get current directory: %w", err)
	}

	git := gitstatus.Probe(cwd)
	projectRoot := ""
	if git != nil {
		projectRoot = gitstatus.Root(cwd)
	}

	sessionsDir := config.SessionsDir(cfg)
	snap := rollout.Scan(sessionsDir, rollout.Policy{
		ScanDepthDays: cfg.Rollout.ScanDepthDays,
		MaxFiles:      cfg.Rollout.MaxFiles,
	})

	return Collection{
		CodexHome:     config.CodexHome(),
		SessionsDir:   sessionsDir,
		LatestRollout: snap.Path,
		Context: StatusContext{
			Now:         time.Now().UTC(),
			Cwd:         cwd,
			ProjectRoot: projectRoot,
			Model:       snap.Model,
			Git:         git,
			Usage:       snap.Usage,
			Limits:      snap.Limits,
			Session:     snap.Session,
		},
	}, nil
}
