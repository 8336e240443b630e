// Package rollout recovers the latest usage/session snapshot from Codex
// rollout files: append-only JSONL logs rotated per session under the
// sessions directory.
package rollout

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TokenUsage is the cumulative token accounting from the newest token_count
// record of the winning rollout file.
type TokenUsage struct {
	InputTokens        int64  `json:"input_tokens"`
	OutputTokens       int64  `json:"output_tokens"`
	TotalTokens        int64  `json:"total_tokens"`
	ModelContextWindow *int64 `json:"model_context_window,omitempty"`
	UsedPercent        *int64 `json:"used_percent,omitempty"`
	RemainingPercent   *int64 `json:"remaining_percent,omitempty"`
}

type RateLimits struct {
	PrimaryUsedPercent   *float64 `json:"primary_used_percent,omitempty"`
	SecondaryUsedPercent *float64 `json:"secondary_used_percent,omitempty"`
}

type SessionMeta struct {
	ThreadID      string `json:"thread_id,omitempty"`
	CLIVersion    string `json:"cli_version,omitempty"`
	ModelProvider string `json:"model_provider,omitempty"`
}

// Snapshot is everything a single rollout file yielded. Empty fields mean the
// file (or the whole scan) produced no data for them.
type Snapshot struct {
	Path    string       `json:"path,omitempty"`
	Model   string       `json:"model,omitempty"`
	Usage   *TokenUsage  `json:"usage,omitempty"`
	Limits  *RateLimits  `json:"limits,omitempty"`
	Session *SessionMeta `json:"session,omitempty"`
}

func (s Snapshot) Empty() bool {
	return s.Model == "" && s.Usage == nil && s.Limits == nil && s.Session == nil
}

// Policy bounds the scan. Now is injected so tests control the age cutoff.
type Policy struct {
	ScanDepthDays int
	MaxFiles      int
	Now           time.Time
}

// Scan walks sessionsDir for .jsonl files no older than the scan depth,
// newest first, and returns the snapshot of the first file that yields any
// data. Older files are never merged in: one file wins outright, even when an
// older one carries fields the winner lacks.
func Scan(sessionsDir string, pol Policy) Snapshot {
	now := pol.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.AddDate(0, 0, -pol.ScanDepthDays)

	type candidate struct {
		path  string
		mtime time.Time
	}
	var files []candidate

	// Walk errors degrade to an empty snapshot: a missing or unreadable
	// sessions dir is not an error condition for the status line.
	_ = filepath.WalkDir(sessionsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".jsonl") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			return nil
		}
		files = append(files, candidate{path: path, mtime: info.ModTime()})
		return nil
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].mtime.After(files[j].mtime)
	})

	examined := 0
	for _, f := range files {
		if examined >= pol.MaxFiles {
			break
		}
		examined++

		snap, err := ParseFile(f.path)
		if err != nil || snap.Empty() {
			continue
		}
		snap.Path = f.path
		return snap
	}
	return Snapshot{}
}
