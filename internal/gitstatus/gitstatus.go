// Package gitstatus probes the working directory's git state by invoking the
// git binary and parsing its porcelain v2 output. Any failure (not a repo, git
// missing, non-zero exit) degrades to "no git data" instead of an error.
package gitstatus

import (
	"os/exec"
	"strconv"
	"strings"
)

type Status struct {
	Branch     string `json:"branch"`
	Dirty      bool   `json:"dirty"`
	Staged     int    `json:"staged"`
	Unstaged   int    `json:"unstaged"`
	Untracked  int    `json:"untracked"`
	Conflicted int    `json:"conflicted"`
	Ahead      *int   `json:"ahead,omitempty"`
	Behind     *int   `json:"behind,omitempty"`
}

// Probe returns the git status for dir, or nil when dir is not under version
// control. Spawns exactly one git process.
func Probe(dir string) *Status {
	out, ok := runGit(dir, "status", "--porcelain=2", "--branch")
	if !ok {
		return nil
	}
	return parsePorcelain(out)
}

// Root returns the repository top-level directory, or "" when unknown.
func Root(dir string) string {
	out, ok := runGit(dir, "rev-parse", "--show-toplevel")
	if !ok {
		return ""
	}
	return strings.TrimSpace(out)
}

func runGit(dir string, args ...string) (string, bool) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return string(out), true
}

// parsePorcelain folds `git status --porcelain=2 --branch` output into a
// Status. Header lines carry branch/ahead-behind info; `1 `/`2 ` lines are
// ordinary changes with an XY code, `u ` lines are conflicts, `? ` lines are
// untracked files.
func parsePorcelain(out string) *Status {
	st := &Status{Branch: "unknown"}

	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "# branch.head "); ok {
			st.Branch = strings.TrimSpace(rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "# branch.ab "); ok {
			st.Ahead, st.Behind = parseAheadBehind(rest)
			continue
		}
		if strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 ") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			xy := fields[1]
			if len(xy) >= 1 && xy[0] != '.' {
				st.Staged++
			}
			if len(xy) >= 2 && xy[1] != '.' {
				st.Unstaged++
			}
			continue
		}
		if strings.HasPrefix(line, "u ") {
			st.Conflicted++
			continue
		}
		if strings.HasPrefix(line, "? ") {
			st.Untracked++
		}
	}

	st.Dirty = st.Staged+st.Unstaged+st.Untracked+st.Conflicted > 0
	return st
}

// parseAheadBehind reads "+N -M". A missing or malformed part stays nil
// rather than turning into zero.
func parseAheadBehind(rest string) (ahead, behind *int) {
	parts := strings.Fields(rest)
	if len(parts) > 0 {
		if v, ok := strings.CutPrefix(parts[0], "+"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				ahead = &n
			}
		}
	}
	if len(parts) > 1 {
		if v, ok := strings.CutPrefix(parts[1], "-"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				behind = &n
			}
		}
	}
	return ahead, behind
}
