package config

import (
	"os"
	"path/filepath"
)

// EnvCodexHome overrides the Codex data root (default ~/.codex).
const EnvCodexHome = "CODEX_HOME"

func CodexHome() string {
	if v := os.Getenv(EnvCodexHome); v != "" {
		return filepath.Clean(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".codex"
	}
	return filepath.Join(home, ".codex")
}

// Dir is the codexline configuration directory under the Codex home.
func Dir() string {
	return filepath.Join(CodexHome(), "codexline")
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

func ThemesDir() string {
	return filepath.Join(Dir(), "themes")
}

// SessionsDir resolves the rollout scan root, honoring the config override.
func SessionsDir(cfg Config) string {
	if cfg.Rollout.PathOverride != "" {
		return filepath.Clean(os.ExpandEnv(cfg.Rollout.PathOverride))
	}
	return filepath.Join(CodexHome(), "sessions")
}
