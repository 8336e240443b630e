// Package theme resolves named themes (builtin or user TOML files) and merges
// them over a base configuration. A theme is override-only: it may replace
// the style block wholesale and patch individual segments' icon/color blocks,
// and it touches nothing else.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"

	"github.com/lusipad/codexline/internal/config"
)

// ErrNotFound reports a theme name that is neither builtin nor on disk.
var ErrNotFound = errors.New("theme not found")

type Spec struct {
	Name     string              `toml:"name"`
	Style    *config.StyleConfig `toml:"style,omitempty"`
	Segments []SegmentOverride   `toml:"segments,omitempty"`
}

// SegmentOverride patches one segment. Nil blocks leave the base untouched.
type SegmentOverride struct {
	ID     config.SegmentID    `toml:"id"`
	Icon   *config.IconConfig  `toml:"icon,omitempty"`
	Colors *config.ColorConfig `toml:"colors,omitempty"`
}

// Apply merges the named theme over base and returns the effective config.
// The base is never mutated.
func Apply(base config.Config, name, themesDir string) (config.Config, error) {
	spec, err := Load(name, themesDir)
	if err != nil {
		return config.Config{}, err
	}

	merged := base.Clone()
	merged.Theme = name

	if spec.Style != nil {
		merged.Style = *spec.Style
	}

	byID := map[config.SegmentID]int{}
	for i, seg := range merged.Segments {
		byID[seg.ID] = i
	}
	for _, override := range spec.Segments {
		idx, ok := byID[override.ID]
		if !ok {
			continue
		}
		if override.Icon != nil {
			merged.Segments[idx].Icon = *override.Icon
		}
		if override.Colors != nil {
			merged.Segments[idx].Colors = override.Colors.Clone()
		}
	}
	return merged, nil
}

// Load returns the named theme, builtins taking precedence over files.
func Load(name, themesDir string) (Spec, error) {
	if spec, ok := Builtin(name); ok {
		return spec, nil
	}

	path := filepath.Join(themesDir, name+".toml")
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Spec{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Spec{}, fmt.Errorf("read theme file %s: %w", path, err)
	}

	var spec Spec
	if err := toml.Unmarshal(b, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	return spec, nil
}

// ListNames returns builtin names plus the *.toml stems found in themesDir,
// deduplicated and sorted. A missing directory lists builtins only.
func ListNames(themesDir string) ([]string, error) {
	names := BuiltinNames()
	seen := map[string]bool{}
	for _, name := range names {
		seen[name] = true
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sort.Strings(names)
			return names, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", themesDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".toml")]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// WriteBuiltinsIfMissing materializes the builtin themes as editable TOML
// files. Existing files are left alone, so user edits survive.
func WriteBuiltinsIfMissing(themesDir string) error {
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return fmt.Errorf("create themes dir %s: %w", themesDir, err)
	}
	for _, name := range BuiltinNames() {
		path := filepath.Join(themesDir, name+".toml")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		spec, _ := Builtin(name)
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(spec); err != nil {
			return fmt.Errorf("encode theme %s: %w", name, err)
		}
		if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write theme file %s: %w", path, err)
		}
	}
	return nil
}
