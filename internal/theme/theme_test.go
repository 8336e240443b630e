package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lusipad/codexline/internal/config"
)

func TestApplyBuiltinReplacesStyleWholesale(t *testing.T) {
	base := config.Default()
	base.Style = config.StyleConfig{Mode: config.ModePowerline, Separator: " >> "}

	merged, err := Apply(base, "minimal", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.ModePlain, merged.Style.Mode)
	require.Equal(t, " | ", merged.Style.Separator)
	require.Equal(t, "minimal", merged.Theme)
}

func TestApplyIsOverrideOnly(t *testing.T) {
	base := config.Default()
	base.Segments[2].SetOption("detailed", true)
	base.Segments[4].SetEnabled(false)

	merged, err := Apply(base, "nord", t.TempDir())
	require.NoError(t, err)

	// Untouched fields are identical to the base.
	require.Equal(t, base.Rollout, merged.Rollout)
	for i := range base.Segments {
		require.Equal(t, base.Segments[i].ID, merged.Segments[i].ID)
		require.Equal(t, base.Segments[i].IsEnabled(), merged.Segments[i].IsEnabled())
		require.Equal(t, base.Segments[i].Icon, merged.Segments[i].Icon)
		require.Equal(t, base.Segments[i].Options, merged.Segments[i].Options)
	}

	// Listed segments got exactly their color block replaced.
	require.Equal(t, config.ColorCyan, *merged.Segments[0].Colors.Text)
	require.Equal(t, config.ColorBrightCyan, *merged.Segments[1].Colors.Text)

	// The base itself is untouched.
	require.Equal(t, "default", base.Theme)
	require.Equal(t, config.ColorCyan, *base.Segments[0].Colors.Text)
}

func TestApplyUnknownThemeFails(t *testing.T) {
	_, err := Apply(config.Default(), "no-such-theme", t.TempDir())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestApplyUserThemeFromFile(t *testing.T) {
	dir := t.TempDir()
	raw := `name = "custom"

[style]
mode = "powerline"
separator = " / "

[[segments]]
id = "git"

[segments.icon]
plain = "G"
nerd_font = ""

[segments.colors]
icon = "bright_red"
text = "bright_red"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.toml"), []byte(raw), 0o644))

	merged, err := Apply(config.Default(), "custom", dir)
	require.NoError(t, err)
	require.Equal(t, config.ModePowerline, merged.Style.Mode)

	var git config.SegmentConfig
	for _, seg := range merged.Segments {
		if seg.ID == config.SegmentGit {
			git = seg
		}
	}
	require.Equal(t, "G", git.Icon.Plain)
	require.Equal(t, config.ColorBrightRed, *git.Colors.Text)
	// Model keeps its default colors; the theme never listed it.
	require.Equal(t, config.ColorCyan, *merged.Segments[0].Colors.Text)
}

func TestApplyIgnoresOverridesForAbsentSegments(t *testing.T) {
	base := config.Default()
	base.Segments = base.Segments[:2] // model, cwd only

	merged, err := Apply(base, "gruvbox", t.TempDir())
	require.NoError(t, err)
	require.Len(t, merged.Segments, 2)
	require.Equal(t, config.ColorBrightYellow, *merged.Segments[0].Colors.Text)
}

func TestBuiltinCatalogIsClosed(t *testing.T) {
	for _, name := range BuiltinNames() {
		spec, ok := Builtin(name)
		if !ok {
			t.Fatalf("builtin %q missing from catalog", name)
		}
		if spec.Name != name {
			t.Fatalf("builtin %q reports name %q", name, spec.Name)
		}
	}
	if _, ok := Builtin("definitely-not-builtin"); ok {
		t.Fatal("unexpected builtin")
	}
}

func TestWriteBuiltinsIfMissingIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	require.NoError(t, WriteBuiltinsIfMissing(dir))

	marker := []byte("# user edit\nname = \"nord\"\n")
	nordPath := filepath.Join(dir, "nord.toml")
	require.NoError(t, os.WriteFile(nordPath, marker, 0o644))

	require.NoError(t, WriteBuiltinsIfMissing(dir))
	got, err := os.ReadFile(nordPath)
	require.NoError(t, err)
	require.Equal(t, marker, got, "existing theme file must not be overwritten")

	for _, name := range BuiltinNames() {
		if _, err := os.Stat(filepath.Join(dir, name+".toml")); err != nil {
			t.Fatalf("theme %q not materialized: %v", name, err)
		}
	}
}

func TestListNamesMergesBuiltinsAndFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.toml"), []byte("name = \"custom\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nord.toml"), []byte("name = \"nord\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))

	names, err := ListNames(dir)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, name := range names {
		seen[name]++
	}
	require.Equal(t, 1, seen["nord"], "duplicates collapse")
	require.Equal(t, 1, seen["custom"])
	require.Zero(t, seen["readme"])
	require.Len(t, names, len(BuiltinNames())+1)
}

func TestListNamesMissingDirListsBuiltins(t *testing.T) {
	names, err := ListNames(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Len(t, names, len(BuiltinNames()))
}
