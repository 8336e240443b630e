package tui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lusipad/codexline/internal/config"
)

func newTestScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(func() { screen.Fini() })
	return screen
}

func testDeps() Deps {
	return Deps{
		Themes: []string{"default", "minimal", "nord"},
		ApplyTheme: func(base config.Config, name string) (config.Config, error) {
			out := base.Clone()
			out.Theme = name
			return out, nil
		},
		Preview: func(cfg config.Config) (string, error) { return "preview:" + cfg.Theme, nil },
		Save:    func(config.Config) error { return nil },
	}
}

func keyRune(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, 0) }

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, 0) }

func TestInitialFocusIsSegments(t *testing.T) {
	state := newConfigState(config.Default(), testDeps())
	if state.focus != focusSegments {
		t.Fatalf("focus = %q, want %q", state.focus, focusSegments)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	state := newConfigState(config.Default(), testDeps())

	want := []string{focusActions, focusThemes, focusSegments}
	for _, expected := range want {
		if err := handleConfigKey(state, testDeps(), key(tcell.KeyTab)); err != nil {
			t.Fatalf("tab: %v", err)
		}
		if state.focus != expected {
			t.Fatalf("focus = %q, want %q", state.focus, expected)
		}
	}
}

func TestThemeNavigationLeavesConfigUntouched(t *testing.T) {
	deps := testDeps()
	state := newConfigState(config.Default(), deps)
	state.focus = focusThemes

	if err := handleConfigKey(state, deps, key(tcell.KeyDown)); err != nil {
		t.Fatalf("down: %v", err)
	}
	if state.themeSel != 1 {
		t.Fatalf("sel=%d after down", state.themeSel)
	}

	if err := handleConfigKey(state, deps, key(tcell.KeyUp)); err != nil {
		t.Fatalf("up: %v", err)
	}
	if err := handleConfigKey(state, deps, key(tcell.KeyUp)); err != nil {
		t.Fatalf("up: %v", err)
	}
	if state.themeSel != 2 {
		t.Fatalf("up should wrap to last theme, sel=%d", state.themeSel)
	}

	if state.cfg.Theme != config.DefaultTheme {
		t.Fatalf("navigation must not mutate the working config, theme=%q", state.cfg.Theme)
	}
	want := config.Default()
	if *state.cfg.Segments[0].Colors.Text != *want.Segments[0].Colors.Text {
		t.Fatal("navigation must not mutate segment colors")
	}
}

func TestSpaceTogglesSegment(t *testing.T) {
	deps := testDeps()
	state := newConfigState(config.Default(), deps)
	state.focus = focusSegments

	if !state.cfg.Segments[0].IsEnabled() {
		t.Fatal("first default segment starts enabled")
	}
	if err := handleConfigKey(state, deps, keyRune(' ')); err != nil {
		t.Fatalf("space: %v", err)
	}
	if state.cfg.Segments[0].IsEnabled() {
		t.Fatal("space should disable the selected segment")
	}
	if err := handleConfigKey(state, deps, keyRune(' ')); err != nil {
		t.Fatalf("space: %v", err)
	}
	if !state.cfg.Segments[0].IsEnabled() {
		t.Fatal("space should re-enable the selected segment")
	}
}

func TestSwapSegmentFollowsSelection(t *testing.T) {
	deps := testDeps()
	state := newConfigState(config.Default(), deps)
	state.focus = focusSegments

	first := state.cfg.Segments[0].ID
	second := state.cfg.Segments[1].ID

	if err := handleConfigKey(state, deps, keyRune('k')); err != nil {
		t.Fatalf("k: %v", err)
	}
	if state.segmentSel != 0 || state.cfg.Segments[0].ID != first {
		t.Fatal("moving up at the top must be a no-op")
	}

	if err := handleConfigKey(state, deps, keyRune('j')); err != nil {
		t.Fatalf("j: %v", err)
	}
	if state.segmentSel != 1 {
		t.Fatalf("selection should follow the moved segment, sel=%d", state.segmentSel)
	}
	if state.cfg.Segments[0].ID != second || state.cfg.Segments[1].ID != first {
		t.Fatalf("segments not swapped: %v %v", state.cfg.Segments[0].ID, state.cfg.Segments[1].ID)
	}
}

func TestQuitKeys(t *testing.T) {
	deps := testDeps()
	for _, ev := range []*tcell.EventKey{keyRune('q'), key(tcell.KeyESC), key(tcell.KeyCtrlC)} {
		state := newConfigState(config.Default(), deps)
		if err := handleConfigKey(state, deps, ev); !errors.Is(err, errQuit) {
			t.Fatalf("expected quit, got %v", err)
		}
	}
}

func TestSaveMergesThemePersistsAndExits(t *testing.T) {
	var saved *config.Config
	deps := testDeps()
	deps.Save = func(cfg config.Config) error {
		saved = &cfg
		return nil
	}
	state := newConfigState(config.Default(), deps)
	state.focus = focusThemes
	if err := handleConfigKey(state, deps, key(tcell.KeyDown)); err != nil {
		t.Fatalf("down: %v", err)
	}

	if err := handleConfigKey(state, deps, keyRune('s')); !errors.Is(err, errQuit) {
		t.Fatalf("save should exit the configurator, got %v", err)
	}
	if saved == nil {
		t.Fatal("save dependency not called")
	}
	if saved.Theme != "minimal" {
		t.Fatalf("persisted config should carry the selected theme, got %q", saved.Theme)
	}
	if !state.saved {
		t.Fatal("state should record the save")
	}
}

func TestSavedThemeCarriesNoResidueFromPassedOverThemes(t *testing.T) {
	// gruvbox recolors the model segment; minimal does not touch colors.
	// Cycling past gruvbox to minimal and saving must persist exactly
	// what applying minimal to the session's base config produces.
	var saved *config.Config
	deps := Deps{
		Themes: []string{"default", "gruvbox", "minimal"},
		ApplyTheme: func(base config.Config, name string) (config.Config, error) {
			out := base.Clone()
			out.Theme = name
			if name == "gruvbox" {
				c := config.ColorBrightYellow
				out.Segments[0].Colors.Text = &c
			}
			return out, nil
		},
		Preview: func(cfg config.Config) (string, error) { return "preview:" + cfg.Theme, nil },
		Save: func(cfg config.Config) error {
			saved = &cfg
			return nil
		},
	}
	state := newConfigState(config.Default(), deps)
	state.focus = focusThemes

	for i := 0; i < 2; i++ {
		if err := handleConfigKey(state, deps, key(tcell.KeyDown)); err != nil {
			t.Fatalf("down: %v", err)
		}
	}
	if err := handleConfigKey(state, deps, keyRune('s')); !errors.Is(err, errQuit) {
		t.Fatalf("save should exit, got %v", err)
	}

	if saved == nil {
		t.Fatal("save dependency not called")
	}
	if saved.Theme != "minimal" {
		t.Fatalf("theme = %q, want minimal", saved.Theme)
	}
	if got := *saved.Segments[0].Colors.Text; got != config.ColorCyan {
		t.Fatalf("saved model text color = %q, want %q", got, config.ColorCyan)
	}
}

func TestSaveThemeMergeFailureKeepsRunning(t *testing.T) {
	deps := testDeps()
	deps.ApplyTheme = func(config.Config, string) (config.Config, error) {
		return config.Config{}, errors.New("boom")
	}
	saveCalled := false
	deps.Save = func(config.Config) error {
		saveCalled = true
		return nil
	}
	state := newConfigState(config.Default(), deps)

	if err := handleConfigKey(state, deps, keyRune('s')); err != nil {
		t.Fatalf("merge failure must not exit the loop: %v", err)
	}
	if saveCalled {
		t.Fatal("nothing must be persisted when the theme merge fails")
	}
	if state.saved || state.message == "" {
		t.Fatalf("saved=%v message=%q", state.saved, state.message)
	}
}

func TestSaveFailureKeepsRunning(t *testing.T) {
	deps := testDeps()
	deps.Save = func(config.Config) error { return errors.New("disk full") }
	state := newConfigState(config.Default(), deps)

	if err := handleConfigKey(state, deps, keyRune('s')); err != nil {
		t.Fatalf("save failure must not exit the loop: %v", err)
	}
	if state.saved {
		t.Fatal("failed save must not mark state as saved")
	}
	if state.message == "" {
		t.Fatal("failure should surface in the message line")
	}
}

func TestResetRestoresInitialConfig(t *testing.T) {
	deps := testDeps()
	state := newConfigState(config.Default(), deps)
	state.focus = focusSegments

	original := state.cfg.Clone()

	for _, ev := range []*tcell.EventKey{
		keyRune(' '),
		key(tcell.KeyDown),
		keyRune(' '),
		keyRune('j'),
	} {
		if err := handleConfigKey(state, deps, ev); err != nil {
			t.Fatalf("mutate: %v", err)
		}
	}
	if err := handleConfigKey(state, deps, keyRune('r')); err != nil {
		t.Fatalf("r: %v", err)
	}

	for i := range original.Segments {
		if state.cfg.Segments[i].ID != original.Segments[i].ID {
			t.Fatalf("order not restored at %d: %v", i, state.cfg.Segments[i].ID)
		}
		if state.cfg.Segments[i].IsEnabled() != original.Segments[i].IsEnabled() {
			t.Fatalf("enablement not restored for %v", state.cfg.Segments[i].ID)
		}
	}
	if state.message != "Reset" {
		t.Fatalf("message = %q", state.message)
	}
}

func TestEnterRunsSelectedAction(t *testing.T) {
	deps := testDeps()
	state := newConfigState(config.Default(), deps)
	state.focus = focusActions
	state.actionSel = len(configActions) - 1 // Quit

	if err := handleConfigKey(state, deps, key(tcell.KeyEnter)); !errors.Is(err, errQuit) {
		t.Fatalf("expected quit via action, got %v", err)
	}
}

func TestDrawKeepsLastPreviewOnError(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	deps := testDeps()
	state := newConfigState(config.Default(), deps)

	drawConfigurator(screen, state, deps)
	if state.lastPreview != "preview:default" {
		t.Fatalf("preview = %q", state.lastPreview)
	}

	deps.Preview = func(config.Config) (string, error) { return "", errors.New("no data") }
	drawConfigurator(screen, state, deps)
	if state.lastPreview != "preview:default" {
		t.Fatalf("failed preview must keep last good line, got %q", state.lastPreview)
	}
}

func TestDrawPreviewsSelectedThemeWithoutMutating(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	deps := testDeps()
	state := newConfigState(config.Default(), deps)
	state.focus = focusThemes

	if err := handleConfigKey(state, deps, key(tcell.KeyDown)); err != nil {
		t.Fatalf("down: %v", err)
	}
	drawConfigurator(screen, state, deps)

	if state.lastPreview != "preview:minimal" {
		t.Fatalf("preview should reflect the selected theme, got %q", state.lastPreview)
	}
	if state.cfg.Theme != config.DefaultTheme {
		t.Fatalf("preview must not mutate the working config, theme=%q", state.cfg.Theme)
	}
}

func TestDrawFallsBackToUnthemedPreviewOnApplyError(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	deps := testDeps()
	deps.ApplyTheme = func(config.Config, string) (config.Config, error) {
		return config.Config{}, errors.New("boom")
	}
	state := newConfigState(config.Default(), deps)

	drawConfigurator(screen, state, deps)
	if state.lastPreview != "preview:default" {
		t.Fatalf("broken theme apply should preview the unthemed config, got %q", state.lastPreview)
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	state := &menuState{}

	if _, err := handleMenuKey(state, key(tcell.KeyUp)); err != nil {
		t.Fatalf("up: %v", err)
	}
	if state.selected != len(menuChoices)-1 {
		t.Fatalf("up from top should wrap, sel=%d", state.selected)
	}
	if _, err := handleMenuKey(state, key(tcell.KeyDown)); err != nil {
		t.Fatalf("down: %v", err)
	}
	if state.selected != 0 {
		t.Fatalf("down from bottom should wrap, sel=%d", state.selected)
	}
}

func TestMenuEnterReturnsChoice(t *testing.T) {
	state := &menuState{selected: 1}
	choice, err := handleMenuKey(state, key(tcell.KeyEnter))
	if err != nil {
		t.Fatalf("enter: %v", err)
	}
	if choice != MenuConfigure {
		t.Fatalf("choice = %q", choice)
	}
}

func TestMenuQuit(t *testing.T) {
	state := &menuState{}
	if _, err := handleMenuKey(state, keyRune('q')); !errors.Is(err, errQuit) {
		t.Fatalf("expected quit, got %v", err)
	}
}
