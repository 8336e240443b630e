// Package tui hosts the full-screen configurator and the main menu.
package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lusipad/codexline/internal/config"
)

var errQuit = errors.New("quit")

var newScreen = tcell.NewScreen

const (
	focusThemes   = "themes"
	focusSegments = "segments"
	focusActions  = "actions"
)

type configAction string

const (
	actionSave  configAction = "Save"
	actionReset configAction = "Reset"
	actionQuit  configAction = "Quit"
)

var configActions = []configAction{actionSave, actionReset, actionQuit}

// Deps supplies everything the configurator needs from the outside world so
// the event loop stays testable.
type Deps struct {
	Themes     []string
	ApplyTheme func(base config.Config, name string) (config.Config, error)
	Preview    func(cfg config.Config) (string, error)
	Save       func(cfg config.Config) error
}

type configState struct {
	cfg     config.Config
	initial config.Config
	themes  []string
	focus   string

	themeSel   int
	segmentSel int
	actionSel  int

	lastPreview string
	message     string
	saved       bool
}

func newConfigState(initial config.Config, deps Deps) *configState {
	state := &configState{
		cfg:     initial.Clone(),
		initial: initial.Clone(),
		themes:  deps.Themes,
		focus:   focusSegments,
	}
	for i, name := range state.themes {
		if name == initial.Theme {
			state.themeSel = i
			break
		}
	}
	return state
}

func (s *configState) selectedTheme() string {
	if s.themeSel < 0 || s.themeSel >= len(s.themes) {
		return ""
	}
	return s.themes[s.themeSel]
}

// Configure runs the interactive configurator against initial. The working
// config stays unthemed while the session runs; the selected theme is merged
// into the preview each frame and into the persisted config at save time.
// It returns the final configuration and whether a save happened.
func Configure(initial config.Config, deps Deps) (config.Config, bool, error) {
	if deps.Preview == nil || deps.Save == nil || deps.ApplyTheme == nil {
		return initial, false, errors.New("incomplete configurator dependencies")
	}

	state := newConfigState(initial, deps)

	screen, err := newScreen()
	if err != nil {
		return initial, false, err
	}
	if err := screen.Init(); err != nil {
		return initial, false, err
	}
	defer screen.Fini()

	for {
		drawConfigurator(screen, state, deps)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if err := handleConfigKey(state, deps, ev); err != nil {
				if errors.Is(err, errQuit) {
					return state.cfg, state.saved, nil
				}
				return state.cfg, state.saved, err
			}
		}
	}
}

func handleConfigKey(state *configState, deps Deps, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyESC:
		return errQuit
	case tcell.KeyTab:
		switch state.focus {
		case focusThemes:
			state.focus = focusSegments
		case focusSegments:
			state.focus = focusActions
		default:
			state.focus = focusThemes
		}
		return nil
	case tcell.KeyUp:
		state.moveSelection(-1)
		return nil
	case tcell.KeyDown:
		state.moveSelection(1)
		return nil
	case tcell.KeyEnter:
		if state.focus == focusActions {
			return state.runAction(deps, configActions[state.actionSel])
		}
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return errQuit
		case 's', 'S':
			return state.runAction(deps, actionSave)
		case 'r', 'R':
			return state.runAction(deps, actionReset)
		case ' ':
			if state.focus == focusSegments {
				state.toggleSelectedSegment()
			}
			return nil
		case 'j':
			if state.focus == focusSegments {
				state.swapSegment(1)
			}
			return nil
		case 'k':
			if state.focus == focusSegments {
				state.swapSegment(-1)
			}
			return nil
		}
	}
	return nil
}

// moveSelection moves the cursor in the focused list. Theme navigation only
// changes which name is selected; the working config is untouched until Save.
func (s *configState) moveSelection(delta int) {
	switch s.focus {
	case focusThemes:
		s.themeSel = wrapIndex(s.themeSel+delta, len(s.themes))
	case focusSegments:
		s.segmentSel = wrapIndex(s.segmentSel+delta, len(s.cfg.Segments))
	case focusActions:
		s.actionSel = wrapIndex(s.actionSel+delta, len(configActions))
	}
}

func (s *configState) toggleSelectedSegment() {
	if s.segmentSel < 0 || s.segmentSel >= len(s.cfg.Segments) {
		return
	}
	seg := &s.cfg.Segments[s.segmentSel]
	seg.SetEnabled(!seg.IsEnabled())
}

// swapSegment moves the selected segment by delta and keeps it selected.
// Moves past either end are ignored.
func (s *configState) swapSegment(delta int) {
	i := s.segmentSel
	j := i + delta
	if i < 0 || i >= len(s.cfg.Segments) || j < 0 || j >= len(s.cfg.Segments) {
		return
	}
	s.cfg.Segments[i], s.cfg.Segments[j] = s.cfg.Segments[j], s.cfg.Segments[i]
	s.segmentSel = j
}

func (s *configState) runAction(deps Deps, action configAction) error {
	switch action {
	case actionSave:
		cfg := s.cfg
		if name := s.selectedTheme(); name != "" {
			merged, err := deps.ApplyTheme(s.cfg, name)
			if err != nil {
				s.message = "theme " + name + ": " + err.Error()
				return nil
			}
			cfg = merged
		}
		if err := deps.Save(cfg); err != nil {
			s.message = "save failed: " + err.Error()
			return nil
		}
		s.cfg = cfg
		s.saved = true
		return errQuit
	case actionReset:
		s.cfg = s.initial.Clone()
		s.segmentSel = 0
		for i, name := range s.themes {
			if name == s.cfg.Theme {
				s.themeSel = i
				break
			}
		}
		s.message = "Reset"
	case actionQuit:
		return errQuit
	}
	return nil
}

func drawConfigurator(screen tcell.Screen, state *configState, deps Deps) {
	screen.Clear()

	previewCfg := state.cfg
	if name := state.selectedTheme(); name != "" {
		if themed, err := deps.ApplyTheme(state.cfg, name); err == nil {
			previewCfg = themed
		}
	}
	if preview, err := deps.Preview(previewCfg); err == nil {
		state.lastPreview = preview
	}

	maxX, maxY := screen.Size()
	boxH := max(3, maxY-2)
	leftW := maxX / 3
	midW := maxX / 3
	rightW := maxX - leftW - midW

	themeRows := make([]row, 0, len(state.themes))
	for i, name := range state.themes {
		r := row{label: name, bold: name == state.cfg.Theme}
		if i == state.themeSel {
			r.selected = true
			r.focused = state.focus == focusThemes
		}
		themeRows = append(themeRows, r)
	}

	segmentRows := make([]row, 0, len(state.cfg.Segments))
	for i, seg := range state.cfg.Segments {
		mark := "[ ] "
		if seg.IsEnabled() {
			mark = "[x] "
		}
		r := row{label: mark + string(seg.ID)}
		if !seg.IsEnabled() {
			r.dim = true
		}
		if i == state.segmentSel {
			r.selected = true
			r.focused = state.focus == focusSegments
		}
		segmentRows = append(segmentRows, r)
	}

	actionRows := make([]row, 0, len(configActions))
	for i, action := range configActions {
		r := row{label: string(action)}
		if i == state.actionSel {
			r.selected = true
			r.focused = state.focus == focusActions
		}
		actionRows = append(actionRows, r)
	}

	drawBox(screen, rect{y: 0, x: 0, h: boxH, w: leftW}, "Themes", state.focus == focusThemes)
	drawList(screen, rect{y: 0, x: 0, h: boxH, w: leftW}, themeRows)
	drawBox(screen, rect{y: 0, x: leftW, h: boxH, w: midW}, "Segments", state.focus == focusSegments)
	drawList(screen, rect{y: 0, x: leftW, h: boxH, w: midW}, segmentRows)
	drawBox(screen, rect{y: 0, x: leftW + midW, h: boxH, w: rightW}, "Actions", state.focus == focusActions)
	drawList(screen, rect{y: 0, x: leftW + midW, h: boxH, w: rightW}, actionRows)

	if maxY >= 2 {
		writeText(screen, 0, maxY-2, padRight(truncate(state.lastPreview, maxX), maxX), tcell.StyleDefault)
	}
	if maxY >= 1 {
		hint := "Tab: switch  Space: toggle  j/k: move  Enter: run action  s: save  r: reset  q: quit"
		if state.message != "" {
			hint = state.message
		}
		writeText(screen, 0, maxY-1, padRight(truncate(hint, maxX), maxX), tcell.StyleDefault.Reverse(true))
	}

	screen.Show()
}

func wrapIndex(v, n int) int {
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}
