package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

type MenuChoice string

const (
	MenuRender    MenuChoice = "Render"
	MenuConfigure MenuChoice = "Configure"
	MenuInit      MenuChoice = "Init"
	MenuCheck     MenuChoice = "Check"
	MenuExit      MenuChoice = "Exit"
)

var menuChoices = []MenuChoice{MenuRender, MenuConfigure, MenuInit, MenuCheck, MenuExit}

type menuState struct {
	selected int
}

// Menu shows the top-level action picker. It returns MenuExit when the user
// backs out with q or Esc.
func Menu() (MenuChoice, error) {
	screen, err := newScreen()
	if err != nil {
		return MenuExit, err
	}
	if err := screen.Init(); err != nil {
		return MenuExit, err
	}
	defer screen.Fini()

	state := &menuState{}
	for {
		drawMenu(screen, state)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			choice, err := handleMenuKey(state, ev)
			if err != nil {
				if errors.Is(err, errQuit) {
					return MenuExit, nil
				}
				return MenuExit, err
			}
			if choice != "" {
				return choice, nil
			}
		}
	}
}

func handleMenuKey(state *menuState, ev *tcell.EventKey) (MenuChoice, error) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyESC:
		return "", errQuit
	case tcell.KeyUp:
		state.selected = wrapIndex(state.selected-1, len(menuChoices))
	case tcell.KeyDown:
		state.selected = wrapIndex(state.selected+1, len(menuChoices))
	case tcell.KeyEnter:
		return menuChoices[state.selected], nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return "", errQuit
		case 'k':
			state.selected = wrapIndex(state.selected-1, len(menuChoices))
		case 'j':
			state.selected = wrapIndex(state.selected+1, len(menuChoices))
		}
	}
	return "", nil
}

func drawMenu(screen tcell.Screen, state *menuState) {
	screen.Clear()

	maxX, maxY := screen.Size()
	boxW := min(40, maxX)
	boxH := min(len(menuChoices)+2, max(3, maxY-1))

	rows := make([]row, 0, len(menuChoices))
	for i, choice := range menuChoices {
		r := row{label: string(choice)}
		if i == state.selected {
			r.selected = true
			r.focused = true
		}
		rows = append(rows, r)
	}

	drawBox(screen, rect{y: 0, x: 0, h: boxH, w: boxW}, "codexline", true)
	drawList(screen, rect{y: 0, x: 0, h: boxH, w: boxW}, rows)

	if maxY >= 1 {
		hint := "Up/Down: select  Enter: confirm  q: quit"
		writeText(screen, 0, maxY-1, padRight(truncate(hint, maxX), maxX), tcell.StyleDefault.Reverse(true))
	}

	screen.Show()
}
