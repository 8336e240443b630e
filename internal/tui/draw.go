package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type rect struct {
	y int
	x int
	h int
	w int
}

type row struct {
	label    string
	dim      bool
	bold     bool
	selected bool
	focused  bool
}

func drawBox(screen tcell.Screen, r rect, title string, focused bool) {
	if r.w <= 1 || r.h <= 1 {
		return
	}
	borderStyle := tcell.StyleDefault
	if focused {
		borderStyle = borderStyle.Bold(true)
	} else {
		borderStyle = borderStyle.Dim(true)
	}
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		screen.SetContent(x, r.y, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, r.y+r.h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		screen.SetContent(r.x, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(r.x+r.w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(r.x, r.y+r.h-1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y+r.h-1, tcell.RuneLRCorner, nil, borderStyle)

	titleStyle := tcell.StyleDefault.Reverse(true)
	if focused {
		titleStyle = titleStyle.Bold(true)
		title = "> " + title + " <"
	} else {
		title = " " + title + " "
	}
	writeText(screen, r.x+1, r.y, truncate(title, max(0, r.w-2)), titleStyle)
}

func drawList(screen tcell.Screen, r rect, rows []row) {
	if r.h < 3 || r.w < 4 {
		return
	}
	innerH := r.h - 2
	innerW := r.w - 2
	for i := 0; i < innerH; i++ {
		y := r.y + 1 + i
		if i >= len(rows) {
			writeText(screen, r.x+1, y, padRight("", innerW), tcell.StyleDefault)
			continue
		}
		item := rows[i]
		style := tcell.StyleDefault
		if item.bold {
			style = style.Bold(true)
		}
		if item.selected {
			style = style.Reverse(true)
			if item.focused {
				style = style.Bold(true)
			} else {
				style = style.Dim(true)
			}
		} else if item.dim {
			style = style.Dim(true)
		}
		writeText(screen, r.x+1, y, padRight(truncate(item.label, innerW), innerW), style)
	}
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	var buf strings.Builder
	curWidth := 0
	for _, ch := range s {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			buf.WriteRune(ch)
			continue
		}
		if curWidth+chWidth > width {
			break
		}
		buf.WriteRune(ch)
		curWidth += chWidth
	}
	return buf.String()
}

func padRight(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-displayWidth(s))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
