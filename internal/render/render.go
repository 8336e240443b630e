// Package render serializes segment pieces into the final status line.
// Output is deterministic: the plain/styled choice is an explicit argument,
// never sniffed from the terminal.
package render

import (
	"strings"

	"github.com/lusipad/codexline/internal/config"
	"github.com/lusipad/codexline/internal/segment"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

var ansiCodes = map[config.NamedColor]string{
	config.ColorRed:           "31",
	config.ColorGreen:         "32",
	config.ColorYellow:        "33",
	config.ColorBlue:          "34",
	config.ColorMagenta:       "35",
	config.ColorCyan:          "36",
	config.ColorWhite:         "37",
	config.ColorBrightBlack:   "90",
	config.ColorBrightRed:     "91",
	config.ColorBrightGreen:   "92",
	config.ColorBrightYellow:  "93",
	config.ColorBrightBlue:    "94",
	config.ColorBrightMagenta: "95",
	config.ColorBrightCyan:    "96",
	config.ColorBrightWhite:   "97",
}

// Line joins the pieces with separator. Plain output carries no escape
// sequences; styled output colors icon and value independently.
func Line(pieces []segment.Piece, separator string, plain bool) string {
	parts := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if plain {
			parts = append(parts, piece.PlainText())
		} else {
			parts = append(parts, styled(piece))
		}
	}
	return strings.Join(parts, separator)
}

func styled(piece segment.Piece) string {
	var b strings.Builder
	if piece.Icon != "" {
		b.WriteString(colorize(piece.Icon, piece.IconColor, piece.Bold))
		b.WriteString(" ")
	}
	b.WriteString(colorize(piece.Value, piece.TextColor, piece.Bold))
	return b.String()
}

func colorize(text string, color *config.NamedColor, bold bool) string {
	var prefix string
	if color != nil {
		if code, ok := ansiCodes[*color]; ok {
			prefix = "\x1b[" + code + "m"
		}
	}
	if bold {
		prefix = ansiBold + prefix
	}
	if prefix == "" {
		return text
	}
	return prefix + text + ansiReset
}
