// Package text draws the game onto a line-oriented ANSI terminal.
package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Style is an SGR escape sequence.
type Style string

// Styles used by the renderer and dialogs.
const (
	Bold         Style = "\033[1m"
	Red          Style = "\033[31m"
	Yellow       Style = "\033[33m"
	Blue         Style = "\033[34m"
	Magenta      Style = "\033[35m"
	Cyan         Style = "\033[36m"
	BrightBlack  Style = "\033[90m"
	BrightYellow Style = "\033[93m"
)

const (
	reset = "\033[0m"
	// ClearScreen homes the cursor and erases the display.
	ClearScreen = "\033[H\033[2J"
)

// Apply wraps s in st, restoring the default style afterwards.
func (st Style) Apply(s string) string {
	return string(st) + s + reset
}

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes every SGR sequence from s.
func Strip(s string) string {
	return sgr.ReplaceAllLiteralString(s, "")
}

// Width returns the number of terminal columns s occupies once styling is
// removed. East Asian wide and fullwidth runes take two columns.
func Width(s string) int {
	n := 0
	for _, r := range Strip(s) {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// PadRight pads s with spaces to cols columns.
// Strings already at least that wide are returned unchanged.
func PadRight(s string, cols int) string {
	if n := Width(s); n < cols {
		return s + strings.Repeat(" ", cols-n)
	}
	return s
}
