// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters and replaces invalid UTF-8 bytes so
// user-supplied strings (track titles from the config file) cannot corrupt
// the terminal layout.
func Sanitize(s string) string {
	clean := true
	for i := range len(s) {
		if b := s[i]; b < 0x20 && b != '\t' {
			clean = false
			break
		}
	}
	if clean && utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Truncate shortens a string to fit maxWidth, appending a single-character
// ellipsis when it had to cut. Wide characters are measured properly.
func Truncate(s string, maxWidth int) string {
	s = Sanitize(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 1 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width. Width is
// measured ANSI-aware so styled content pads correctly.
func Pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Row lays out left and right aligned content in exactly width cells,
// keeping at least one cell of gap. Inputs may carry ANSI styling.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center pads a string on both sides so it occupies exactly width cells.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	leftPad := (width - w) / 2
	return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", width-w-leftPad)
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
