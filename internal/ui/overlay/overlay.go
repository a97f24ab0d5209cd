// Package overlay composites a floating view over a base view. The panel's
// animated frame is drawn by placing its rendered lines over the background
// at the frame's row and column.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ComposeAt draws overlay on top of base with its first line at row and its
// first column at col. Lines are replaced wholesale across the overlay's
// visible width; the functions are ANSI-aware so styled text survives.
func ComposeAt(base, overlay string, width, row, col int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		target := row + i
		if target < 0 || target >= len(baseLines) {
			continue
		}

		visible := ansi.StringWidth(overlayLine)
		if visible == 0 {
			continue
		}

		startCol := max(col, 0)
		endCol := min(startCol+visible, width)

		baseLine := baseLines[target]
		if bw := ansi.StringWidth(baseLine); bw < width {
			baseLine += strings.Repeat(" ", width-bw)
		}

		result := ansi.Cut(baseLine, 0, startCol) + ansi.Cut(overlayLine, 0, endCol-startCol)
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[target] = result
	}

	return strings.Join(baseLines, "\n")
}
