package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayAt composites layer on top of base with its top-left corner at cell
// (x, y). The result is clipped to width×height; a zero width or height
// means "as large as base".
func OverlayAt(base, layer string, x, y, width, height int) string {
	baseLines := splitLines(base)
	if height <= 0 {
		height = max(len(baseLines), y+len(splitLines(layer)))
	}
	if width <= 0 {
		width = max(maxLineWidth(baseLines), x+maxLineWidth(splitLines(layer)))
	}
	baseLines = fitLines(baseLines, height)

	layerLines := splitLines(layer)
	layerWidth := maxLineWidth(layerLines)
	for i, line := range layerLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		segment := padRightANSI(line, layerWidth)
		right := ansi.TruncateLeft(target, x+layerWidth, "")
		baseLines[row] = padRightANSI(left+segment+right, width)
	}
	return strings.Join(baseLines, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func fitLines(lines []string, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
