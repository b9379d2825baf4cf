package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Row is one visible option in an open list.
type Row struct {
	Label       string
	Selected    bool
	Highlighted bool
}

// OptionList describes the open part of a select. Rows holds only the
// visible window; MoreAbove and MoreBelow mark a scrolled catalog.
type OptionList struct {
	Width     int
	Rows      []Row
	MoreAbove bool
	MoreBelow bool
	Focused   bool
}

// ListLayout reports where RenderOptionList drew rows. Row i occupies line
// FirstRow+i, columns RowSpan.
type ListLayout struct {
	Height   int
	FirstRow int
	RowSpan  Span
}

// RenderOptionList draws a bordered list directly under a field of the same
// width.
func RenderOptionList(l OptionList, th Theme) (string, ListLayout) {
	width := max(l.Width, MinFieldWidth)
	inner := width - 2

	border := th.Border
	if l.Focused {
		border = th.BorderFocused
	}
	b := lipgloss.RoundedBorder()

	lines := make([]string, 0, len(l.Rows)+2)
	lines = append(lines, border.Render(borderLine(b.TopLeft, b.Top, b.TopRight, width, hint(l.MoreAbove, "↑ more"))))
	if len(l.Rows) == 0 {
		empty := th.Muted.Render(padRightANSI(" (no options)", inner))
		lines = append(lines, border.Render(b.Left)+empty+border.Render(b.Right))
	}
	for _, row := range l.Rows {
		text := padRightANSI(" "+ansi.Truncate(row.Label, inner-2, glyphMore), inner)
		lines = append(lines, border.Render(b.Left)+rowStyle(row, th).Render(text)+border.Render(b.Right))
	}
	lines = append(lines, border.Render(borderLine(b.BottomLeft, b.Bottom, b.BottomRight, width, hint(l.MoreBelow, "↓ more"))))

	return strings.Join(lines, "\n"), ListLayout{
		Height:   len(lines),
		FirstRow: 1,
		RowSpan:  Span{X: 1, W: inner},
	}
}

func rowStyle(row Row, th Theme) lipgloss.Style {
	switch {
	case row.Selected && row.Highlighted:
		return th.RowBoth
	case row.Selected:
		return th.RowSelected
	case row.Highlighted:
		return th.RowHighlight
	default:
		return th.Row
	}
}

func hint(show bool, text string) string {
	if show {
		return text
	}
	return ""
}

// borderLine draws a horizontal border with an optional label after the
// first edge cell.
func borderLine(left, fill, right string, width int, label string) string {
	inner := width - 2
	if label == "" || ansi.StringWidth(label)+3 > inner {
		return left + strings.Repeat(fill, inner) + right
	}
	label = " " + label + " "
	rest := inner - 1 - ansi.StringWidth(label)
	return left + fill + label + strings.Repeat(fill, rest) + right
}
