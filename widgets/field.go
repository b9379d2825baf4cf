package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MinFieldWidth is the narrowest field that still fits its controls.
const MinFieldWidth = 12

// FieldHeight is the number of lines RenderField produces.
const FieldHeight = 3

const (
	glyphClear     = "×"
	glyphDivider   = "│"
	glyphCaretDown = "▾"
	glyphCaretUp   = "▴"
	glyphMore      = "…"
)

// Field describes the closed part of a select: the bordered value line.
type Field struct {
	Width       int
	Multiple    bool
	Label       string   // single mode; empty when nothing is selected
	Badges      []string // multiple mode, in selection order
	Placeholder string
	Open        bool
	Focused     bool
}

// Span is a run of cells on one line.
type Span struct {
	X, W int
}

// FieldLayout reports where RenderField drew each control. Columns are
// relative to the field's left edge; all controls sit on line Line.
type FieldLayout struct {
	Width   int
	Line    int
	Value   Span
	Badges  []Span // one per badge that fit, in order
	Clear   Span
	Divider Span
	Caret   Span
}

// RenderField draws a three-line bordered field and returns its geometry.
func RenderField(f Field, th Theme) (string, FieldLayout) {
	width := max(f.Width, MinFieldWidth)
	inner := width - 4
	valueW := inner - 6

	layout := FieldLayout{
		Width: width,
		Line:  1,
		Value: Span{X: 2, W: valueW},
	}
	layout.Clear = Span{X: 2 + valueW + 1, W: 1}
	layout.Divider = Span{X: 2 + valueW + 3, W: 1}
	layout.Caret = Span{X: 2 + valueW + 5, W: 1}

	var value string
	if f.Multiple {
		value, layout.Badges = renderBadges(f.Badges, valueW, th)
	} else {
		value = renderLabel(f.Label, f.Placeholder, valueW, th)
	}
	if f.Multiple && len(f.Badges) == 0 {
		value = renderLabel("", f.Placeholder, valueW, th)
	}

	caret := glyphCaretDown
	if f.Open {
		caret = glyphCaretUp
	}
	content := padRightANSI(value, valueW) +
		" " + th.Clear.Render(glyphClear) +
		" " + th.Divider.Render(glyphDivider) +
		" " + th.Caret.Render(caret)

	border := th.Border
	if f.Focused {
		border = th.BorderFocused
	}
	b := lipgloss.RoundedBorder()
	lines := []string{
		border.Render(b.TopLeft + strings.Repeat(b.Top, width-2) + b.TopRight),
		border.Render(b.Left) + " " + content + " " + border.Render(b.Right),
		border.Render(b.BottomLeft + strings.Repeat(b.Bottom, width-2) + b.BottomRight),
	}
	return strings.Join(lines, "\n"), layout
}

// BadgeWidth is the cell width of Badge(label).
func BadgeWidth(label string) int {
	return ansi.StringWidth(label) + 4
}

// Badge draws a removable chip for a selected option.
func Badge(label string, th Theme) string {
	return th.Badge.Render(" "+label+" ") + th.BadgeRemove.Render(glyphClear+" ")
}

func renderBadges(labels []string, width int, th Theme) (string, []Span) {
	var sb strings.Builder
	spans := make([]Span, 0, len(labels))
	x := 0
	for i, label := range labels {
		gap := 0
		if i > 0 {
			gap = 1
		}
		w := BadgeWidth(label)
		if x+gap+w > width {
			if x+gap+1 <= width {
				sb.WriteString(strings.Repeat(" ", gap) + glyphMore)
			}
			break
		}
		sb.WriteString(strings.Repeat(" ", gap))
		x += gap
		sb.WriteString(Badge(label, th))
		spans = append(spans, Span{X: 2 + x, W: w})
		x += w
	}
	return sb.String(), spans
}

func renderLabel(label, placeholder string, width int, th Theme) string {
	if label == "" {
		if placeholder == "" {
			return ""
		}
		return th.Placeholder.Render(ansi.Truncate(placeholder, width, glyphMore))
	}
	return th.Value.Render(ansi.Truncate(label, width, glyphMore))
}
