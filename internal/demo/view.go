package demo

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/selectbox/core"
	"github.com/jask/selectbox/widgets"
)

const (
	leftPad    = 2
	headerRows = 2
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(widgets.ColorBase).Background(widgets.ColorLavender).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(widgets.ColorText).Background(widgets.ColorSurface0)
)

// layout places every widget: a title line, then the field, then a blank
// line. Open lists are not part of the flow; they overlay what follows.
func (m *Model) layout() {
	y := headerRows
	for _, e := range m.entries {
		e.box.Place(leftPad, y+1)
		y += 1 + widgets.FieldHeight + 1
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.layout()

	pad := strings.Repeat(" ", leftPad)
	lines := []string{renderBar(headerStyle, m.width, " selectbox demo"), ""}
	for _, e := range m.entries {
		lines = append(lines, pad+m.theme.Title.Render(e.title))
		for _, l := range strings.Split(e.box.View(), "\n") {
			lines = append(lines, pad+l)
		}
		lines = append(lines, "")
	}
	body := strings.Join(lines, "\n")

	order := m.stackOrder()
	slices.Reverse(order)
	for _, i := range order {
		box := m.entries[i].box
		if !box.IsOpen() {
			continue
		}
		x, y := box.Origin()
		body = widgets.OverlayAt(body, box.ListView(), x, y+widgets.FieldHeight, 0, 0)
	}

	status := renderBar(statusStyle, m.width, " "+m.status)
	footer := m.help.ShortHelpView(m.helpBindings())
	body = fitHeight(body, max(0, m.height-2))
	return strings.Join([]string{body, status, footer}, "\n")
}

func (m *Model) helpBindings() []key.Binding {
	return append(m.keys.Help(core.ScopeSelect), m.keys.Help(core.ScopeApp)...)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	width = max(1, width)
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
