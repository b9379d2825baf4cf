// Package selectbox is a dropdown select for Bubble Tea programs.
//
// The host owns the option catalog and the selected value and hands both to
// the widget as a core.Binding. The widget reports changes only through the
// binding's OnChange callback; the host decides whether to accept them and
// re-supplies the binding.
//
// Keyboard input reaches the widget through a core.KeyBus it is mounted on.
// Mouse and blur messages go through Update.
package selectbox

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/selectbox/core"
	"github.com/jask/selectbox/mouse"
	"github.com/jask/selectbox/widgets"
)

const (
	DefaultWidth      = 40
	DefaultMaxVisible = 6
)

const (
	regionRoot    = "root"
	regionValue   = "value"
	regionClear   = "clear"
	regionDivider = "divider"
	regionCaret   = "caret"
	regionList    = "list"
	prefixBadge   = "badge:"
	prefixRow     = "row:"
)

type Model struct {
	id          string
	ctrl        *core.Controller
	theme       widgets.Theme
	width       int
	maxVisible  int
	placeholder string
	offset      int
	x, y        int
	hits        *mouse.HitMap
	height      int
}

type ModelOption func(*Model)

// WithID overrides the generated instance ID.
func WithID(id string) ModelOption {
	return func(m *Model) {
		if strings.TrimSpace(id) != "" {
			m.id = id
		}
	}
}

func WithWidth(w int) ModelOption {
	return func(m *Model) {
		if w > 0 {
			m.width = max(w, widgets.MinFieldWidth)
		}
	}
}

// WithMaxVisible caps how many rows the open list shows before scrolling.
func WithMaxVisible(n int) ModelOption {
	return func(m *Model) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

func WithTheme(th widgets.Theme) ModelOption {
	return func(m *Model) { m.theme = th }
}

func WithPlaceholder(s string) ModelOption {
	return func(m *Model) { m.placeholder = s }
}

// New builds a closed, unfocused select. The binding's mode is fixed for the
// life of the widget.
func New(options []core.Option, b core.Binding, opts ...ModelOption) *Model {
	m := &Model{
		id:         "select-" + uuid.NewString(),
		ctrl:       core.NewController(options, b),
		theme:      widgets.NewTheme(""),
		width:      DefaultWidth,
		maxVisible: DefaultMaxVisible,
		hits:       mouse.NewHitMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.render()
	return m
}

func (m *Model) ID() string { return m.id }

func (m *Model) Mode() core.Mode { return m.ctrl.Mode() }

func (m *Model) IsOpen() bool { return m.ctrl.IsOpen() }

func (m *Model) Focused() bool { return m.ctrl.Focused() }

func (m *Model) Highlighted() int { return m.ctrl.Highlighted() }

func (m *Model) Width() int { return m.width }

func (m *Model) Focus() { m.ctrl.Focus() }

func (m *Model) Blur() { m.ctrl.Blur() }

func (m *Model) SetOptions(options []core.Option) {
	m.ctrl.SetOptions(options)
}

func (m *Model) SetBinding(b core.Binding) error {
	return m.ctrl.SetBinding(b)
}

// Mount subscribes the widget to bus. Keys reach it only when aimed at its ID
// while it holds focus. Call detach when the widget goes away.
func (m *Model) Mount(bus *core.KeyBus) (detach func()) {
	return bus.Listen(core.Bind(m.id, m.ctrl))
}

// Place sets the screen cell of the widget's top-left corner.
func (m *Model) Place(x, y int) {
	m.x, m.y = x, y
}

func (m *Model) Origin() (x, y int) { return m.x, m.y }

// Height is the number of lines the widget covers, including an open list.
func (m *Model) Height() int {
	m.render()
	return m.height
}

// Contains reports whether screen cell (x, y) is on the widget.
func (m *Model) Contains(x, y int) bool {
	m.render()
	return m.hits.Test(x-m.x, y-m.y) != nil
}

// Region returns the screen rectangle of a named region, e.g. "clear",
// "row:2" or "badge:0".
func (m *Model) Region(id string) (mouse.Rect, bool) {
	m.render()
	r, ok := m.hits.Lookup(id)
	if !ok {
		return mouse.Rect{}, false
	}
	return r.Rect.Offset(m.x, m.y), true
}

// View draws the closed field. ListView draws the open list, which belongs
// directly under the field.
func (m *Model) View() string {
	field, _ := m.render()
	return field
}

func (m *Model) ListView() string {
	_, list := m.render()
	return list
}

// FullView stacks the field and, when open, the list.
func (m *Model) FullView() string {
	field, list := m.render()
	if list == "" {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, field, list)
}

// render draws the widget from current state and rebuilds its hit regions
// in widget-local coordinates.
func (m *Model) render() (field, list string) {
	m.hits.Clear()

	f := widgets.Field{
		Width:       m.width,
		Multiple:    m.ctrl.Mode() == core.ModeMultiple,
		Placeholder: m.placeholder,
		Open:        m.ctrl.IsOpen(),
		Focused:     m.ctrl.Focused(),
	}
	var badges []core.Option
	switch b := m.ctrl.Binding().(type) {
	case core.Single:
		if b.Value != nil {
			f.Label = b.Value.Label
		}
	case core.Multiple:
		badges = b.Value
		for _, o := range b.Value {
			f.Badges = append(f.Badges, o.Label)
		}
	}
	field, fl := widgets.RenderField(f, m.theme)
	m.height = widgets.FieldHeight

	var ll widgets.ListLayout
	var start, end int
	if m.ctrl.IsOpen() {
		start, end = m.window()
		options := m.ctrl.Options()
		rows := make([]widgets.Row, 0, end-start)
		for i := start; i < end; i++ {
			rows = append(rows, widgets.Row{
				Label:       options[i].Label,
				Selected:    m.ctrl.IsSelected(options[i]),
				Highlighted: i == m.ctrl.Highlighted(),
			})
		}
		list, ll = widgets.RenderOptionList(widgets.OptionList{
			Width:     m.width,
			Rows:      rows,
			MoreAbove: start > 0,
			MoreBelow: end < len(options),
			Focused:   m.ctrl.Focused(),
		}, m.theme)
		m.height += ll.Height
	}

	m.hits.AddRect(regionRoot, "", 0, 0, fl.Width, m.height, nil)
	m.hits.AddRect(regionValue, regionRoot, fl.Value.X, fl.Line, fl.Value.W, 1, nil)
	for i, span := range fl.Badges {
		m.hits.AddRect(prefixBadge+strconv.Itoa(i), regionValue, span.X, fl.Line, span.W, 1, badges[i])
	}
	m.hits.AddRect(regionClear, regionRoot, fl.Clear.X, fl.Line, fl.Clear.W, 1, nil)
	m.hits.AddRect(regionDivider, regionRoot, fl.Divider.X, fl.Line, fl.Divider.W, 1, nil)
	m.hits.AddRect(regionCaret, regionRoot, fl.Caret.X, fl.Line, fl.Caret.W, 1, nil)
	if m.ctrl.IsOpen() {
		top := widgets.FieldHeight
		m.hits.AddRect(regionList, regionRoot, 0, top, fl.Width, ll.Height, nil)
		for idx := start; idx < end; idx++ {
			line := top + ll.FirstRow + idx - start
			m.hits.AddRect(prefixRow+strconv.Itoa(idx), regionList, ll.RowSpan.X, line, ll.RowSpan.W, 1, idx)
		}
	}
	return field, list
}

// window returns the visible row range, scrolled so the highlighted row is
// inside it.
func (m *Model) window() (start, end int) {
	n := len(m.ctrl.Options())
	visible := min(m.maxVisible, n)
	h := m.ctrl.Highlighted()
	if h < m.offset {
		m.offset = h
	} else if h >= m.offset+visible {
		m.offset = h - visible + 1
	}
	m.offset = max(0, min(m.offset, n-visible))
	return m.offset, m.offset + visible
}
