// Package demo is the host application for the select widgets. It owns the
// catalog and every select's value, decides which widget has focus, and
// routes terminal input to the widgets.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/selectbox/core"
	"github.com/jask/selectbox/selectbox"
	"github.com/jask/selectbox/widgets"
)

// Select describes one widget the host shows.
type Select struct {
	Title    string
	Multiple bool
	Initial  []core.Option
}

// Options configures New. Zero values fall back to the widget defaults.
type Options struct {
	Catalog     []core.Option
	Selects     []Select
	Width       int
	MaxVisible  int
	Placeholder string
	Theme       *widgets.Theme
	Keys        []core.KeyBinding
	Logger      zerolog.Logger
}

type entry struct {
	title    string
	multiple bool
	single   *core.Option
	multi    []core.Option
	box      *selectbox.Model
}

func (e *entry) value() []core.Option {
	if e.multiple {
		return append([]core.Option(nil), e.multi...)
	}
	if e.single == nil {
		return nil
	}
	return []core.Option{*e.single}
}

// Model is the Bubble Tea model of the demo.
type Model struct {
	width    int
	height   int
	catalog  []core.Option
	entries  []*entry
	focus    int
	bus      *core.KeyBus
	keys     *core.KeyRegistry
	help     help.Model
	theme    widgets.Theme
	detach   []func()
	log      zerolog.Logger
	status   string
	quitting bool
}

func New(opts Options) *Model {
	bindings := opts.Keys
	if len(bindings) == 0 {
		bindings = core.DefaultKeyBindings()
	}
	theme := widgets.NewTheme("")
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	m := &Model{
		width:   80,
		height:  24,
		catalog: append([]core.Option(nil), opts.Catalog...),
		focus:   -1,
		bus:     core.NewKeyBus(),
		keys:    core.NewKeyRegistry(bindings),
		help:    help.New(),
		theme:   theme,
		log:     opts.Logger,
		status:  "Ready",
	}
	for i, s := range opts.Selects {
		e := &entry{title: s.Title, multiple: s.Multiple}
		if s.Multiple {
			e.multi = append([]core.Option{}, s.Initial...)
		} else if len(s.Initial) > 0 {
			o := s.Initial[0]
			e.single = &o
		}
		e.box = selectbox.New(m.catalog, m.bindingFor(e),
			selectbox.WithID(fmt.Sprintf("select-%d", i)),
			selectbox.WithWidth(opts.Width),
			selectbox.WithMaxVisible(opts.MaxVisible),
			selectbox.WithTheme(theme),
			selectbox.WithPlaceholder(opts.Placeholder),
		)
		m.detach = append(m.detach, e.box.Mount(m.bus))
		m.entries = append(m.entries, e)
	}
	m.layout()
	return m
}

// bindingFor builds the binding for e from the host's current value. Every
// accepted change is re-supplied through a fresh binding.
func (m *Model) bindingFor(e *entry) core.Binding {
	if e.multiple {
		return core.Multiple{Value: e.multi, OnChange: func(v []core.Option) { m.setMultiple(e, v) }}
	}
	return core.Single{Value: e.single, OnChange: func(o *core.Option) { m.setSingle(e, o) }}
}

func (m *Model) setSingle(e *entry, o *core.Option) {
	e.single = o
	m.changed(e)
}

func (m *Model) setMultiple(e *entry, v []core.Option) {
	e.multi = v
	m.changed(e)
}

func (m *Model) changed(e *entry) {
	if err := e.box.SetBinding(m.bindingFor(e)); err != nil {
		m.log.Error().Err(err).Str("select", e.title).Msg("re-supply binding")
		return
	}
	labels := labelsOf(e.value())
	m.status = e.title + ": " + labels
	m.log.Info().
		Str("select", e.title).
		Str("mode", e.box.Mode().String()).
		Str("value", labels).
		Msg("selection changed")
}

func labelsOf(opts []core.Option) string {
	if len(opts) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		names = append(names, o.Label)
	}
	return strings.Join(names, ", ")
}

// Value returns the current value of select i, as a slice in both modes.
func (m *Model) Value(i int) []core.Option {
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	return m.entries[i].value()
}

// Box returns the widget of select i.
func (m *Model) Box(i int) *selectbox.Model {
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	return m.entries[i].box
}

// Focused returns the index of the focused select, or -1.
func (m *Model) Focused() int { return m.focus }

func (m *Model) Status() string { return m.status }

// Close detaches every widget from the key bus. It is safe to call twice.
func (m *Model) Close() {
	for _, d := range m.detach {
		d()
	}
	m.detach = nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.BlurMsg:
		for _, e := range m.entries {
			e.box.Update(msg)
		}
		m.focus = -1
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.keys.IsAction(msg, core.BindQuit, core.ScopeApp):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, core.BindFocusNext, core.ScopeApp):
		m.cycleFocus(1)
		return nil
	case m.keys.IsAction(msg, core.BindFocusPrev, core.ScopeApp):
		m.cycleFocus(-1)
		return nil
	}
	if m.focus < 0 {
		return nil
	}
	k := m.keys.SelectKey(msg)
	if k == core.KeyNone {
		return nil
	}
	m.bus.Dispatch(m.entries[m.focus].box.ID(), k)
	return nil
}

func (m *Model) cycleFocus(delta int) {
	n := len(m.entries)
	if n == 0 {
		return
	}
	next := 0
	if m.focus >= 0 {
		next = ((m.focus+delta)%n + n) % n
	} else if delta < 0 {
		next = n - 1
	}
	m.setFocus(next)
}

func (m *Model) setFocus(i int) {
	for j, e := range m.entries {
		if j != i {
			e.box.Blur()
		}
	}
	m.focus = i
	if i >= 0 {
		m.entries[i].box.Focus()
		m.log.Debug().Str("select", m.entries[i].title).Msg("focus")
	}
}

// handleMouse gives the event to the widget under the pointer. Open lists
// are drawn over the widgets below them, so they are tested first.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.layout()
	target := -1
	for _, i := range m.stackOrder() {
		if m.entries[i].box.Contains(msg.X, msg.Y) {
			target = i
			break
		}
	}
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if target < 0 {
		if press {
			m.setFocus(-1)
		}
		return
	}
	if press {
		for j, e := range m.entries {
			if j != target {
				e.box.Blur()
			}
		}
	}
	m.entries[target].box.Update(msg)
	if press {
		m.focus = target
	}
}

// stackOrder lists entries topmost first: open widgets, then the rest, each
// group in reverse draw order.
func (m *Model) stackOrder() []int {
	order := make([]int, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].box.IsOpen() {
			order = append(order, i)
		}
	}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if !m.entries[i].box.IsOpen() {
			order = append(order, i)
		}
	}
	return order
}
