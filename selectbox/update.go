package selectbox

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectbox/core"
	"github.com/jask/selectbox/mouse"
)

// Update handles pointer and blur messages aimed at this widget. It reports
// whether the message landed on the widget. A left press that misses the
// widget blurs it, like a click elsewhere on a page.
func (m *Model) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.BlurMsg:
		m.ctrl.Blur()
		return false
	}
	return false
}

func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	ev := mouse.FromMsg(msg, m.x, m.y)
	if ev.Kind == mouse.EventNone {
		return false
	}
	m.render()
	if ev.Kind == mouse.EventClick {
		if m.hits.Test(ev.X, ev.Y) == nil {
			m.ctrl.Blur()
			return false
		}
		m.ctrl.Focus()
	}
	return m.hits.Dispatch(&ev, m.handleRegion)
}

// handleRegion is called for each region under the pointer, innermost first.
// Controls nested in the field consume their clicks so the field body does
// not also toggle the list.
func (m *Model) handleRegion(r mouse.Region, ev *mouse.Event) {
	switch ev.Kind {
	case mouse.EventClick:
		switch {
		case r.ID == regionRoot:
			m.ctrl.ToggleOpen()
			ev.Consume()
		case r.ID == regionClear:
			m.ctrl.ClearSelection()
			ev.Consume()
		case strings.HasPrefix(r.ID, prefixBadge):
			if o, ok := r.Data.(core.Option); ok {
				m.ctrl.RemoveOption(o)
			}
			ev.Consume()
		case strings.HasPrefix(r.ID, prefixRow):
			if i, ok := r.Data.(int); ok {
				m.ctrl.ChooseOption(i)
			}
			ev.Consume()
		}
	case mouse.EventHover:
		if i, ok := r.Data.(int); ok && strings.HasPrefix(r.ID, prefixRow) {
			m.ctrl.Hover(i)
			ev.Consume()
		}
	}
}
