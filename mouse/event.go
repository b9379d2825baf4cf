package mouse

import tea "github.com/charmbracelet/bubbletea"

type EventKind int

const (
	EventNone EventKind = iota
	EventClick
	EventHover
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventHover:
		return "hover"
	default:
		return "none"
	}
}

// Event is a pointer event in the coordinate space of a HitMap. A handler
// that fully deals with an event calls Consume so enclosing regions skip it.
type Event struct {
	Kind     EventKind
	X, Y     int
	consumed bool
}

func (e *Event) Consume() { e.consumed = true }

func (e *Event) Consumed() bool { return e.consumed }

// FromMsg converts a Bubble Tea mouse message, translated by the origin
// (ox, oy). Left presses become clicks and motion becomes hover; everything
// else is EventNone.
func FromMsg(msg tea.MouseMsg, ox, oy int) Event {
	ev := Event{X: msg.X - ox, Y: msg.Y - oy}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev.Kind = EventClick
	case msg.Action == tea.MouseActionMotion:
		ev.Kind = EventHover
	}
	return ev
}
