package core

import "fmt"

// Key is a keyboard input already resolved to its meaning for a select.
type Key int

const (
	KeyNone    Key = iota
	KeyConfirm     // enter, space
	KeyPrev        // up
	KeyNext        // down
	KeyDismiss     // esc
)

// Action reports what a key did to the controller.
type Action int

const (
	ActionNone Action = iota
	ActionOpened
	ActionClosed
	ActionMoved
	ActionCommitted
)

func (a Action) String() string {
	switch a {
	case ActionOpened:
		return "opened"
	case ActionClosed:
		return "closed"
	case ActionMoved:
		return "moved"
	case ActionCommitted:
		return "committed"
	default:
		return "none"
	}
}

// Controller owns the transient interaction state of one select: whether the
// list is open, which row is highlighted and whether the widget has focus.
// The option catalog and the selection are owned by the host and re-supplied
// through SetOptions and SetBinding.
type Controller struct {
	options     []Option
	binding     Binding
	open        bool
	highlighted int
	focused     bool
}

func NewController(options []Option, b Binding) *Controller {
	if b == nil {
		b = Single{}
	}
	c := &Controller{binding: b}
	c.SetOptions(options)
	return c
}

func (c *Controller) Mode() Mode { return c.binding.Mode() }

func (c *Controller) Options() []Option {
	return append([]Option(nil), c.options...)
}

func (c *Controller) Binding() Binding { return c.binding }

func (c *Controller) IsOpen() bool { return c.open }

func (c *Controller) Highlighted() int { return c.highlighted }

func (c *Controller) Focused() bool { return c.focused }

// SetOptions replaces the catalog. The highlight is clamped so it always
// names a row of the new catalog (or 0 when the catalog is empty).
func (c *Controller) SetOptions(options []Option) {
	c.options = append([]Option(nil), options...)
	maxIdx := len(c.options) - 1
	if c.highlighted > maxIdx {
		c.highlighted = maxIdx
	}
	if c.highlighted < 0 {
		c.highlighted = 0
	}
}

// SetBinding re-supplies the host value. The mode is fixed for the lifetime
// of the controller.
func (c *Controller) SetBinding(b Binding) error {
	if b == nil {
		return fmt.Errorf("set binding: %w", ErrModeMismatch)
	}
	if b.Mode() != c.binding.Mode() {
		return fmt.Errorf("set %s binding on %s select: %w", b.Mode(), c.binding.Mode(), ErrModeMismatch)
	}
	c.binding = b
	return nil
}

func (c *Controller) ClearSelection() { c.binding.Clear() }

func (c *Controller) ToggleSelection(o Option) { c.binding.Toggle(o) }

func (c *Controller) IsSelected(o Option) bool { return c.binding.IsSelected(o) }

// ToggleOpen handles a click on the widget body.
func (c *Controller) ToggleOpen() { c.setOpen(!c.open) }

func (c *Controller) Close() { c.setOpen(false) }

// ChooseOption handles a click on the row at index i: the option is toggled
// and the list closes.
func (c *Controller) ChooseOption(i int) {
	if i >= 0 && i < len(c.options) {
		c.binding.Toggle(c.options[i])
	}
	c.setOpen(false)
}

// Hover moves the highlight to the row under the pointer.
func (c *Controller) Hover(i int) {
	if i < 0 || i >= len(c.options) {
		return
	}
	c.highlighted = i
}

// RemoveOption handles a click on a selected-option badge. Badges only exist
// in multiple mode.
func (c *Controller) RemoveOption(o Option) {
	if c.binding.Mode() != ModeMultiple {
		return
	}
	c.binding.Toggle(o)
}

func (c *Controller) Focus() { c.focused = true }

// Blur drops focus and closes the list.
func (c *Controller) Blur() {
	c.focused = false
	c.setOpen(false)
}

// HandleKey applies a keyboard input. Callers route keys here only while the
// widget holds focus.
func (c *Controller) HandleKey(k Key) Action {
	switch k {
	case KeyConfirm:
		// The open state flips first; the highlighted option is committed
		// only when the list was already open before the press.
		wasOpen := c.open
		c.setOpen(!wasOpen)
		if !wasOpen {
			return ActionOpened
		}
		if c.highlighted >= 0 && c.highlighted < len(c.options) {
			c.binding.Toggle(c.options[c.highlighted])
		}
		return ActionCommitted
	case KeyPrev, KeyNext:
		if !c.open {
			c.setOpen(true)
			return ActionOpened
		}
		next := c.highlighted + 1
		if k == KeyPrev {
			next = c.highlighted - 1
		}
		if next < 0 || next >= len(c.options) {
			return ActionNone
		}
		c.highlighted = next
		return ActionMoved
	case KeyDismiss:
		wasOpen := c.open
		c.setOpen(false)
		if wasOpen {
			return ActionClosed
		}
		return ActionNone
	default:
		return ActionNone
	}
}

func (c *Controller) setOpen(open bool) {
	if open && !c.open {
		c.highlighted = 0
	}
	c.open = open
}
