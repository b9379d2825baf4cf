package core

import (
	"errors"
	"slices"
)

type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

var ErrModeMismatch = errors.New("binding mode does not match widget mode")

// Binding carries the host-owned selection value together with the change
// callback whose signature matches it. Single and Multiple are the only
// implementations.
type Binding interface {
	Mode() Mode
	IsSelected(o Option) bool
	Toggle(o Option)
	Clear()
	sealed()
}

// Single binds a zero-or-one selection. A nil Value means nothing is selected.
type Single struct {
	Value    *Option
	OnChange func(*Option)
}

func (Single) Mode() Mode { return ModeSingle }
func (Single) sealed()    {}

func (s Single) IsSelected(o Option) bool {
	return s.Value != nil && *s.Value == o
}

// Toggle never deselects: choosing the current value again is a no-op.
func (s Single) Toggle(o Option) {
	if s.IsSelected(o) {
		return
	}
	s.emit(&o)
}

func (s Single) Clear() { s.emit(nil) }

func (s Single) emit(o *Option) {
	if s.OnChange != nil {
		s.OnChange(o)
	}
}

// Multiple binds an ordered set of selected options; order is selection order.
type Multiple struct {
	Value    []Option
	OnChange func([]Option)
}

func (Multiple) Mode() Mode { return ModeMultiple }
func (Multiple) sealed()    {}

func (m Multiple) IsSelected(o Option) bool {
	return slices.Contains(m.Value, o)
}

func (m Multiple) Toggle(o Option) {
	if m.IsSelected(o) {
		m.emit(slices.DeleteFunc(slices.Clone(m.Value), func(v Option) bool { return v == o }))
		return
	}
	next := make([]Option, 0, len(m.Value)+1)
	next = append(next, m.Value...)
	m.emit(append(next, o))
}

func (m Multiple) Clear() { m.emit([]Option{}) }

func (m Multiple) emit(v []Option) {
	if m.OnChange != nil {
		m.OnChange(v)
	}
}
