package core

import (
	"errors"
	"slices"
	"testing"
)

func testOptions() []Option {
	return []Option{
		{Label: "First", Value: Number(1)},
		{Label: "Second", Value: Number(2)},
		{Label: "Third", Value: Number(3)},
		{Label: "Fourth", Value: Number(4)},
		{Label: "Fifth", Value: Number(5)},
	}
}

// singleHost mimics a host that owns a single value and re-supplies it.
type singleHost struct {
	value *Option
	calls []*Option
	c     *Controller
}

func newSingleHost(options []Option, initial *Option) *singleHost {
	h := &singleHost{value: initial}
	h.c = NewController(options, h.binding())
	return h
}

func (h *singleHost) binding() Single {
	return Single{Value: h.value, OnChange: func(o *Option) {
		h.calls = append(h.calls, o)
		h.value = o
		_ = h.c.SetBinding(h.binding())
	}}
}

type multiHost struct {
	value []Option
	calls [][]Option
	c     *Controller
}

func newMultiHost(options []Option, initial []Option) *multiHost {
	h := &multiHost{value: initial}
	h.c = NewController(options, h.binding())
	return h
}

func (h *multiHost) binding() Multiple {
	return Multiple{Value: h.value, OnChange: func(v []Option) {
		h.calls = append(h.calls, v)
		h.value = v
		_ = h.c.SetBinding(h.binding())
	}}
}

func TestOpeningResetsHighlight(t *testing.T) {
	opts := testOptions()
	c := NewController(opts, Single{})

	c.ToggleOpen()
	c.Hover(3)
	if c.Highlighted() != 3 {
		t.Fatalf("highlight = %d, want 3", c.Highlighted())
	}
	c.Close()

	openers := []struct {
		name string
		open func()
	}{
		{"body click", c.ToggleOpen},
		{"confirm key", func() { c.HandleKey(KeyConfirm) }},
		{"prev key", func() { c.HandleKey(KeyPrev) }},
		{"next key", func() { c.HandleKey(KeyNext) }},
	}
	for _, tt := range openers {
		t.Run(tt.name, func(t *testing.T) {
			c.Close()
			c.highlighted = 4
			tt.open()
			if !c.IsOpen() {
				t.Fatal("expected open")
			}
			if c.Highlighted() != 0 {
				t.Fatalf("highlight = %d, want 0", c.Highlighted())
			}
		})
	}
}

func TestSingleToggleCurrentValueIsNoop(t *testing.T) {
	opts := testOptions()
	h := newSingleHost(opts, &opts[0])

	h.c.ToggleSelection(opts[0])
	if len(h.calls) != 0 {
		t.Fatalf("onChange calls = %d, want 0", len(h.calls))
	}

	h.c.ToggleSelection(opts[2])
	if len(h.calls) != 1 {
		t.Fatalf("onChange calls = %d, want 1", len(h.calls))
	}
	if h.calls[0] == nil || *h.calls[0] != opts[2] {
		t.Fatalf("onChange got %v, want %v", h.calls[0], opts[2])
	}
}

func TestSingleToggleDoesNotAliasArgument(t *testing.T) {
	opts := testOptions()
	var got *Option
	c := NewController(opts, Single{OnChange: func(o *Option) { got = o }})

	o := opts[1]
	c.ToggleSelection(o)
	o.Label = "mutated"
	if got == nil || got.Label != "Second" {
		t.Fatalf("onChange value changed with caller's copy: %v", got)
	}
}

func TestMultipleToggleIsItsOwnInverse(t *testing.T) {
	opts := testOptions()
	h := newMultiHost(opts, []Option{opts[0], opts[2]})
	original := slices.Clone(h.value)

	h.c.ToggleSelection(opts[1])
	if !slices.Equal(h.value, []Option{opts[0], opts[2], opts[1]}) {
		t.Fatalf("after add = %v", h.value)
	}
	h.c.ToggleSelection(opts[1])
	if !slices.Equal(h.value, original) {
		t.Fatalf("after remove = %v, want %v", h.value, original)
	}

	// Removing then re-adding an existing member appends it at the end.
	h.c.ToggleSelection(opts[0])
	h.c.ToggleSelection(opts[0])
	if !slices.Equal(h.value, []Option{opts[2], opts[0]}) {
		t.Fatalf("re-add order = %v", h.value)
	}
}

func TestMultipleToggleLeavesInputUntouched(t *testing.T) {
	opts := testOptions()
	value := []Option{opts[0], opts[1]}
	var got []Option
	c := NewController(opts, Multiple{Value: value, OnChange: func(v []Option) { got = v }})

	c.ToggleSelection(opts[0])
	if !slices.Equal(value, []Option{opts[0], opts[1]}) {
		t.Fatalf("input mutated: %v", value)
	}
	if !slices.Equal(got, []Option{opts[1]}) {
		t.Fatalf("onChange got %v", got)
	}
}

func TestClearSelection(t *testing.T) {
	opts := testOptions()

	t.Run("single", func(t *testing.T) {
		for _, initial := range []*Option{nil, &opts[3]} {
			h := newSingleHost(opts, initial)
			h.c.ClearSelection()
			if len(h.calls) != 1 || h.calls[0] != nil {
				t.Fatalf("calls = %v, want one nil", h.calls)
			}
		}
	})

	t.Run("multiple", func(t *testing.T) {
		for _, initial := range [][]Option{nil, {}, {opts[0], opts[4]}} {
			h := newMultiHost(opts, initial)
			h.c.ClearSelection()
			if len(h.calls) != 1 || h.calls[0] == nil || len(h.calls[0]) != 0 {
				t.Fatalf("calls = %v, want one empty slice", h.calls)
			}
		}
	})

	t.Run("keeps transient state", func(t *testing.T) {
		c := NewController(opts, Single{})
		c.ToggleOpen()
		c.Hover(2)
		c.ClearSelection()
		if !c.IsOpen() || c.Highlighted() != 2 {
			t.Fatalf("open=%v highlight=%d", c.IsOpen(), c.Highlighted())
		}
	})
}

func TestIsSelected(t *testing.T) {
	opts := testOptions()
	single := NewController(opts, Single{Value: &opts[1]})
	multi := NewController(opts, Multiple{Value: []Option{opts[0], opts[3]}})

	for i, o := range opts {
		if got, want := single.IsSelected(o), i == 1; got != want {
			t.Errorf("single IsSelected(%s) = %v, want %v", o.Label, got, want)
		}
		if got, want := multi.IsSelected(o), i == 0 || i == 3; got != want {
			t.Errorf("multiple IsSelected(%s) = %v, want %v", o.Label, got, want)
		}
	}
	if single.IsSelected(Option{Label: "Second", Value: Text("2")}) {
		t.Fatal("text value must not equal numeric value")
	}
}

func TestArrowMovementClamps(t *testing.T) {
	opts := testOptions()
	c := NewController(opts, Single{})
	c.ToggleOpen()

	for i := 0; i < len(opts); i++ {
		c.HandleKey(KeyNext)
	}
	if c.Highlighted() != len(opts)-1 {
		t.Fatalf("highlight = %d, want %d", c.Highlighted(), len(opts)-1)
	}
	if got := c.HandleKey(KeyNext); got != ActionNone {
		t.Fatalf("action at bottom = %v, want none", got)
	}

	for i := 0; i < len(opts)+2; i++ {
		c.HandleKey(KeyPrev)
	}
	if c.Highlighted() != 0 {
		t.Fatalf("highlight = %d, want 0", c.Highlighted())
	}
}

func TestArrowOnClosedOpensWithoutMoving(t *testing.T) {
	c := NewController(testOptions(), Single{})
	if got := c.HandleKey(KeyNext); got != ActionOpened {
		t.Fatalf("action = %v, want opened", got)
	}
	if c.Highlighted() != 0 {
		t.Fatalf("highlight = %d, want 0", c.Highlighted())
	}
}

func TestConfirmTogglesBeforeCommitting(t *testing.T) {
	opts := testOptions()
	h := newSingleHost(opts, nil)

	if got := h.c.HandleKey(KeyConfirm); got != ActionOpened {
		t.Fatalf("first confirm = %v, want opened", got)
	}
	if len(h.calls) != 0 {
		t.Fatalf("opening must not select, calls = %v", h.calls)
	}

	h.c.HandleKey(KeyNext)
	h.c.HandleKey(KeyNext)
	if got := h.c.HandleKey(KeyConfirm); got != ActionCommitted {
		t.Fatalf("second confirm = %v, want committed", got)
	}
	if h.c.IsOpen() {
		t.Fatal("expected closed after commit")
	}
	if len(h.calls) != 1 || *h.calls[0] != opts[2] {
		t.Fatalf("calls = %v, want [Third]", h.calls)
	}
}

func TestSingleKeyboardScenario(t *testing.T) {
	opts := testOptions()
	h := newSingleHost(opts, &opts[0])

	h.c.HandleKey(KeyNext)
	if !h.c.IsOpen() || h.c.Highlighted() != 0 {
		t.Fatalf("open=%v highlight=%d, want open at 0", h.c.IsOpen(), h.c.Highlighted())
	}
	h.c.HandleKey(KeyNext)
	if h.c.Highlighted() != 1 {
		t.Fatalf("highlight = %d, want 1", h.c.Highlighted())
	}
	h.c.HandleKey(KeyConfirm)
	if len(h.calls) != 1 || *h.calls[0] != opts[1] {
		t.Fatalf("calls = %v, want [Second]", h.calls)
	}
	if h.c.IsOpen() {
		t.Fatal("expected closed")
	}
}

func TestMultipleBadgeThenOptionScenario(t *testing.T) {
	opts := testOptions()
	h := newMultiHost(opts, []Option{opts[0]})

	h.c.RemoveOption(opts[0])
	if len(h.calls) != 1 || len(h.calls[0]) != 0 {
		t.Fatalf("badge removal calls = %v, want [[]]", h.calls)
	}

	h.c.ToggleOpen()
	h.c.ChooseOption(2)
	if !slices.Equal(h.value, []Option{opts[2]}) {
		t.Fatalf("value = %v, want [Third]", h.value)
	}
	if h.c.IsOpen() {
		t.Fatal("row click should close the list")
	}
}

func TestRemoveOptionIgnoredInSingleMode(t *testing.T) {
	opts := testOptions()
	h := newSingleHost(opts, &opts[0])
	h.c.RemoveOption(opts[1])
	if len(h.calls) != 0 {
		t.Fatalf("calls = %v, want none", h.calls)
	}
}

func TestEscapeAndBlurClose(t *testing.T) {
	c := NewController(testOptions(), Single{})
	if got := c.HandleKey(KeyDismiss); got != ActionNone {
		t.Fatalf("escape while closed = %v, want none", got)
	}
	c.ToggleOpen()
	if got := c.HandleKey(KeyDismiss); got != ActionClosed || c.IsOpen() {
		t.Fatalf("escape while open = %v open=%v", got, c.IsOpen())
	}

	c.Focus()
	c.ToggleOpen()
	c.Blur()
	if c.IsOpen() || c.Focused() {
		t.Fatalf("after blur open=%v focused=%v", c.IsOpen(), c.Focused())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	c := NewController(testOptions(), Single{})
	c.ToggleOpen()
	c.Hover(2)
	if got := c.HandleKey(KeyNone); got != ActionNone {
		t.Fatalf("action = %v", got)
	}
	if !c.IsOpen() || c.Highlighted() != 2 {
		t.Fatalf("state changed: open=%v highlight=%d", c.IsOpen(), c.Highlighted())
	}
}

func TestShrinkingOptionsClampsHighlight(t *testing.T) {
	opts := testOptions()
	h := newSingleHost(opts, nil)
	h.c.ToggleOpen()
	h.c.Hover(4)

	h.c.SetOptions(opts[:2])
	if h.c.Highlighted() != 1 {
		t.Fatalf("highlight = %d, want 1", h.c.Highlighted())
	}

	h.c.SetOptions(nil)
	if h.c.Highlighted() != 0 {
		t.Fatalf("highlight = %d, want 0", h.c.Highlighted())
	}
	if got := h.c.HandleKey(KeyConfirm); got != ActionCommitted {
		t.Fatalf("confirm on empty = %v", got)
	}
	if len(h.calls) != 0 {
		t.Fatalf("commit on empty catalog called onChange: %v", h.calls)
	}
	h.c.Hover(0)
	h.c.ChooseOption(7)
	if len(h.calls) != 0 {
		t.Fatalf("out of range row selected: %v", h.calls)
	}
}

func TestSetBindingRejectsModeChange(t *testing.T) {
	c := NewController(testOptions(), Single{})
	err := c.SetBinding(Multiple{})
	if !errors.Is(err, ErrModeMismatch) {
		t.Fatalf("err = %v, want ErrModeMismatch", err)
	}
	if c.Mode() != ModeSingle {
		t.Fatalf("mode = %v", c.Mode())
	}
	if err := c.SetBinding(nil); !errors.Is(err, ErrModeMismatch) {
		t.Fatalf("nil binding err = %v", err)
	}
}

func TestValueKey(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(1), "1"},
		{Number(2.5), "2.5"},
		{Text("abc"), "abc"},
	}
	for _, tt := range tests {
		if got := tt.v.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
	}
	if Number(1) == Text("1") {
		t.Fatal("number and text values must differ")
	}
}
