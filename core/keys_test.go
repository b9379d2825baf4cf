package core

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Binding: key.NewBinding(key.WithKeys("ctrl+k")), Action: "palette", Scopes: []string{"tab:a"}},
		{Binding: key.NewBinding(key.WithKeys("q")), Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:a") {
		t.Fatalf("expected ctrl+k in tab:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:b") {
		t.Fatalf("did not expect ctrl+k in tab:b")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "tab:b") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestSelectKeyResolution(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Key
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, KeyConfirm},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, KeyPrev},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, KeyNext},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyDismiss},
		{"tab is not a select key", tea.KeyMsg{Type: tea.KeyTab}, KeyNone},
		{"letters are ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.SelectKey(tt.msg); got != tt.want {
				t.Fatalf("SelectKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		BindNext: {"j", "down"},
		BindPrev: {"k"},
	})
	reg := NewKeyRegistry(bindings)

	if got := reg.SelectKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}); got != KeyNext {
		t.Fatalf("j = %v, want next", got)
	}
	if got := reg.SelectKey(tea.KeyMsg{Type: tea.KeyUp}); got != KeyNone {
		t.Fatalf("up after rebinding prev to k = %v, want none", got)
	}
	if got := reg.SelectKey(tea.KeyMsg{Type: tea.KeyEnter}); got != KeyConfirm {
		t.Fatalf("unchanged confirm binding lost: %v", got)
	}

	byAction := DefaultKeybindingsByAction(bindings)
	if keys := byAction[BindPrev]; len(keys) != 1 || keys[0] != "k" {
		t.Fatalf("prev keys = %v", keys)
	}
}

func TestHelpOnePerAction(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	help := reg.Help(ScopeSelect)
	if len(help) != 4 {
		t.Fatalf("select help bindings = %d, want 4", len(help))
	}
	if got := help[0].Help().Key; got != "enter/space" {
		t.Fatalf("confirm help key = %q", got)
	}
}
