package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

const (
	BindConfirm   = "confirm"
	BindPrev      = "prev"
	BindNext      = "next"
	BindDismiss   = "dismiss"
	BindFocusNext = "focus-next"
	BindFocusPrev = "focus-prev"
	BindQuit      = "quit"
)

func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKeys(keys), desc))
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Binding: binding("open/choose", "enter", " "), Action: BindConfirm, Scopes: []string{ScopeSelect}},
		{Binding: binding("up", "up"), Action: BindPrev, Scopes: []string{ScopeSelect}},
		{Binding: binding("down", "down"), Action: BindNext, Scopes: []string{ScopeSelect}},
		{Binding: binding("close", "esc"), Action: BindDismiss, Scopes: []string{ScopeSelect}},
		{Binding: binding("next field", "tab"), Action: BindFocusNext, Scopes: []string{ScopeApp}},
		{Binding: binding("prev field", "shift+tab"), Action: BindFocusPrev, Scopes: []string{ScopeApp}},
		{Binding: binding("quit", "ctrl+c", "q"), Action: BindQuit, Scopes: []string{ScopeApp}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		keys := b.Binding.Keys()
		if strings.TrimSpace(b.Action) == "" || len(keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), keys...)
	}
	return out
}

// ApplyActionKeybindings rebinds actions to user-supplied keys. Actions
// missing from actionKeys keep their defaults.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Binding: b.Binding,
			Action:  b.Action,
			Scopes:  append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Binding = binding(b.Binding.Help().Desc, keys...)
		}
		out = append(out, next)
	}
	return out
}

func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}
