package core

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ScopeSelect = "select"
	ScopeApp    = "app"
)

type KeyBinding struct {
	Binding key.Binding
	Action  string
	Scopes  []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		if key.Matches(msg, b.Binding) {
			return true
		}
	}
	return false
}

// Action returns the first action bound to msg in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && key.Matches(msg, b.Binding) {
			return b.Action, true
		}
	}
	return "", false
}

// Help returns the enabled bindings of scope, one per action, for help views.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	seen := make(map[string]bool)
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if seen[b.Action] || !b.Binding.Enabled() {
			continue
		}
		seen[b.Action] = true
		out = append(out, b.Binding)
	}
	return out
}

// SelectKey resolves msg to a select key. Unbound keys resolve to KeyNone.
func (r *KeyRegistry) SelectKey(msg tea.KeyMsg) Key {
	action, ok := r.Action(msg, ScopeSelect)
	if !ok {
		return KeyNone
	}
	switch action {
	case BindConfirm:
		return KeyConfirm
	case BindPrev:
		return KeyPrev
	case BindNext:
		return KeyNext
	case BindDismiss:
		return KeyDismiss
	default:
		return KeyNone
	}
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
