package core

// KeyHandler receives a key aimed at target and reports whether it used it.
type KeyHandler func(target string, k Key) bool

type listener struct {
	id      int
	handler KeyHandler
}

// KeyBus fans keyboard input out to mounted widgets. It is not safe for
// concurrent use; the Bubble Tea update loop is its only caller.
type KeyBus struct {
	listeners []listener
	nextID    int
}

func NewKeyBus() *KeyBus {
	return &KeyBus{}
}

// Listen attaches h until the returned detach func is called. Detaching more
// than once is harmless.
func (b *KeyBus) Listen(h KeyHandler) (detach func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, handler: h})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *KeyBus) Len() int { return len(b.listeners) }

// Dispatch offers k to listeners in attach order and stops at the first one
// that handles it.
func (b *KeyBus) Dispatch(target string, k Key) bool {
	for _, l := range b.listeners {
		if l.handler(target, k) {
			return true
		}
	}
	return false
}

// Bind returns a handler that drives c for keys aimed at id and ignores the
// rest.
func Bind(id string, c *Controller) KeyHandler {
	return func(target string, k Key) bool {
		if target != id || !c.Focused() {
			return false
		}
		return c.HandleKey(k) != ActionNone
	}
}
