// Package mouse maps terminal cells to named regions and delivers pointer
// events through them.
//
// Regions form a tree through their Parent IDs. An event hits the topmost
// region under the pointer and then bubbles to each ancestor in turn until a
// handler consumes it, so nested clickable regions never rely on terminal
// event order.
package mouse

// Rect is a cell rectangle. X and Y are inclusive, X+W and Y+H exclusive.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

type Region struct {
	ID     string
	Parent string
	Rect   Rect
	Data   any
}

// HitMap holds regions in insertion order; later regions sit on top.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

func (h *HitMap) Add(r Region) {
	if r.Rect.W <= 0 || r.Rect.H <= 0 {
		return
	}
	h.regions = append(h.regions, r)
}

func (h *HitMap) AddRect(id, parent string, x, y, width, height int, data any) {
	h.Add(Region{ID: id, Parent: parent, Rect: Rect{X: x, Y: y, W: width, H: height}, Data: data})
}

func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Lookup returns the region registered under id.
func (h *HitMap) Lookup(id string) (Region, bool) {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].ID == id {
			return h.regions[i], true
		}
	}
	return Region{}, false
}

// Chain returns the region hit at (x, y) followed by its ancestors,
// innermost first.
func (h *HitMap) Chain(x, y int) []Region {
	hit := h.Test(x, y)
	if hit == nil {
		return nil
	}
	chain := []Region{*hit}
	seen := map[string]bool{hit.ID: true}
	for parent := hit.Parent; parent != "" && !seen[parent]; {
		r, ok := h.Lookup(parent)
		if !ok {
			break
		}
		seen[parent] = true
		chain = append(chain, r)
		parent = r.Parent
	}
	return chain
}

// Dispatch delivers ev to the chain under the pointer, innermost first,
// stopping once a handler consumes it. It reports whether any region was hit.
func (h *HitMap) Dispatch(ev *Event, fn func(Region, *Event)) bool {
	chain := h.Chain(ev.X, ev.Y)
	for _, r := range chain {
		fn(r, ev)
		if ev.Consumed() {
			break
		}
	}
	return len(chain) > 0
}
