package dashboard

import "sync"

// DefaultBreakpoint is the width, in CSS pixels, below which a chart switches
// to its mobile layout.
const DefaultBreakpoint = 640

// ViewportMode selects the layout geometry of a chart.
type ViewportMode int

const (
	// Desktop is the wide layout.
	Desktop ViewportMode = iota
	// Mobile is the narrow layout.
	Mobile
)

// String returns "desktop" or "mobile".
func (m ViewportMode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// ModeFor derives the viewport mode for a width.
func ModeFor(width, breakpoint int) ViewportMode {
	if width < breakpoint {
		return Mobile
	}
	return Desktop
}

// ViewportSource is anything that reports a width and notifies on resize.
type ViewportSource interface {
	Width() int
	Breakpoint() int
	Subscribe(fn func(width int)) (cancel func())
}

// Viewport is an in-process resize event source. Listeners are invoked
// synchronously, in registration order, on every Resize.
type Viewport struct {
	mu         sync.Mutex
	width      int
	breakpoint int
	nextID     int
	listeners  map[int]func(int)
	order      []int
}

// NewViewport returns a viewport of the given width. A non-positive
// breakpoint falls back to DefaultBreakpoint.
func NewViewport(width, breakpoint int) *Viewport {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Viewport{
		width:      width,
		breakpoint: breakpoint,
		listeners:  make(map[int]func(int)),
	}
}

// Width returns the current width.
func (v *Viewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// Breakpoint returns the mobile breakpoint.
func (v *Viewport) Breakpoint() int {
	return v.breakpoint
}

// Mode returns the current viewport mode.
func (v *Viewport) Mode() ViewportMode {
	return ModeFor(v.Width(), v.breakpoint)
}

// Resize records a new width and notifies every listener.
func (v *Viewport) Resize(width int) {
	v.mu.Lock()
	v.width = width
	fns := make([]func(int), 0, len(v.order))
	for _, id := range v.order {
		fns = append(fns, v.listeners[id])
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(width)
	}
}

// Subscribe registers fn for resize events. The returned cancel func removes
// the registration and is safe to call more than once.
func (v *Viewport) Subscribe(fn func(width int)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.order = append(v.order, id)
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.listeners, id)
			for i, o := range v.order {
				if o == id {
					v.order = append(v.order[:i], v.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Listeners reports how many subscriptions are live.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
