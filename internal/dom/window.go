package dom

// DefaultWidth is the viewport width used when none is configured.
const DefaultWidth = 1024

// Window is a viewport with a settable width.
type Window struct {
	width     float64
	listeners listeners
}

// NewWindow creates a viewport of the given width.
func NewWindow(width float64) *Window {
	return &Window{width: width}
}

// Width returns the viewport width.
func (w *Window) Width() float64 {
	return w.width
}

// AddEventListener subscribes listener to a window event.
func (w *Window) AddEventListener(event string, listener func()) func() {
	return w.listeners.add(event, listener)
}

// Resize changes the width and fires "resize". It returns how many listeners
// ran.
func (w *Window) Resize(width float64) int {
	w.width = width
	return w.listeners.dispatch("resize")
}

// ListenerCount returns the number of listeners registered for event.
func (w *Window) ListenerCount(event string) int {
	return w.listeners.count(event)
}
