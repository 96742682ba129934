package tenox

// Binding owns the listeners attached while applying classes to an element.
// Closing it detaches them; styles already written stay in place.
type Binding struct {
	removers []func()
	counts   map[Mode]int
	closed   bool

	// onListen runs once, when the first listener is added.
	onListen func(*Binding)
}

func (b *Binding) add(remove func()) {
	if remove == nil {
		return
	}
	if b.closed {
		remove()
		return
	}
	if len(b.removers) == 0 && b.onListen != nil {
		b.onListen(b)
		b.onListen = nil
	}
	b.removers = append(b.removers, remove)
}

func (b *Binding) record(m Mode) {
	if b.counts == nil {
		b.counts = make(map[Mode]int)
	}
	b.counts[m]++
}

// Listeners returns the number of listeners the binding holds.
func (b *Binding) Listeners() int {
	return len(b.removers)
}

// Count returns how many classes were applied in mode m.
func (b *Binding) Count(m Mode) int {
	return b.counts[m]
}

// Applied returns how many classes had any effect.
func (b *Binding) Applied() int {
	return b.counts[ModeImmediate] + b.counts[ModeResponsive] + b.counts[ModeHover]
}

// Close detaches every listener. It is safe to call more than once.
func (b *Binding) Close() {
	if b.closed {
		return
	}
	b.closed = true
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
}
