package dom

// listeners is an ordered set of event callbacks keyed by event name.
type listeners struct {
	next  int
	byEvt map[string][]listener
}

type listener struct {
	id int
	fn func()
}

func (l *listeners) add(event string, fn func()) func() {
	if l.byEvt == nil {
		l.byEvt = make(map[string][]listener)
	}
	l.next++
	id := l.next
	l.byEvt[event] = append(l.byEvt[event], listener{id: id, fn: fn})

	return func() {
		list := l.byEvt[event]
		for i, ln := range list {
			if ln.id == id {
				l.byEvt[event] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// dispatch calls the listeners registered for event in registration order and
// returns how many ran. Listeners added or removed during dispatch take effect
// on the next dispatch.
func (l *listeners) dispatch(event string) int {
	list := l.byEvt[event]
	if len(list) == 0 {
		return 0
	}
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, ln := range snapshot {
		ln.fn()
	}
	return len(snapshot)
}

func (l *listeners) count(event string) int {
	return len(l.byEvt[event])
}
