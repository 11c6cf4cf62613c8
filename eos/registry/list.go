package registry

import "sync"

// observerList is the ordered, duplicate-free handle sequence of one event.
// version changes on every mutation so Reorder can detect a concurrent write.
type observerList struct {
	mu      sync.Mutex
	handles Observers
	version uint64
}

func (l *observerList) add(h *Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handles.Contains(h) {
		return false
	}
	l.handles = append(l.handles, h)
	l.version++
	return true
}

func (l *observerList) remove(h *Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.handles[:0]
	removed := 0
	for _, item := range l.handles {
		if item == h {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed == 0 {
		return 0
	}
	// clear the tail so removed handles can be collected
	for i := len(kept); i < len(l.handles); i++ {
		l.handles[i] = nil
	}
	l.handles = kept
	l.version++
	return removed
}

func (l *observerList) contains(h *Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handles.Contains(h)
}

func (l *observerList) toFront(h *Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.handles.Index(h)
	if i < 0 {
		return false
	}
	copy(l.handles[1:i+1], l.handles[:i])
	l.handles[0] = h
	l.version++
	return true
}

func (l *observerList) toBack(h *Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.handles.Index(h)
	if i < 0 {
		return false
	}
	last := len(l.handles) - 1
	copy(l.handles[i:last], l.handles[i+1:])
	l.handles[last] = h
	l.version++
	return true
}

func (l *observerList) snapshot() (Observers, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handles.Clone(), l.version
}

// replace installs handles if the list has not changed since version.
func (l *observerList) replace(handles Observers, version uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.version != version {
		return false
	}
	l.handles = handles
	l.version++
	return true
}
