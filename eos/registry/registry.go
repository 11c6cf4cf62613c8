package registry

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry. Prefer passing an explicit
// Registry; Default exists for call sites that have none.
func Default() *RegistryImp {
	return defaultRegistry
}

type RegistryImp struct {
	mu    sync.RWMutex
	lists map[EventID]*observerList

	logger               *zap.Logger
	errorPolicy          ErrorPolicy
	interceptors         []Interceptor
	dispatchInterceptors []DispatchInterceptor
}

func NewRegistry(opts ...Option) *RegistryImp {
	r := &RegistryImp{
		lists:  make(map[EventID]*observerList),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RegistryImp) list(event EventID) *observerList {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lists[event]
}

func (r *RegistryImp) listOrCreate(event EventID) *observerList {
	if l := r.list(event); l != nil {
		return l
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[event]
	if !ok {
		l = &observerList{}
		r.lists[event] = l
	}
	return l
}

func (r *RegistryImp) Register(event EventID, h *Handle) {
	if h == nil {
		return
	}
	if r.listOrCreate(event).add(h) {
		r.logger.Debug("observer_registered",
			zap.String("event", string(event)),
			zap.Stringer("handle", h),
		)
	}
}

func (r *RegistryImp) Unregister(event EventID, h *Handle) {
	l := r.list(event)
	if l == nil || h == nil {
		return
	}
	if l.remove(h) > 0 {
		r.logger.Debug("observer_unregistered",
			zap.String("event", string(event)),
			zap.Stringer("handle", h),
		)
	}
}

func (r *RegistryImp) MoveToFront(event EventID, h *Handle) {
	if l := r.list(event); l != nil {
		l.toFront(h)
	}
}

func (r *RegistryImp) MoveToBack(event EventID, h *Handle) {
	if l := r.list(event); l != nil {
		l.toBack(h)
	}
}

func (r *RegistryImp) Snapshot(event EventID) Observers {
	l := r.list(event)
	if l == nil {
		return Observers{}
	}
	handles, _ := l.snapshot()
	return handles
}

// maxReorderAttempts bounds how often Reorder re-runs a transform whose
// snapshot went stale.
const maxReorderAttempts = 16

// Reorder replaces the persistent order of event with transform(snapshot).
// Handles left out by transform are unregistered. transform runs without any
// lock held and is called again if the list changes while it runs, up to
// maxReorderAttempts times; after that ErrConcurrentReorder is returned and
// the list keeps whatever order the concurrent writers left.
func (r *RegistryImp) Reorder(event EventID, transform Ordering) error {
	l := r.list(event)
	if l == nil || transform == nil {
		return nil
	}
	for attempt := 0; attempt < maxReorderAttempts; attempt++ {
		source, version := l.snapshot()
		result := transform(source.Clone())
		if err := source.verifySubset(result, true); err != nil {
			return err
		}
		if l.replace(result.Clone(), version) {
			r.logger.Debug("observers_reordered",
				zap.String("event", string(event)),
				zap.Int("kept", len(result)),
				zap.Int("dropped", len(source)-len(result)),
			)
			return nil
		}
	}
	return errors.Wrapf(ErrConcurrentReorder, "registry: reorder %q gave up after %d attempts", event, maxReorderAttempts)
}

// Events returns the known event ids in lexical order.
func (r *RegistryImp) Events() []EventID {
	r.mu.RLock()
	events := make([]EventID, 0, len(r.lists))
	for event := range r.lists {
		events = append(events, event)
	}
	r.mu.RUnlock()
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}
