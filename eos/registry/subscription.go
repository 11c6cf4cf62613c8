package registry

import (
	"github.com/krew-solutions/eos-go/eos/disposable"
)

// Subscription ties a handle's registration to a scope: Subscribe registers
// it, Dispose releases and unregisters it.
type Subscription struct {
	registry Registry
	event    EventID
	handle   *Handle
	disposer disposable.Disposable
}

func Subscribe(r Registry, event EventID, invoke Invoker, opts ...SubscribeOption) *Subscription {
	h := NewHandle(ResolveKind("", opts...), invoke)
	s := &Subscription{
		registry: r,
		event:    event,
		handle:   h,
	}
	s.disposer = disposable.NewDisposable(func() {
		h.Release()
		r.Unregister(event, h)
	})
	r.Register(event, h)
	return s
}

func (s *Subscription) Event() EventID {
	return s.event
}

func (s *Subscription) Handle() *Handle {
	return s.handle
}

func (s *Subscription) ToFront() {
	s.registry.MoveToFront(s.event, s.handle)
}

func (s *Subscription) ToBack() {
	s.registry.MoveToBack(s.event, s.handle)
}

func (s *Subscription) Dispose() {
	s.disposer.Dispose()
}
