package signals

import (
	"context"

	"github.com/pkg/errors"

	"github.com/krew-solutions/eos-go/eos/disposable"
	"github.com/krew-solutions/eos-go/eos/registry"
)

// SignalImp binds the argument type A to one event of a registry.
type SignalImp[A any] struct {
	registry registry.Registry
	event    registry.EventID
}

func NewSignal[A any](r registry.Registry, name string) *SignalImp[A] {
	return &SignalImp[A]{registry: r, event: registry.EventID(name)}
}

func (s *SignalImp[A]) Event() registry.EventID {
	return s.event
}

func (s *SignalImp[A]) Subscribe(observer Observer[A], opts ...registry.SubscribeOption) *registry.Subscription {
	return registry.Subscribe(s.registry, s.event, invoker(observer), opts...)
}

// SubscribeReactor defaults the handle kind to the reactor's Go type, so
// orderings can pick it out with registry.KindOf.
func (s *SignalImp[A]) SubscribeReactor(reactor Reactor[A], opts ...registry.SubscribeOption) *registry.Subscription {
	opts = append([]registry.SubscribeOption{registry.WithKind(registry.KindOf(reactor))}, opts...)
	return s.Subscribe(reactor.React, opts...)
}

func (s *SignalImp[A]) Attach(observer Observer[A], opts ...registry.SubscribeOption) disposable.Disposable {
	return s.Subscribe(observer, opts...)
}

func (s *SignalImp[A]) AttachReactor(reactor Reactor[A], opts ...registry.SubscribeOption) disposable.Disposable {
	return s.SubscribeReactor(reactor, opts...)
}

func (s *SignalImp[A]) Notify(ctx context.Context, args A, opts ...registry.DispatchOption) error {
	return s.registry.Dispatch(ctx, s.event, args, opts...)
}

func (s *SignalImp[A]) Observers() registry.Observers {
	return s.registry.Snapshot(s.event)
}

func (s *SignalImp[A]) Reorder(transform registry.Ordering) error {
	return s.registry.Reorder(s.event, transform)
}

func invoker[A any](observer Observer[A]) registry.Invoker {
	return func(ctx context.Context, args any) error {
		typed, ok := args.(A)
		if !ok {
			var want A
			return errors.Wrapf(registry.ErrArgumentType, "want %T, got %T", want, args)
		}
		return observer(ctx, typed)
	}
}
