package signals

import (
	"context"

	"github.com/krew-solutions/eos-go/eos/disposable"
	"github.com/krew-solutions/eos-go/eos/registry"
)

// Observer reacts to one event carrying arguments of type A.
type Observer[A any] func(ctx context.Context, args A) error

// Reactor is the struct form of Observer: embed state, implement React.
type Reactor[A any] interface {
	React(ctx context.Context, args A) error
}

type Signal[A any] interface {
	Attach(observer Observer[A], opts ...registry.SubscribeOption) disposable.Disposable
	Notify(ctx context.Context, args A, opts ...registry.DispatchOption) error
}
