package signals

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/eos-go/eos/disposable"
	"github.com/krew-solutions/eos-go/eos/registry"
)

type CompositeSignalImp[A any] struct {
	delegates []Signal[A]
}

func NewCompositeSignal[A any](delegates ...Signal[A]) *CompositeSignalImp[A] {
	return &CompositeSignalImp[A]{delegates: delegates}
}

func (s *CompositeSignalImp[A]) Attach(observer Observer[A], opts ...registry.SubscribeOption) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		disposables = append(disposables, delegate.Attach(observer, opts...))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

// Notify notifies every delegate, even after one fails; delegate errors are
// aggregated.
func (s *CompositeSignalImp[A]) Notify(ctx context.Context, args A, opts ...registry.DispatchOption) error {
	var result *multierror.Error
	for _, delegate := range s.delegates {
		if err := delegate.Notify(ctx, args, opts...); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
