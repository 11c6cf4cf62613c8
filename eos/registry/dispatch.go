package registry

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Dispatch invokes the live observers of event with args, synchronously and
// in order. A handle is live while it is unreleased and still registered for
// event, so anything unregistered earlier in the pass is skipped. Observer code runs with no registry lock held, so observers may
// register, unregister or dispatch themselves.
func (r *RegistryImp) Dispatch(ctx context.Context, event EventID, args any, opts ...DispatchOption) error {
	cfg := dispatchConfig{errorPolicy: r.errorPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}
	run := func(ctx context.Context) error {
		return r.dispatch(ctx, event, args, cfg)
	}
	return wrapDispatch(r.dispatchInterceptors, event, run)(ctx)
}

func (r *RegistryImp) dispatch(ctx context.Context, event EventID, args any, cfg dispatchConfig) error {
	l := r.list(event)
	if l == nil {
		l = &observerList{}
	}
	source, _ := l.snapshot()
	sequence := source
	if cfg.ordering != nil {
		sequence = cfg.ordering(source.Clone())
		if err := source.verifySubset(sequence, false); err != nil {
			return errors.Wrapf(err, "registry: dispatch %q", event)
		}
	}

	var result *multierror.Error
	for i, h := range sequence {
		if !h.Alive() || !l.contains(h) {
			r.logger.Debug("observer_skipped_dead",
				zap.String("event", string(event)),
				zap.Stringer("handle", h),
			)
			continue
		}
		inv := Invocation{Event: event, Handle: h, Args: args, Position: i}
		err := wrapInvocation(r.interceptors, inv, func(ctx context.Context) error {
			return h.Invoke(ctx, args)
		})(ctx)
		if err == nil {
			continue
		}
		err = errors.Wrapf(err, "registry: observer %s on %q", h, event)
		if cfg.errorPolicy != CollectErrors {
			return err
		}
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
