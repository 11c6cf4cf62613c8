package registry

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrorPolicy decides what a dispatch does after an observer fails.
type ErrorPolicy int

const (
	// FailFast stops the pass at the first failing observer.
	FailFast ErrorPolicy = iota
	// CollectErrors invokes every live observer and aggregates the failures.
	CollectErrors
)

func (p ErrorPolicy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case CollectErrors:
		return "collect"
	}
	return "unknown"
}

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "", "fail_fast":
		return FailFast, nil
	case "collect":
		return CollectErrors, nil
	}
	return FailFast, errors.Errorf("registry: unknown error policy %q", s)
}

type Option func(*RegistryImp)

func WithLogger(logger *zap.Logger) Option {
	return func(r *RegistryImp) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(r *RegistryImp) {
		r.errorPolicy = policy
	}
}

func WithInterceptors(interceptors ...Interceptor) Option {
	return func(r *RegistryImp) {
		r.interceptors = append(r.interceptors, interceptors...)
	}
}

func WithDispatchInterceptors(interceptors ...DispatchInterceptor) Option {
	return func(r *RegistryImp) {
		r.dispatchInterceptors = append(r.dispatchInterceptors, interceptors...)
	}
}

type dispatchConfig struct {
	ordering    Ordering
	errorPolicy ErrorPolicy
}

type DispatchOption func(*dispatchConfig)

// WithOrdering reorders the snapshot for this dispatch only.
func WithOrdering(ordering Ordering) DispatchOption {
	return func(c *dispatchConfig) {
		c.ordering = ordering
	}
}

func WithDispatchErrorPolicy(policy ErrorPolicy) DispatchOption {
	return func(c *dispatchConfig) {
		c.errorPolicy = policy
	}
}

type subscribeConfig struct {
	kind Kind
}

type SubscribeOption func(*subscribeConfig)

func WithKind(kind Kind) SubscribeOption {
	return func(c *subscribeConfig) {
		c.kind = kind
	}
}

// ResolveKind applies opts over defaultKind. Façades that derive their own
// default kind go through it.
func ResolveKind(defaultKind Kind, opts ...SubscribeOption) Kind {
	c := subscribeConfig{kind: defaultKind}
	for _, opt := range opts {
		opt(&c)
	}
	return c.kind
}
