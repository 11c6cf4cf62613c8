package registry

import "context"

// Invocation describes one observer call made by the dispatch engine.
type Invocation struct {
	Event    EventID
	Handle   *Handle
	Args     any
	Position int
}

// Interceptor wraps every observer invocation.
type Interceptor = func(ctx context.Context, inv Invocation, next func(context.Context) error) error

// DispatchInterceptor wraps a whole dispatch, including its ordering step.
type DispatchInterceptor = func(ctx context.Context, event EventID, next func(context.Context) error) error

// The first interceptor in the slice ends up outermost.
func wrapInvocation(interceptors []Interceptor, inv Invocation, call func(context.Context) error) func(context.Context) error {
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor, next := interceptors[i], call
		call = func(ctx context.Context) error {
			return interceptor(ctx, inv, next)
		}
	}
	return call
}

func wrapDispatch(interceptors []DispatchInterceptor, event EventID, call func(context.Context) error) func(context.Context) error {
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor, next := interceptors[i], call
		call = func(ctx context.Context) error {
			return interceptor(ctx, event, next)
		}
	}
	return call
}
