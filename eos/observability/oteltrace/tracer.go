package oteltrace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/krew-solutions/eos-go/eos/registry"
)

const (
	spanDispatch = "eos.dispatch"
	spanObserver = "eos.observer"

	attrEvent    = attribute.Key("eos.event")
	attrKind     = attribute.Key("eos.kind")
	attrHandle   = attribute.Key("eos.handle")
	attrPosition = attribute.Key("eos.position")
)

type Tracer struct{ t trace.Tracer }

// New uses the global tracer provider; set it with otel.SetTracerProvider.
func New(name string) *Tracer {
	return NewWithProvider(otel.GetTracerProvider(), name)
}

func NewWithProvider(tp trace.TracerProvider, name string) *Tracer {
	if name == "" {
		name = "eos"
	}
	return &Tracer{t: tp.Tracer(name)}
}

func (t *Tracer) DispatchInterceptor() registry.DispatchInterceptor {
	return func(ctx context.Context, event registry.EventID, next func(context.Context) error) error {
		ctx, span := t.t.Start(ctx, spanDispatch, trace.WithAttributes(attrEvent.String(string(event))))
		defer span.End()
		return record(span, next(ctx))
	}
}

func (t *Tracer) Interceptor() registry.Interceptor {
	return func(ctx context.Context, inv registry.Invocation, next func(context.Context) error) error {
		ctx, span := t.t.Start(ctx, spanObserver, trace.WithAttributes(
			attrEvent.String(string(inv.Event)),
			attrKind.String(string(inv.Handle.Kind())),
			attrHandle.String(inv.Handle.ID().String()),
			attrPosition.Int(inv.Position),
		))
		defer span.End()
		return record(span, next(ctx))
	}
}

func (t *Tracer) Options() []registry.Option {
	return []registry.Option{
		registry.WithDispatchInterceptors(t.DispatchInterceptor()),
		registry.WithInterceptors(t.Interceptor()),
	}
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
