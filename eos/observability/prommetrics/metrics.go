package prommetrics

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/krew-solutions/eos-go/eos/registry"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Collector counts dispatches and observer invocations of a registry.
type Collector struct {
	dispatches  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	invocations *prometheus.CounterVec
}

func New(reg prometheus.Registerer, namespace, subsystem string) (*Collector, error) {
	c := &Collector{
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "dispatches_total", Help: "Dispatches started, by event.",
		}, []string{"event"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "dispatch_duration_seconds", Help: "Wall time of a whole dispatch, by event.",
			Buckets: prometheus.DefBuckets,
		}, []string{"event"}),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "invocations_total", Help: "Observer invocations, by event, kind and outcome.",
		}, []string{"event", "kind", "outcome"}),
	}
	for _, collector := range []prometheus.Collector{c.dispatches, c.duration, c.invocations} {
		if err := reg.Register(collector); err != nil {
			return nil, errors.Wrap(err, "prommetrics: register")
		}
	}
	return c, nil
}

func (c *Collector) DispatchInterceptor() registry.DispatchInterceptor {
	return func(ctx context.Context, event registry.EventID, next func(context.Context) error) error {
		start := time.Now()
		c.dispatches.WithLabelValues(string(event)).Inc()
		err := next(ctx)
		c.duration.WithLabelValues(string(event)).Observe(time.Since(start).Seconds())
		return err
	}
}

func (c *Collector) Interceptor() registry.Interceptor {
	return func(ctx context.Context, inv registry.Invocation, next func(context.Context) error) error {
		err := next(ctx)
		outcome := outcomeOK
		if err != nil {
			outcome = outcomeError
		}
		c.invocations.WithLabelValues(string(inv.Event), string(inv.Handle.Kind()), outcome).Inc()
		return err
	}
}

// Options installs both interceptors on a registry.
func (c *Collector) Options() []registry.Option {
	return []registry.Option{
		registry.WithDispatchInterceptors(c.DispatchInterceptor()),
		registry.WithInterceptors(c.Interceptor()),
	}
}
