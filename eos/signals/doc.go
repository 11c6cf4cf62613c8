// Package signals is the typed side of the observer registry. A Signal binds
// one event name of a registry to an argument type, so observers receive
// typed arguments and the registry core stays type-agnostic.
//
// # Declare an event
//
// An event is a name plus an argument type. Argument-less events use struct{}:
//
//	type PriceChanged struct {
//	    Symbol string
//	    Price  float64
//	}
//	var priceChanged = signals.NewSignal[PriceChanged](registry.Default(), "priceChanged")
//
// # Observe it
//
// Either with a callback:
//
//	sub := priceChanged.Subscribe(func(ctx context.Context, e PriceChanged) error {
//	    fmt.Println(e.Symbol, e.Price)
//	    return nil
//	})
//	defer sub.Dispose()
//
// or with a Reactor, whose Go type becomes the handle kind:
//
//	sub := priceChanged.SubscribeReactor(&ticker{})
//
// # Dispatch it
//
//	err := priceChanged.Notify(ctx, PriceChanged{Symbol: "EOS", Price: 1})
//
// Observers run synchronously in registration order unless the order was
// changed with Subscription.ToFront/ToBack, Reorder, or for a single call with
// registry.WithOrdering.
package signals
