package registry

import "context"

// Registry owns the observer lists of every event and dispatches to them.
type Registry interface {
	Register(event EventID, h *Handle)
	Unregister(event EventID, h *Handle)
	MoveToFront(event EventID, h *Handle)
	MoveToBack(event EventID, h *Handle)
	Snapshot(event EventID) Observers
	Reorder(event EventID, transform Ordering) error
	Dispatch(ctx context.Context, event EventID, args any, opts ...DispatchOption) error
}
