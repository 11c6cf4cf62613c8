package registry

import (
	"context"
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/google/uuid"
)

// EventID names one event kind. Lookup is by exact match.
type EventID string

// Kind tags a handle so orderings can select observers without inspecting
// their concrete type.
type Kind string

// KindOf derives a Kind from the dynamic type of v: the full package path
// and name of the type, with pointers removed. Unnamed types fall back to
// their literal form.
func KindOf(v any) Kind {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return Kind(t.String())
	}
	return Kind(t.PkgPath() + "." + t.Name())
}

// Invoker forwards a dispatch to the observer behind a handle.
type Invoker func(ctx context.Context, args any) error

// Handle is a non-owning reference to one observer's invocation capability.
// Handles compare by pointer identity.
type Handle struct {
	id       uuid.UUID
	kind     Kind
	invoke   Invoker
	released atomic.Bool
}

func NewHandle(kind Kind, invoke Invoker) *Handle {
	return &Handle{
		id:     uuid.New(),
		kind:   kind,
		invoke: invoke,
	}
}

func (h *Handle) ID() uuid.UUID {
	return h.id
}

func (h *Handle) Kind() Kind {
	return h.kind
}

// Alive reports whether the observer behind the handle still exists.
func (h *Handle) Alive() bool {
	return !h.released.Load()
}

// Release marks the observer as destroyed. A released handle is never invoked
// again, even from a dispatch that took its snapshot earlier.
func (h *Handle) Release() {
	h.released.Store(true)
}

func (h *Handle) Invoke(ctx context.Context, args any) error {
	if h.invoke == nil {
		return nil
	}
	return h.invoke(ctx, args)
}

func (h *Handle) String() string {
	if h == nil {
		return "<nil>"
	}
	if h.kind == "" {
		return h.id.String()
	}
	return fmt.Sprintf("%s(%s)", h.kind, h.id)
}
