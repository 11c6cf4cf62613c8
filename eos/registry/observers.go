package registry

import "github.com/pkg/errors"

// Observers is an ordered sequence of handles for one event.
type Observers []*Handle

func (o Observers) Clone() Observers {
	out := make(Observers, len(o))
	copy(out, o)
	return out
}

func (o Observers) Index(h *Handle) int {
	for i, item := range o {
		if item == h {
			return i
		}
	}
	return -1
}

func (o Observers) Contains(h *Handle) bool {
	return o.Index(h) >= 0
}

// Find returns the first handle matching pred.
func (o Observers) Find(pred func(*Handle) bool) (*Handle, bool) {
	for _, h := range o {
		if pred(h) {
			return h, true
		}
	}
	return nil, false
}

func (o Observers) Filter(pred func(*Handle) bool) Observers {
	out := make(Observers, 0, len(o))
	for _, h := range o {
		if pred(h) {
			out = append(out, h)
		}
	}
	return out
}

// verifySubset fails with ErrForeignHandle if candidate lists a handle that
// is not in o. Repeated entries are allowed unless unique is set.
func (o Observers) verifySubset(candidate Observers, unique bool) error {
	members := make(map[*Handle]struct{}, len(o))
	for _, h := range o {
		members[h] = struct{}{}
	}
	seen := make(map[*Handle]struct{}, len(candidate))
	for i, h := range candidate {
		if _, ok := members[h]; !ok || h == nil {
			return errors.Wrapf(ErrForeignHandle, "position %d: %v", i, h)
		}
		if _, ok := seen[h]; ok && unique {
			return errors.Wrapf(ErrDuplicateHandle, "position %d: %v", i, h)
		}
		seen[h] = struct{}{}
	}
	return nil
}
