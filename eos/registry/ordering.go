package registry

// Ordering transforms a snapshot into the sequence to act on. Used one-shot by
// dispatch (WithOrdering) and persistently by Reorder.
type Ordering func(Observers) Observers

func Identity(o Observers) Observers {
	return o
}

func Reverse(o Observers) Observers {
	out := make(Observers, len(o))
	for i, h := range o {
		out[len(o)-1-i] = h
	}
	return out
}

// KindsFirst moves handles of the given kinds to the front, grouped in the
// order the kinds are listed. The remaining handles keep their relative order.
func KindsFirst(kinds ...Kind) Ordering {
	return func(o Observers) Observers {
		out := make(Observers, 0, len(o))
		picked := make(map[*Handle]struct{}, len(o))
		for _, kind := range kinds {
			for _, h := range o {
				if _, ok := picked[h]; ok || h.Kind() != kind {
					continue
				}
				picked[h] = struct{}{}
				out = append(out, h)
			}
		}
		for _, h := range o {
			if _, ok := picked[h]; !ok {
				out = append(out, h)
			}
		}
		return out
	}
}

// OnlyKinds is KindsFirst without the remainder.
func OnlyKinds(kinds ...Kind) Ordering {
	return func(o Observers) Observers {
		out := make(Observers, 0, len(o))
		for _, kind := range kinds {
			out = append(out, o.Filter(func(h *Handle) bool { return h.Kind() == kind })...)
		}
		return out
	}
}

// Chain applies orderings left to right.
func Chain(orderings ...Ordering) Ordering {
	return func(o Observers) Observers {
		for _, ordering := range orderings {
			if ordering != nil {
				o = ordering(o)
			}
		}
		return o
	}
}
