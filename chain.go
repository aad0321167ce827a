package holder

import "iter"

// SetFirst scans vals left to right and assigns the first non-empty one,
// returning true as soon as it does. If vals is nil or every element is
// empty, the Holder is emptied and SetFirst returns false.
//
// Note that variadic arguments are evaluated before the call, so
// SetFirst only skips the scan, not the work of producing candidates.
// Use SetFirstFrom (or a || chain of Set calls) when later candidates
// are expensive to produce.
func (h *Holder[T]) SetFirst(vals ...T) bool {
	for _, val := range vals {
		if !isEmpty(val) {
			h.val = val
			return true
		}
	}

	h.clear()
	return false
}

// SetFirstSeq is SetFirst over an iterator. The iteration stops as soon
// as a non-empty value is found. A nil seq empties the Holder and
// returns false.
func (h *Holder[T]) SetFirstSeq(vals iter.Seq[T]) bool {
	if vals != nil {
		for val := range vals {
			if !isEmpty(val) {
				h.val = val
				return true
			}
		}
	}

	h.clear()
	return false
}

// SetFrom invokes supplier exactly once and assigns its result via Set.
// A nil supplier empties the Holder and returns false. Within a ||
// chain this is the lazy form: the supplier only runs if every earlier
// candidate was empty.
func (h *Holder[T]) SetFrom(supplier func() T) bool {
	if supplier == nil {
		h.clear()
		return false
	}

	return h.Set(supplier())
}

// SetFirstFrom invokes suppliers left to right, stopping at the first
// whose result is non-empty. Suppliers past that point are never
// called. Nil suppliers count as empty candidates. If no supplier
// yields a non-empty value, the Holder is emptied and SetFirstFrom
// returns false.
//
// This is the fallback chain in one call:
//
//	ok := h.SetFirstFrom(
//		func() string { return flagURI },
//		lookupURIFromEnv,
//		lookupURIFromDB,
//	)
func (h *Holder[T]) SetFirstFrom(suppliers ...func() T) bool {
	for _, supplier := range suppliers {
		if supplier == nil {
			continue
		}

		if val := supplier(); !isEmpty(val) {
			h.val = val
			return true
		}
	}

	h.clear()
	return false
}
