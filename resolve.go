package holder

import (
	"github.com/pkg/errors"
	"github.com/samber/mo"
)

// ErrNotDefined is returned by Resolve when the chained try-set calls
// all came up empty and no SetNone acknowledged the emptiness.
var ErrNotDefined = errors.New("value was never defined")

// Resolve returns the Holder’s content if defined is true, and
// ErrNotDefined otherwise. Callers compute defined as the || of a chain
// of try-set calls:
//
//	ok := h.Set(a) || h.SetFrom(lookupB) || h.Set(c)
//	val, err := h.Resolve(ok)
//
// The content is returned as-is when defined is true, even if it is
// empty (a chain ending in SetNone resolves to the zero value, on
// purpose). When defined is false the zero value accompanies the error.
func (h *Holder[T]) Resolve(defined bool) (T, error) {
	if !defined {
		return *new(T), ErrNotDefined
	}

	return h.Value(), nil
}

// ResultFor is Resolve packaged as a mo.Result, for callers already
// composing with samber/mo.
func (h *Holder[T]) ResultFor(defined bool) mo.Result[T] {
	val, err := h.Resolve(defined)
	if err != nil {
		return mo.Err[T](err)
	}

	return mo.Ok(val)
}
