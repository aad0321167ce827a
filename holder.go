// Package holder provides Holder, a mutable single-value cell that makes
// “first non-empty candidate wins” fallback logic succinct. It replaces
// boilerplate like:
//
//	uri := flagURI
//	if uri == "" {
//		uri = lookupURIFromDB() // slow
//	}
//	if uri == "" {
//		uri = defaultURI
//	}
//	if uri == "" {
//		return errors.New("no URI")
//	}
//
// ...with a chain whose later candidates are only evaluated if the earlier
// ones were empty:
//
//	h := holder.New[string]()
//	ok := h.Set(flagURI) || h.SetFrom(lookupURIFromDB) || h.Set(defaultURI)
//	uri, err := h.Resolve(ok)
//
// Every try-set method overwrites the cell and reports whether the new
// content is non-empty, so Go’s short-circuiting || gives strict
// left-to-right evaluation for free. SetFirstFrom offers the same thing
// without the boolean chaining for callers who prefer a supplier list.
//
// “Empty” means the zero value of T. The check is reflect-based, so T may
// be any type at all: for pointers, maps, and interfaces emptiness is
// nil-ness; for strings it’s ""; for ints it’s 0. Callers for whom the
// zero value is meaningful should hold a *T or an option.Option[T]
// instead, either of which makes emptiness unambiguous again.
//
// A Holder is not safe for concurrent mutation. Observer methods read the
// cell once and work off that single read, so a concurrent observer sees
// some consistent past content rather than a torn mix, but mutators need
// external synchronization (or one Holder per goroutine).
package holder

import (
	"fmt"
	"reflect"
)

// Token that String returns for an empty Holder.
const emptyToken = "<empty>"

// Holder is a mutable cell around a single value of T. The zero Holder
// is empty and ready to use, but chains read more naturally starting
// from New or Of.
type Holder[T any] struct {
	val T
}

// New returns a new, empty Holder.
func New[T any]() *Holder[T] {
	return &Holder[T]{}
}

// Of returns a new Holder whose content is initial. The result is empty
// if initial is T’s zero value.
func Of[T any](initial T) *Holder[T] {
	return &Holder[T]{val: initial}
}

// Set overwrites the Holder’s content with val, unconditionally, and
// returns whether val is non-empty. It is the primitive the other
// try-set methods build on.
func (h *Holder[T]) Set(val T) bool {
	h.val = val
	return !isEmpty(val)
}

// SetNone empties the Holder and returns true. Ending a fallback chain
// with SetNone marks the value as deliberately empty, so Resolve will
// hand back the zero value instead of failing:
//
//	ok := h.Set(primary) || h.Set(secondary) || h.SetNone()
func (h *Holder[T]) SetNone() bool {
	h.clear()
	return true
}

// SetElem overwrites the Holder’s content with vals[index], returning
// whether that element is non-empty. If vals is nil or index is out of
// range, the Holder is emptied and SetElem returns false.
func (h *Holder[T]) SetElem(vals []T, index int) bool {
	if index < 0 || index >= len(vals) {
		h.clear()
		return false
	}

	return h.Set(vals[index])
}

// IsSet returns whether the Holder’s content is non-empty.
func (h *Holder[T]) IsSet() bool {
	_, isSet := h.Get()
	return isSet
}

// Value returns the Holder’s content without any defined/undefined
// check. It returns T’s zero value when the Holder is empty (or nil).
func (h *Holder[T]) Value() T {
	if h == nil {
		return *new(T)
	}

	return h.val
}

// Get returns the Holder’s content along with whether it is non-empty.
func (h *Holder[T]) Get() (T, bool) {
	val := h.Value()
	return val, !isEmpty(val)
}

// Equal reports whether the two Holders’ contents are equal. Two empty
// Holders are equal; an empty Holder never equals a populated one;
// otherwise contents compare via reflect.DeepEqual. A nil *Holder
// compares as empty.
func (h *Holder[T]) Equal(other *Holder[T]) bool {
	return reflect.DeepEqual(h.Value(), other.Value())
}

// String returns the content’s default format, or a fixed token when
// the Holder is empty.
func (h *Holder[T]) String() string {
	val, isSet := h.Get()
	if !isSet {
		return emptyToken
	}

	return fmt.Sprintf("%v", val)
}

func (h *Holder[T]) clear() {
	h.val = *new(T)
}

// isEmpty is the emptiness test behind every try-set method: empty
// means the zero value of T. reflect is slower than == but frees T
// from the comparable constraint.
func isEmpty[T any](val T) bool {
	return reflect.ValueOf(&val).Elem().IsZero()
}
