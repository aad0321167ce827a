// Package option provides Option, an immutable maybe-a-value type. It
// serves as holder.Holder’s snapshot form and as the codec-friendly way
// to put “this field may be absent” into BSON and JSON documents.
package option

import (
	"fmt"
	"reflect"
)

// Option either contains a value of T (“Some”) or doesn’t (“None”).
// The zero Option is None.
type Option[T any] struct {
	val *T
}

// Some returns an Option that contains val.
func Some[T any](val T) Option[T] {
	return Option[T]{&val}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer converts a nullable pointer to an Option: nil becomes
// None, anything else becomes Some of the pointed-to value.
func FromPointer[T any](valPtr *T) Option[T] {
	if valPtr == nil {
		return None[T]()
	}

	return Some(*valPtr)
}

// Get returns the contained value and whether it exists. None yields
// T’s zero value and false.
func (o Option[T]) Get() (T, bool) {
	if o.val == nil {
		return *new(T), false
	}

	return *o.val, true
}

// IsSome returns whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.val != nil
}

// IsNone returns whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return o.val == nil
}

// MustGet returns the contained value, panicking on None.
func (o Option[T]) MustGet() T {
	val, exists := o.Get()
	if !exists {
		panic(fmt.Sprintf("MustGet() on empty %T", o))
	}

	return val
}

// OrZero returns the contained value, or T’s zero value for None.
func (o Option[T]) OrZero() T {
	val, _ := o.Get()
	return val
}

// OrElse returns the contained value, or fallback for None.
func (o Option[T]) OrElse(fallback T) T {
	if val, exists := o.Get(); exists {
		return val
	}

	return fallback
}

// ToPointer returns a pointer to a copy of the contained value, or nil
// for None. The copy keeps the Option immutable.
func (o Option[T]) ToPointer() *T {
	val, exists := o.Get()
	if !exists {
		return nil
	}

	return &val
}

// Equals reports whether two Options agree on existence and, if both
// are Some, on their contents (via reflect.DeepEqual).
func (o Option[T]) Equals(other Option[T]) bool {
	if o.val == nil || other.val == nil {
		return o.val == nil && other.val == nil
	}

	return reflect.DeepEqual(*o.val, *other.val)
}

// String returns the contained value’s default format, or a fixed
// token for None.
func (o Option[T]) String() string {
	val, exists := o.Get()
	if !exists {
		return "<none>"
	}

	return fmt.Sprintf("%v", val)
}

// isNil reports whether val is a nil pointer/map/slice/etc. hiding
// inside T. Storing such a value would let a Some masquerade as empty,
// so the codecs reject it.
func isNil[T any](val T) bool {
	refVal := reflect.ValueOf(val)

	switch refVal.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:

		return refVal.IsNil()
	}

	return false
}
