package option

import "github.com/samber/mo"

// ToMo converts the Option to its samber/mo equivalent.
func (o Option[T]) ToMo() mo.Option[T] {
	if val, exists := o.Get(); exists {
		return mo.Some(val)
	}

	return mo.None[T]()
}

// FromMo converts a samber/mo option to this package’s Option.
func FromMo[T any](moOpt mo.Option[T]) Option[T] {
	if val, exists := moOpt.Get(); exists {
		return Some(val)
	}

	return None[T]()
}
