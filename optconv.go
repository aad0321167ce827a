package holder

import "github.com/mongodb-labs/holder/option"

// ToOption snapshots the Holder as an option.Option: Some of the
// content when the Holder is populated, None when it’s empty.
func (h *Holder[T]) ToOption() option.Option[T] {
	val, isSet := h.Get()
	if !isSet {
		return option.None[T]()
	}

	return option.Some(val)
}

// SetOption assigns from an option.Option. None empties the Holder and
// returns false; Some assigns its value via Set.
func (h *Holder[T]) SetOption(opt option.Option[T]) bool {
	val, exists := opt.Get()
	if !exists {
		h.clear()
		return false
	}

	return h.Set(val)
}
