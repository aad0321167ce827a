package option

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. None marshals to JSON null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	val, exists := o.Get()
	if !exists {
		return jsonNull, nil
	}

	return json.Marshal(val)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null unmarshals to
// None; anything else unmarshals to Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		o.val = nil
		return nil
	}

	valPtr := new(T)

	err := json.Unmarshal(data, valPtr)
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", *o)
	}

	if isNil(*valPtr) {
		return errors.Errorf("refusing to store nil %T value", *o)
	}

	o.val = valPtr

	return nil
}
