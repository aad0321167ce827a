package option

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MarshalBSONValue implements bson.ValueMarshaler. None marshals to
// BSON null.
func (o Option[T]) MarshalBSONValue() (byte, []byte, error) {
	val, exists := o.Get()
	if !exists {
		bType, raw, err := bson.MarshalValue(bson.Null{})
		return byte(bType), raw, err
	}

	bType, raw, err := bson.MarshalValue(val)
	return byte(bType), raw, err
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. BSON null
// unmarshals to None; anything else unmarshals to Some.
func (o *Option[T]) UnmarshalBSONValue(bType byte, raw []byte) error {
	if bson.Type(bType) == bson.TypeNull {
		o.val = nil
		return nil
	}

	valPtr := new(T)

	err := bson.UnmarshalValue(bson.Type(bType), raw, valPtr)
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", *o)
	}

	if isNil(*valPtr) {
		return errors.Errorf("refusing to store nil %T value", *o)
	}

	o.val = valPtr

	return nil
}

// IsZero implements bsoncodec.Zeroer, so omitempty treats None as
// absent.
func (o Option[T]) IsZero() bool {
	return o.IsNone()
}
