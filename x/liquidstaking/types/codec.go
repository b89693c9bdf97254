package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue stores plain Go values in collections using their JSON encoding.
func JSONValue[T any](name string) collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{name: name}
}

type jsonValueCodec[T any] struct {
	name string
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", collcodec.ErrEncoding, c.name, err)
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", c.name, err)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string {
	return "liquidstaking/json/" + c.name
}
