package lib

import (
	"github.com/oarkflow/msgpack"
)

// Serialize encodes the given value into MessagePack bytes.
func Serialize[T any](value T) ([]byte, error) {
	return msgpack.Marshal(value)
}

// Deserialize decodes the given MessagePack bytes into a value.
func Deserialize[T any](data []byte) (T, error) {
	var value T
	err := msgpack.Unmarshal(data, &value)
	return value, err
}
