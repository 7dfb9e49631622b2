// Package encoding maps canonical URI strings to the fixed-size keys used
// by the storage layer.
package encoding

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// KeySize is the size of an encoded storage key in bytes (128-bit hash).
const KeySize = 16

// KeyEncoder derives storage keys from canonical URI strings using the
// 128-bit xxhash3 function.
type KeyEncoder struct{}

func NewKeyEncoder() *KeyEncoder {
	return &KeyEncoder{}
}

// Key computes the 128-bit xxhash3 key of a canonical URI string.
func (e *KeyEncoder) Key(canonical string) [KeySize]byte {
	hash := xxh3.Hash128([]byte(canonical))
	var key [KeySize]byte
	binary.BigEndian.PutUint64(key[0:8], hash.Hi)
	binary.BigEndian.PutUint64(key[8:16], hash.Lo)
	return key
}
