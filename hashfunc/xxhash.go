package hashfunc

import (
	"encoding/binary"
	"fmt"
	"github.com/cespare/xxhash/v2"
	"math"
)

// String - Returns a Hasher for string keys based on seeded xxh64
func String() Hasher[string] {
	return HasherFunc[string](hashString)
}

// Bytes - Returns a Hasher for byte slice keys based on seeded xxh64
func Bytes() Hasher[[]byte] {
	return HasherFunc[[]byte](hashBytes)
}

// Int - Returns a Hasher for int keys, the key is hashed as its 8 byte little endian representation
func Int() Hasher[int] {
	return HasherFunc[int](func(key int, seed uint64) uint64 {
		return hashUint64(uint64(key), seed)
	})
}

// Default - Returns a Hasher for any comparable key type. Strings, booleans and numeric kinds are hashed on their
// binary representation, any other type is hashed on its Go-syntax representation.
func Default[K comparable]() Hasher[K] {
	return HasherFunc[K](func(key K, seed uint64) uint64 {
		switch k := any(key).(type) {
		case string:
			return hashString(k, seed)
		case int:
			return hashUint64(uint64(k), seed)
		case int8:
			return hashUint64(uint64(k), seed)
		case int16:
			return hashUint64(uint64(k), seed)
		case int32:
			return hashUint64(uint64(k), seed)
		case int64:
			return hashUint64(uint64(k), seed)
		case uint:
			return hashUint64(uint64(k), seed)
		case uint8:
			return hashUint64(uint64(k), seed)
		case uint16:
			return hashUint64(uint64(k), seed)
		case uint32:
			return hashUint64(uint64(k), seed)
		case uint64:
			return hashUint64(k, seed)
		case uintptr:
			return hashUint64(uint64(k), seed)
		case float32:
			if k == 0 {
				// -0 equals 0
				k = 0
			}
			return hashUint64(math.Float64bits(float64(k)), seed)
		case float64:
			if k == 0 {
				k = 0
			}
			return hashUint64(math.Float64bits(k), seed)
		case bool:
			if k {
				return hashUint64(1, seed)
			}
			return hashUint64(0, seed)
		}

		return hashString(fmt.Sprintf("%#v", key), seed)
	})
}

// hashString - xxh64 over the bytes of s
func hashString(s string, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64String(s)
	}

	d := xxhash.NewWithSeed(seed)
	_, _ = d.WriteString(s)
	return d.Sum64()
}

// hashBytes - xxh64 over b
func hashBytes(b []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(b)
	}

	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(b)
	return d.Sum64()
}

// hashUint64 - xxh64 over the little endian representation of v
func hashUint64(v uint64, seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return hashBytes(buf[:], seed)
}
