package hash

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
)

// NewHashAlgorithm - Returns the hash algorithm matching the collision resolution technique
func NewHashAlgorithm[K any](method crt.Method, hasher hashfunc.Hasher[K], tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm[K], err error) {
	switch method {
	case crt.SeparateChaining:
		hashAlgorithm = NewSeparateChainingHashAlgorithm(hasher, tableSize)
	case crt.LinearProbing:
		hashAlgorithm = NewLinearProbingHashAlgorithm(hasher, tableSize)
	case crt.QuadraticProbing:
		hashAlgorithm = NewQuadraticProbingHashAlgorithm(hasher, tableSize)
	case crt.DoubleHashing:
		hashAlgorithm = NewDoubleHashAlgorithm(hasher, tableSize)
	default:
		err = fmt.Errorf("no hash algorithm for collision resolution technique %s", method)
	}

	return
}
