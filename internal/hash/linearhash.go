package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// LinearProbingHashAlgorithm - The bucket selection algorithm for Linear Probing. The home bucket is
// hash mod tableSize and the probe visits the following buckets one by one, wrapping at the end of the table.
type LinearProbingHashAlgorithm[K any] struct {
	hasher    hashfunc.Hasher[K]
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm[K any](hasher hashfunc.Hasher[K], tableSize int64) *LinearProbingHashAlgorithm[K] {
	ha := &LinearProbingHashAlgorithm[K]{hasher: hasher}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest higher prime number.
func (L *LinearProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	L.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(L.hasher.Hash(key, conf.PrimarySeed) % uint64(L.tableSize))
}

// HashFunc2 - Not used in linear probing, returns a dummy value
func (L *LinearProbingHashAlgorithm[K]) HashFunc2(key K) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm[K]) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm[K]) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return utils.AddMulMod(hf1Value, iteration, 1, L.tableSize)
}
