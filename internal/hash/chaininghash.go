package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// SeparateChainingHashAlgorithm - The bucket selection algorithm for Separate Chaining. It applies
// bucket = hash mod tableSize where tableSize is the nearest higher prime of the requested table size.
type SeparateChainingHashAlgorithm[K any] struct {
	hasher    hashfunc.Hasher[K]
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K any](hasher hashfunc.Hasher[K], tableSize int64) *SeparateChainingHashAlgorithm[K] {
	ha := &SeparateChainingHashAlgorithm[K]{hasher: hasher}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest higher prime number.
//   - tableSize is the number of buckets the table will address
func (S *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	S.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(S.hasher.Hash(key, conf.PrimarySeed) % uint64(S.tableSize))
}

// HashFunc2 - Not used in separate chaining, returns a dummy value
func (S *SeparateChainingHashAlgorithm[K]) HashFunc2(key K) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (S *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return S.tableSize
}

// ProbeIteration - Not used in separate chaining, the home bucket is final
func (S *SeparateChainingHashAlgorithm[K]) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return hf1Value
}
