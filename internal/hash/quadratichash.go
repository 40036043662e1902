package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// QuadraticProbingHashAlgorithm - The bucket selection algorithm for Quadratic Probing. The home bucket is
// hash mod tableSize and iteration i visits (home + i*i) mod tableSize.
//
// With a prime table size the first (tableSize+1)/2 iterations visit distinct buckets, after that the
// sequence repeats buckets already seen.
type QuadraticProbingHashAlgorithm[K any] struct {
	hasher    hashfunc.Hasher[K]
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm[K any](hasher hashfunc.Hasher[K], tableSize int64) *QuadraticProbingHashAlgorithm[K] {
	ha := &QuadraticProbingHashAlgorithm[K]{hasher: hasher}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest higher prime number.
func (Q *QuadraticProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	Q.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(Q.hasher.Hash(key, conf.PrimarySeed) % uint64(Q.tableSize))
}

// HashFunc2 - Not used in quadratic probing, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm[K]) HashFunc2(key K) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm[K]) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm[K]) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return utils.AddMulMod(hf1Value, iteration, iteration, Q.tableSize)
}
