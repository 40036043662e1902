package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// DoubleHashAlgorithm - The bucket selection algorithm for Double Hashing. HashFunc1 gives the home bucket and
// HashFunc2 a probing step computed from a differently seeded hash of the same key.
type DoubleHashAlgorithm[K any] struct {
	hasher    hashfunc.Hasher[K]
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm[K any](hasher hashfunc.Hasher[K], tableSize int64) *DoubleHashAlgorithm[K] {
	ha := &DoubleHashAlgorithm[K]{hasher: hasher}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number (but never below 3), which
// allows the algorithm to iterate over the entirety of the tables buckets once and only once.
//   - tableSize is the number of buckets the table will address
func (D *DoubleHashAlgorithm[K]) SetTableSize(tableSize int64) {
	if tableSize < conf.AbsoluteMinCapacity {
		tableSize = conf.AbsoluteMinCapacity
	}
	D.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *DoubleHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(D.hasher.Hash(key, conf.PrimarySeed) % uint64(D.tableSize))
}

// HashFunc2 - Given key it generates a probing step between 1 and table size - 1, it is never 0
func (D *DoubleHashAlgorithm[K]) HashFunc2(key K) int64 {
	return 1 + int64(D.hasher.Hash(key, conf.SecondarySeed)%uint64(D.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm[K]) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns (hf1Value + iteration*hf2Value) mod table size
func (D *DoubleHashAlgorithm[K]) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return utils.AddMulMod(hf1Value, iteration, hf2Value, D.tableSize)
}
