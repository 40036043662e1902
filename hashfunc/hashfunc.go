package hashfunc

// Hasher - Interface for the 64-bit hash capability a table is built on. The table never mixes bits itself,
// it only consumes the values returned from Hash.
type Hasher[K any] interface {
	// Hash - Returns a 64-bit hash for key. Different seeds must give independent hash values for the same key,
	// the Double Hashing technique relies on that for its probing step.
	Hash(key K, seed uint64) uint64
}

// HasherFunc - Adapter to allow the use of an ordinary function as a Hasher
type HasherFunc[K any] func(key K, seed uint64) uint64

// Hash - Calls H(key, seed)
func (H HasherFunc[K]) Hash(key K, seed uint64) uint64 {
	return H(key, seed)
}

// HashAlgorithm - Interface that lets the table select home buckets and walk probe sequences independently of
// the collision resolution technique in use.
type HashAlgorithm[K any] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new table and on every rehash. Implementations may round the size,
	// the table always asks GetTableSize for the size actually in use.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	HashFunc1(key K) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from
	// HashFunc1 in a call to ProbeIteration. The function is only used for the Double Hashing technique and must
	// never return 0 for it.
	HashFunc2(key K) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns the bucket to visit in the given iteration given values from HashFunc1 and HashFunc2.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
	// rather than the key as input. Iteration 0 always returns hf1Value.
	// The function is not used for the Separate Chaining technique.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
