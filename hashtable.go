package hashtable

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
	"github.com/gostonefire/hashtable/internal/storage/separatechaining"
	"github.com/gostonefire/hashtable/internal/utils"
	"golang.org/x/exp/rand"
	"io"
	"log/slog"
)

// Outcome - Result of a successful Insert
type Outcome int

// Inserted - The key was not present and a new entry was added
const Inserted Outcome = 0

// Updated - The key was present and its value was replaced
const Updated Outcome = 1

// String - Returns a display name for the outcome
func (O Outcome) String() string {
	if O == Updated {
		return "updated"
	}
	return "inserted"
}

// Entry - One live key/value pair as returned from iteration and export
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Conf - Is a struct to be passed in the call to New and contains configuration that affects table creation and
// processing. Zero values of the optional fields take defaults.
//   - InitialCapacity is the number of buckets to start with, it is rounded up to the nearest prime at or above MinCapacity. It must be higher than 0 (zero) and at most 1 << 30.
//   - MinCapacity is the smallest capacity the table will ever have, default 10, never lower than 3
//   - MaxLoadFactor is the load factor above which the table grows before an insert, default 0.7, bounded to [0.4, 0.95]
//   - MinLoadFactor is the load factor below which the table may shrink, default 0.3, bounded to [0.1, 0.5] and lower than MaxLoadFactor
//   - Method is the collision resolution technique, default crt.SeparateChaining
//   - Hasher is the 64-bit hash function keys are hashed with, default hashfunc.Default
//   - Logger receives debug traces and invariant violations, nil discards everything
//   - Seed seeds the random source used by LoadTestData
//   - ShrinkOnDelete makes Delete rehash to a smaller capacity when the load factor drops below MinLoadFactor
type Conf[K comparable] struct {
	InitialCapacity int64
	MinCapacity     int64
	MaxLoadFactor   float64
	MinLoadFactor   float64
	Method          crt.Method
	Hasher          hashfunc.Hasher[K]
	Logger          *slog.Logger
	Seed            uint64
	ShrinkOnDelete  bool
}

// Table - The main implementation struct. It owns exactly one store, either a separate chaining store or an open
// addressing store, and swaps it only when rehashing.
// A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	store          storage.Store[K, V]
	method         crt.Method
	hasher         hashfunc.Hasher[K]
	logger         *slog.Logger
	rnd            *rand.Rand
	minCapacity    int64
	maxLoadFactor  float64
	minLoadFactor  float64
	shrinkOnDelete bool
	stats          Stats
	generation     uint64
}

// New - Returns a new empty table.
//   - tableConf is a Conf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - table is a pointer to the created Table
//   - err is of type ConfigurationError if the configuration was rejected, or a standard error if the store could not be created
func New[K comparable, V any](tableConf Conf[K]) (table *Table[K, V], err error) {
	if tableConf.InitialCapacity <= 0 || tableConf.InitialCapacity > conf.MaxCapacity {
		err = newConfigurationError("initial capacity must be higher than 0 (zero) and at most %d", conf.MaxCapacity)
		return
	}

	minCapacity := tableConf.MinCapacity
	if minCapacity == 0 {
		minCapacity = conf.MinCapacity
	}
	if minCapacity < conf.AbsoluteMinCapacity || minCapacity > conf.MaxCapacity {
		err = newConfigurationError("minimum capacity must be at least %d and at most %d", conf.AbsoluteMinCapacity, conf.MaxCapacity)
		return
	}

	maxLoadFactor := tableConf.MaxLoadFactor
	if maxLoadFactor == 0 {
		maxLoadFactor = conf.MaxLoadFactor
	}
	minLoadFactor := tableConf.MinLoadFactor
	if minLoadFactor == 0 {
		minLoadFactor = conf.MinLoadFactor
	}
	if err = validateLoadFactors(maxLoadFactor, minLoadFactor); err != nil {
		return
	}

	if !tableConf.Method.IsValid() {
		err = newConfigurationError("unknown collision resolution technique %d", int(tableConf.Method))
		return
	}

	hasher := tableConf.Hasher
	if hasher == nil {
		hasher = hashfunc.Default[K]()
	}

	logger := tableConf.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	table = &Table[K, V]{
		method:         tableConf.Method,
		hasher:         hasher,
		logger:         logger,
		rnd:            rand.New(rand.NewSource(tableConf.Seed)),
		minCapacity:    minCapacity,
		maxLoadFactor:  maxLoadFactor,
		minLoadFactor:  minLoadFactor,
		shrinkOnDelete: tableConf.ShrinkOnDelete,
	}

	table.store, err = table.newStore(tableConf.Method, max(tableConf.InitialCapacity, minCapacity))
	if err != nil {
		table = nil
		return
	}

	return
}

// newStore - Returns an empty store for the given technique with at least the given number of buckets
func (T *Table[K, V]) newStore(method crt.Method, capacity int64) (store storage.Store[K, V], err error) {
	crtConf := model.CRTConf[K]{
		NumberOfBucketsNeeded:        utils.NextPrime(max(capacity, T.minCapacity)),
		CollisionResolutionTechnique: method,
		Hasher:                       T.hasher,
		Logger:                       T.logger,
	}

	if method == crt.SeparateChaining {
		var scStore *separatechaining.SCStore[K, V]
		scStore, err = separatechaining.NewSCStore[K, V](crtConf)
		if err != nil {
			return
		}
		store = scStore
		return
	}

	var oaStore *openaddressing.OAStore[K, V]
	oaStore, err = openaddressing.NewOAStore[K, V](crtConf)
	if err != nil {
		return
	}
	store = oaStore

	return
}

// validateLoadFactors - Checks load factor bounds and that min is lower than max
func validateLoadFactors(maxLoadFactor, minLoadFactor float64) (err error) {
	if maxLoadFactor < conf.MaxLoadFactorLower || maxLoadFactor > conf.MaxLoadFactorUpper {
		err = newConfigurationError("max load factor %v outside [%v, %v]",
			maxLoadFactor, conf.MaxLoadFactorLower, conf.MaxLoadFactorUpper)
		return
	}
	if minLoadFactor < conf.MinLoadFactorLower || minLoadFactor > conf.MinLoadFactorUpper {
		err = newConfigurationError("min load factor %v outside [%v, %v]",
			minLoadFactor, conf.MinLoadFactorLower, conf.MinLoadFactorUpper)
		return
	}
	if minLoadFactor >= maxLoadFactor {
		err = newConfigurationError("min load factor %v must be lower than max load factor %v", minLoadFactor, maxLoadFactor)
		return
	}

	return
}

// ConfigureLoadFactors - Sets new load factor thresholds. They take effect from the next insert or delete,
// no rehash happens immediately.
//
// It returns:
//   - err is of type ConfigurationError if a value is out of bounds or min is not lower than max, the table is then unchanged
func (T *Table[K, V]) ConfigureLoadFactors(maxLoadFactor, minLoadFactor float64) (err error) {
	if err = validateLoadFactors(maxLoadFactor, minLoadFactor); err != nil {
		return
	}

	T.maxLoadFactor = maxLoadFactor
	T.minLoadFactor = minLoadFactor

	return
}

// LoadFactors - Returns the current max and min load factors
func (T *Table[K, V]) LoadFactors() (maxLoadFactor, minLoadFactor float64) {
	return T.maxLoadFactor, T.minLoadFactor
}

// Method - Returns the collision resolution technique in use
func (T *Table[K, V]) Method() crt.Method {
	return T.method
}

// MethodName - Returns a display name of the collision resolution technique in use
func (T *Table[K, V]) MethodName() string {
	return T.method.String()
}

// Len - Returns the number of live entries
func (T *Table[K, V]) Len() int64 {
	return T.store.GetStorageParameters().NumberOfOccupiedRecords
}

// IsEmpty - Returns true if the table holds no live entries
func (T *Table[K, V]) IsEmpty() bool {
	return T.Len() == 0
}

// Capacity - Returns the number of buckets (chaining) or slots (open addressing), always a prime
func (T *Table[K, V]) Capacity() int64 {
	return T.store.GetStorageParameters().NumberOfBucketsAvailable
}

// LoadFactor - Returns live entries divided by capacity
func (T *Table[K, V]) LoadFactor() float64 {
	sp := T.store.GetStorageParameters()
	return float64(sp.NumberOfOccupiedRecords) / float64(sp.NumberOfBucketsAvailable)
}

// EffectiveLoadFactor - Returns live plus deleted entries divided by capacity. For separate chaining there are no
// deleted entries and it equals LoadFactor.
func (T *Table[K, V]) EffectiveLoadFactor() float64 {
	sp := T.store.GetStorageParameters()
	return float64(sp.NumberOfOccupiedRecords+sp.NumberOfDeletedRecords) / float64(sp.NumberOfBucketsAvailable)
}
