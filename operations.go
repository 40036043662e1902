package hashtable

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/storage"
	"github.com/gostonefire/hashtable/internal/utils"
)

// rehashAttempts - Number of times a rehash doubles its capacity if replaying entries finds no free slot
const rehashAttempts int = 3

// Insert - Updates an existing entry with a new value or adds it if no existing is found with same key.
// If the load factor (effective load factor for open addressing) is above the max load factor the table grows
// before the entry is added.
//   - key is the identifier of an entry
//   - value is the value to store along with its key
//
// It returns:
//   - outcome is Inserted if a new entry was added, Updated if an existing entry got a new value
//   - err is a standard error, if something went wrong. The table is left as it was before the call.
func (T *Table[K, V]) Insert(key K, value V) (outcome Outcome, err error) {
	if T.needsGrowth() {
		if err = T.rehash(T.Capacity()*conf.GrowthFactor, T.method, "grow"); err != nil {
			err = fmt.Errorf("error while growing table before insert: %w", err)
			return
		}
	}

	outcome, err = T.insert(key, value)
	if errors.Is(err, crt.TableFull{}) {
		// Quadratic probing may see only half of the slots
		T.logger.Error("insert found no free slot, forcing rehash",
			"technique", T.method.String(),
			"capacity", T.Capacity(),
			"len", T.Len(),
		)
		if err = T.rehash(T.Capacity()*conf.GrowthFactor, T.method, "table full"); err != nil {
			err = fmt.Errorf("error while growing full table: %w", err)
			return
		}
		outcome, err = T.insert(key, value)
	}
	if err != nil {
		err = fmt.Errorf("error while inserting record: %w", err)
		return
	}

	return
}

// Search - Returns the value stored for key.
//
// It returns:
//   - value is the value of the matching entry, the zero value if not found
//   - found is false if there is no entry with the given key
func (T *Table[K, V]) Search(key K) (value V, found bool) {
	T.stats.Searches++

	record, err := T.store.Get(key)
	if err != nil {
		if !errors.Is(err, crt.NoRecordFound{}) {
			T.logger.Error("search failed", "error", err)
		}
		return
	}

	value = record.Value
	found = true

	return
}

// Contains - Returns true if there is an entry with the given key
func (T *Table[K, V]) Contains(key K) bool {
	_, found := T.Search(key)
	return found
}

// Delete - Removes the entry with the given key. For open addressing techniques the slot is left as a deleted
// record that later probes step over. If ShrinkOnDelete was configured and the load factor drops below the
// min load factor, the table shrinks.
//
// It returns:
//   - deleted is false if there was no entry with the given key
func (T *Table[K, V]) Delete(key K) (deleted bool) {
	_, err := T.store.Delete(key)
	if err != nil {
		if !errors.Is(err, crt.NoRecordFound{}) {
			T.logger.Error("delete failed", "error", err)
		}
		return
	}

	deleted = true
	T.stats.Deletions++

	if T.shrinkOnDelete {
		T.shrink()
	}

	return
}

// Clear - Removes all entries, keeping the current capacity and technique, and zeroes all statistics counters
func (T *Table[K, V]) Clear() {
	T.store.Clear()
	T.stats = Stats{}
	T.generation++
}

// ChangeMethod - Moves all live entries to a new store using the given collision resolution technique.
// The current capacity is kept unless the live entries need more.
//
// It returns:
//   - err is of type ConfigurationError if the technique is unknown, or a standard error if the rebuild failed. The table is unchanged on error.
func (T *Table[K, V]) ChangeMethod(method crt.Method) (err error) {
	if !method.IsValid() {
		err = newConfigurationError("unknown collision resolution technique %d", int(method))
		return
	}

	from := T.method
	if err = T.rehash(T.Capacity(), method, "change method"); err != nil {
		err = fmt.Errorf("error while changing collision resolution technique: %w", err)
		return
	}

	T.logger.Debug("changed collision resolution technique", "from", from.String(), "to", method.String())

	return
}

// Resize - Rebuilds the table at the nearest prime capacity at or above the given one. The capacity in use is never
// below the minimum capacity nor below what the live entries need to stay under the max load factor.
//
// It returns:
//   - err is of type ConfigurationError if capacity is not positive or above the max capacity, or a standard error if the rebuild failed
func (T *Table[K, V]) Resize(capacity int64) (err error) {
	if capacity <= 0 || capacity > conf.MaxCapacity {
		err = newConfigurationError("capacity must be higher than 0 (zero) and at most %d", conf.MaxCapacity)
		return
	}

	if err = T.rehash(capacity, T.method, "resize"); err != nil {
		err = fmt.Errorf("error while resizing table: %w", err)
		return
	}

	return
}

// insert - Sets the entry in the store without checking thresholds, keeping statistics
func (T *Table[K, V]) insert(key K, value V) (outcome Outcome, err error) {
	result, err := T.store.Set(key, value)
	if err != nil {
		return
	}

	T.stats.Collisions += result.Collisions
	if result.Updated {
		outcome = Updated
		return
	}

	T.stats.Insertions++
	outcome = Inserted

	return
}

// needsGrowth - Returns true if the table has to grow before another entry can be inserted
func (T *Table[K, V]) needsGrowth() bool {
	if T.method.IsOpenAddressing() {
		return T.EffectiveLoadFactor() > T.maxLoadFactor
	}
	return T.LoadFactor() > T.maxLoadFactor
}

// targetCapacity - Returns the nearest prime at or above the requested capacity, the minimum capacity and what
// live entries need to stay at or under the max load factor
func (T *Table[K, V]) targetCapacity(requested int64, live int64) int64 {
	needed := utils.CeilDiv(float64(live), T.maxLoadFactor) + 1
	return utils.NextPrime(max(requested, T.minCapacity, needed))
}

// shrink - Halves the capacity if the load factor is below the min load factor and the table is above its minimum
func (T *Table[K, V]) shrink() {
	if T.LoadFactor() >= T.minLoadFactor {
		return
	}

	capacity := T.Capacity()
	if T.targetCapacity(capacity/conf.GrowthFactor, T.Len()) >= capacity {
		return
	}

	if err := T.rehash(capacity/conf.GrowthFactor, T.method, "shrink"); err != nil {
		T.logger.Error("shrink failed, keeping current capacity", "error", err)
	}
}

// rehash - Collects all live entries, replays them into a new store of the given technique and swaps the new store
// in. Deleted records are dropped. The current store is left untouched if anything goes wrong.
func (T *Table[K, V]) rehash(requested int64, method crt.Method, reason string) (err error) {
	entries, err := T.collect()
	if err != nil {
		return
	}

	fromCapacity := T.Capacity()
	capacity := T.targetCapacity(requested, int64(len(entries)))

	var store storage.Store[K, V]
	for attempt := 1; ; attempt++ {
		store, err = T.replay(method, capacity, entries)
		if err == nil {
			break
		}
		if !errors.Is(err, crt.TableFull{}) || attempt == rehashAttempts {
			return
		}
		capacity = utils.NextPrime(capacity * conf.GrowthFactor)
	}

	T.store = store
	T.method = method
	T.stats.Rehashes++
	T.generation++

	T.logger.Debug("rehashed table",
		"reason", reason,
		"technique", method.String(),
		"from", fromCapacity,
		"to", T.Capacity(),
		"entries", len(entries),
	)

	return
}

// replay - Returns a new store holding all given entries
func (T *Table[K, V]) replay(method crt.Method, capacity int64, entries []Entry[K, V]) (store storage.Store[K, V], err error) {
	store, err = T.newStore(method, capacity)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if _, err = store.Set(entry.Key, entry.Value); err != nil {
			store = nil
			return
		}
	}

	return
}
