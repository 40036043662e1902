package hashtable

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/tkw1536/pkglib/iterator"
)

// Iterator - Is used to iterate over live entries one by one in ascending bucket (or slot) order, and in chain order
// within a bucket. Empty and deleted slots are never returned.
//
// The table must not be modified while iterating. If the table is rebuilt (rehash, method change, resize or
// clear) after the iterator was created, Next returns an error of type crt.ConcurrentModification.
// Once Next has returned such an error HasNext returns false, the iterator is then done.
type Iterator[K comparable, V any] struct {
	table      *Table[K, V]
	generation uint64
	bucketNo   int64
	records    []model.Record[K, V]
	cursor     int
	err        error
	failed     bool
}

// Iterator - Returns a new Iterator positioned at the first live entry
func (T *Table[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{
		table:      T,
		generation: T.generation,
	}
	it.advance()

	return it
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
// It also returns true if the table was rebuilt since the iterator was created, so that Next can report it,
// and false after Next has reported an error.
func (I *Iterator[K, V]) HasNext() bool {
	if I.failed {
		return false
	}
	if I.generation != I.table.generation || I.err != nil {
		return true
	}
	return I.cursor < len(I.records)
}

// Next - Returns entry.
// It returns:
//   - entry is a copy of the next live entry.
//   - err is of type crt.ConcurrentModification if the table was rebuilt, or of type crt.NoRecordFound if there are no more entries when calling this function.
func (I *Iterator[K, V]) Next() (entry Entry[K, V], err error) {
	if I.generation != I.table.generation {
		I.failed = true
		err = crt.ConcurrentModification{}
		return
	}
	if I.err != nil {
		I.failed = true
		err = I.err
		return
	}
	if I.cursor >= len(I.records) {
		err = crt.NoRecordFound{}
		return
	}

	record := I.records[I.cursor]
	entry = Entry[K, V]{Key: record.Key, Value: record.Value}

	I.cursor++
	I.advance()

	return
}

// advance - Moves forward bucket by bucket until positioned at a live record or past the last bucket
func (I *Iterator[K, V]) advance() {
	capacity := I.table.Capacity()

	for I.cursor >= len(I.records) && I.bucketNo < capacity {
		bucket, err := I.table.store.GetBucket(I.bucketNo)
		if err != nil {
			I.err = err
			return
		}

		I.records = bucket.Records
		I.cursor = 0
		I.bucketNo++
	}
}

// collect - Returns all live entries in iteration order
func (T *Table[K, V]) collect() (entries []Entry[K, V], err error) {
	entries = make([]Entry[K, V], 0, T.Len())

	var entry Entry[K, V]
	it := T.Iterator()
	for it.HasNext() {
		entry, err = it.Next()
		if err != nil {
			entries = nil
			return
		}
		entries = append(entries, entry)
	}

	return
}

// ExportEntries - Returns a copy of all live entries in iteration order. The returned slice is owned by the caller
// and stays valid whatever happens to the table later.
func (T *Table[K, V]) ExportEntries() (entries []Entry[K, V]) {
	entries, err := T.collect()
	if err != nil {
		T.logger.Error("export failed", "error", err)
	}

	return
}

// Entries - Returns a lazy iterator over a snapshot of all live entries in iteration order.
// The snapshot is taken when Entries is called, modifying the table afterwards does not affect the iterator.
func (T *Table[K, V]) Entries() iterator.Iterator[Entry[K, V]] {
	snapshot := T.ExportEntries()

	return iterator.New(func(sender iterator.Generator[Entry[K, V]]) {
		defer sender.Return()

		for _, entry := range snapshot {
			if sender.Yield(entry) {
				break
			}
		}
	})
}
