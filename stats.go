package hashtable

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"strings"
)

// Stats - Operation counters since the table was created or last cleared
//   - Insertions is the number of new entries added by Insert
//   - Searches is the number of calls to Search, found or not
//   - Deletions is the number of entries removed by Delete
//   - Collisions is the number of occupied or deleted slots stepped over (open addressing) or inserts into non empty buckets (separate chaining)
//   - Rehashes is the number of times the store was rebuilt
type Stats struct {
	Insertions int64
	Searches   int64
	Deletions  int64
	Collisions int64
	Rehashes   int64
}

// String - Returns the counters in human readable form
func (S Stats) String() string {
	return fmt.Sprintf("insertions: %s, searches: %s, deletions: %s, collisions: %s, rehashes: %s",
		humanize.Comma(S.Insertions),
		humanize.Comma(S.Searches),
		humanize.Comma(S.Deletions),
		humanize.Comma(S.Collisions),
		humanize.Comma(S.Rehashes),
	)
}

// Stats - Returns a copy of the operation counters
func (T *Table[K, V]) Stats() Stats {
	return T.stats
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Method is the collision resolution technique in use
//   - Records is the number of live entries
//   - DeletedRecords is the number of deleted slots still taking part in probing (open addressing only)
//   - Capacity is the number of buckets or slots
//   - LoadFactor is Records divided by Capacity
//   - EffectiveLoadFactor is Records plus DeletedRecords divided by Capacity
//   - EmptyBuckets is the number of buckets (or slots) holding no live entry
//   - LongestRun is the longest chain (separate chaining) or the longest run of consecutive non empty slots (open addressing)
//   - BucketDistribution is the number of live entries in each bucket, nil unless asked for
type TableStat struct {
	Method              crt.Method
	Records             int64
	DeletedRecords      int64
	Capacity            int64
	LoadFactor          float64
	EffectiveLoadFactor float64
	EmptyBuckets        int64
	LongestRun          int64
	BucketDistribution  []int64
}

// String - Returns the statistics in human readable form, the distribution is left out
func (S TableStat) String() string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "technique: %s\n", S.Method)
	_, _ = fmt.Fprintf(&sb, "records: %s\n", humanize.Comma(S.Records))
	_, _ = fmt.Fprintf(&sb, "deleted records: %s\n", humanize.Comma(S.DeletedRecords))
	_, _ = fmt.Fprintf(&sb, "capacity: %s\n", humanize.Comma(S.Capacity))
	_, _ = fmt.Fprintf(&sb, "load factor: %s\n", humanize.FtoaWithDigits(S.LoadFactor, 4))
	_, _ = fmt.Fprintf(&sb, "effective load factor: %s\n", humanize.FtoaWithDigits(S.EffectiveLoadFactor, 4))
	_, _ = fmt.Fprintf(&sb, "empty buckets: %s\n", humanize.Comma(S.EmptyBuckets))
	_, _ = fmt.Fprintf(&sb, "longest run: %s", humanize.Comma(S.LongestRun))

	return sb.String()
}

// slotStater - Implemented by stores that can tell empty slots from deleted ones
type slotStater interface {
	GetSlotState(bucketNo int64) (state uint8, err error)
}

// Stat - Walks through the entire set of buckets and produces a TableStat struct with information.
// The TableStat.BucketDistribution slice can be memory heavy for big tables (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set TableStat.BucketDistribution to nil.
func (T *Table[K, V]) Stat(includeDistribution bool) (tableStat TableStat, err error) {
	sp := T.store.GetStorageParameters()

	tableStat = TableStat{
		Method:              T.method,
		Records:             sp.NumberOfOccupiedRecords,
		DeletedRecords:      sp.NumberOfDeletedRecords,
		Capacity:            sp.NumberOfBucketsAvailable,
		LoadFactor:          T.LoadFactor(),
		EffectiveLoadFactor: T.EffectiveLoadFactor(),
	}

	if includeDistribution {
		tableStat.BucketDistribution = make([]int64, sp.NumberOfBucketsAvailable)
	}

	stater, hasSlotState := T.store.(slotStater)

	var bucket model.Bucket[K, V]
	var state uint8
	var run int64
	for i := int64(0); i < sp.NumberOfBucketsAvailable; i++ {
		bucket, err = T.store.GetBucket(i)
		if err != nil {
			return
		}

		n := int64(len(bucket.Records))
		if n == 0 {
			tableStat.EmptyBuckets++
		}
		if includeDistribution {
			tableStat.BucketDistribution[i] = n
		}

		if !hasSlotState {
			tableStat.LongestRun = max(tableStat.LongestRun, n)
			continue
		}

		state, err = stater.GetSlotState(i)
		if err != nil {
			return
		}
		if state == model.RecordEmpty {
			run = 0
			continue
		}
		run++
		tableStat.LongestRun = max(tableStat.LongestRun, run)
	}

	return
}
