//go:build unit

package separatechaining

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"testing"
)

// sameBucket - Hasher sending every key to bucket 0 so that all records end up in one chain
var sameBucket = hashfunc.HasherFunc[int](func(key int, seed uint64) uint64 { return 0 })

func newTestStore(t *testing.T, buckets int64, hasher hashfunc.Hasher[int]) *SCStore[int, string] {
	scStore, err := NewSCStore[int, string](model.CRTConf[int]{
		NumberOfBucketsNeeded:        buckets,
		CollisionResolutionTechnique: crt.SeparateChaining,
		Hasher:                       hasher,
		Logger:                       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err, "create new SCStore instance")

	return scStore
}

func TestNewSCStore(t *testing.T) {
	t.Run("creates a new SCStore instance", func(t *testing.T) {
		// Execute
		scStore := newTestStore(t, 10, hashfunc.Int())

		// Check
		sp := scStore.GetStorageParameters()
		assert.Equal(t, crt.SeparateChaining, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(10), sp.NumberOfBucketsNeeded, "buckets needed preserved")
		assert.Equal(t, int64(11), sp.NumberOfBucketsAvailable, "buckets rounded to prime")
		assert.Equal(t, int64(0), sp.NumberOfOccupiedRecords, "no records")
		assert.Len(t, scStore.buckets, 11, "bucket array allocated")
	})

	t.Run("fails on zero buckets", func(t *testing.T) {
		// Execute
		_, err := NewSCStore[int, string](model.CRTConf[int]{NumberOfBucketsNeeded: 0, Hasher: hashfunc.Int()})

		// Check
		assert.Error(t, err, "zero buckets not allowed")
	})
}

func TestSCStore_Set(t *testing.T) {
	t.Run("adds and updates records in a chain", func(t *testing.T) {
		// Prepare
		scStore := newTestStore(t, 10, sameBucket)

		// Execute
		r1, err1 := scStore.Set(1, "one")
		r2, err2 := scStore.Set(2, "two")
		r3, err3 := scStore.Set(1, "uno")

		// Check
		assert.NoError(t, err1, "sets first record")
		assert.NoError(t, err2, "sets second record")
		assert.NoError(t, err3, "updates first record")
		assert.False(t, r1.Updated, "first is new")
		assert.Equal(t, int64(0), r1.Collisions, "no collision in empty bucket")
		assert.False(t, r2.Updated, "second is new")
		assert.Equal(t, int64(1), r2.Collisions, "collision in non empty bucket")
		assert.True(t, r3.Updated, "third updates")
		assert.Equal(t, int64(2), scStore.GetStorageParameters().NumberOfOccupiedRecords, "two records")

		bucket, err := scStore.GetBucket(0)
		assert.NoError(t, err, "gets bucket")
		require.Len(t, bucket.Records, 2, "two records in chain")
		assert.Equal(t, 1, bucket.Records[0].Key, "chain order preserved")
		assert.Equal(t, "uno", bucket.Records[0].Value, "value updated")
		assert.Equal(t, 2, bucket.Records[1].Key, "appended at end")
	})
}

func TestSCStore_Get(t *testing.T) {
	t.Run("gets records and reports missing keys", func(t *testing.T) {
		// Prepare
		scStore := newTestStore(t, 100, hashfunc.Int())
		for i := 0; i < 50; i++ {
			_, err := scStore.Set(i, fmt.Sprintf("value-%d", i))
			require.NoError(t, err, "sets record")
		}

		// Execute & Check
		for i := 0; i < 50; i++ {
			record, err := scStore.Get(i)
			assert.NoErrorf(t, err, "finds key %d", i)
			assert.Equalf(t, fmt.Sprintf("value-%d", i), record.Value, "correct value for key %d", i)
			assert.Equal(t, model.RecordOccupied, record.State, "record is occupied")
		}

		_, err := scStore.Get(1000)
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "missing key gives NoRecordFound")
	})
}

func TestSCStore_Delete(t *testing.T) {
	t.Run("unlinks head, middle and tail of a chain", func(t *testing.T) {
		// Prepare
		scStore := newTestStore(t, 10, sameBucket)
		for i := 1; i <= 5; i++ {
			_, err := scStore.Set(i, fmt.Sprintf("%d", i))
			require.NoError(t, err, "sets record")
		}

		// Execute
		_, errHead := scStore.Delete(1)
		_, errMiddle := scStore.Delete(3)
		record, errTail := scStore.Delete(5)
		_, errMissing := scStore.Delete(3)

		// Check
		assert.NoError(t, errHead, "deletes head")
		assert.NoError(t, errMiddle, "deletes middle")
		assert.NoError(t, errTail, "deletes tail")
		assert.Equal(t, "5", record.Value, "returns deleted record")
		assert.True(t, errors.Is(errMissing, crt.NoRecordFound{}), "second delete finds nothing")

		bucket, err := scStore.GetBucket(0)
		assert.NoError(t, err, "gets bucket")
		require.Len(t, bucket.Records, 2, "two records left")
		assert.Equal(t, 2, bucket.Records[0].Key, "record 2 left")
		assert.Equal(t, 4, bucket.Records[1].Key, "record 4 left")
		assert.Equal(t, int64(2), scStore.GetStorageParameters().NumberOfOccupiedRecords, "two records")
	})
}

func TestSCStore_Clear(t *testing.T) {
	t.Run("clears all records", func(t *testing.T) {
		// Prepare
		scStore := newTestStore(t, 10, hashfunc.Int())
		_, _ = scStore.Set(1, "one")
		_, _ = scStore.Set(2, "two")

		// Execute
		scStore.Clear()

		// Check
		_, err := scStore.Get(1)
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "record is gone")
		assert.Equal(t, int64(0), scStore.GetStorageParameters().NumberOfOccupiedRecords, "no records")
		assert.Equal(t, int64(11), scStore.GetStorageParameters().NumberOfBucketsAvailable, "capacity kept")
	})
}

func TestSCStore_GetBucket(t *testing.T) {
	t.Run("fails outside bucket range", func(t *testing.T) {
		// Prepare
		scStore := newTestStore(t, 10, hashfunc.Int())

		// Execute
		_, errLow := scStore.GetBucket(-1)
		_, errHigh := scStore.GetBucket(11)

		// Check
		assert.Error(t, errLow, "negative bucket")
		assert.Error(t, errHigh, "bucket beyond table")
	})
}
