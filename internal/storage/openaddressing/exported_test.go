//go:build unit

package openaddressing

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

type TestCaseOAStore struct {
	crtName string
	buckets int64
	crt     crt.Method
}

var allOpenAddressing = []TestCaseOAStore{
	{crtName: "LinearProbing", buckets: 10, crt: crt.LinearProbing},
	{crtName: "QuadraticProbing", buckets: 10, crt: crt.QuadraticProbing},
	{crtName: "DoubleHashing", buckets: 10, crt: crt.DoubleHashing},
}

// modulo - Hasher making int keys that are equal modulo the table size collide
var modulo = hashfunc.HasherFunc[int](func(key int, seed uint64) uint64 { return uint64(key) + seed })

func newTestStore(t *testing.T, test TestCaseOAStore, hasher hashfunc.Hasher[int]) *OAStore[int, string] {
	oaStore, err := NewOAStore[int, string](model.CRTConf[int]{
		NumberOfBucketsNeeded:        test.buckets,
		CollisionResolutionTechnique: test.crt,
		Hasher:                       hasher,
		Logger:                       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err, "create new OAStore instance")

	return oaStore
}

func TestNewOAStore(t *testing.T) {
	t.Run("creates OAStore instances for all CRTs", func(t *testing.T) {
		for _, test := range allOpenAddressing {
			t.Run(fmt.Sprintf("creates a new OAStore instance for %s", test.crtName), func(t *testing.T) {
				// Execute
				oaStore := newTestStore(t, test, hashfunc.Int())

				// Check
				sp := oaStore.GetStorageParameters()
				assert.Equal(t, test.crt, sp.CollisionResolutionTechnique, "correct crt")
				assert.Equal(t, test.buckets, sp.NumberOfBucketsNeeded, "buckets needed preserved")
				assert.Equal(t, int64(11), sp.NumberOfBucketsAvailable, "buckets rounded to prime")
				assert.Equal(t, int64(11), oaStore.nEmpty, "all slots empty")
				assert.NotNil(t, oaStore.hashAlgorithm, "hash algorithm is assigned")
			})
		}
	})

	t.Run("fails on separate chaining", func(t *testing.T) {
		// Execute
		_, err := NewOAStore[int, string](model.CRTConf[int]{
			NumberOfBucketsNeeded:        10,
			CollisionResolutionTechnique: crt.SeparateChaining,
			Hasher:                       hashfunc.Int(),
		})

		// Check
		assert.Error(t, err, "separate chaining is not open addressing")
	})
}

func TestOAStore_Set(t *testing.T) {
	t.Run("sets and updates records for all CRTs", func(t *testing.T) {
		for _, test := range allOpenAddressing {
			t.Run(fmt.Sprintf("sets records for %s", test.crtName), func(t *testing.T) {
				// Prepare
				oaStore := newTestStore(t, test, modulo)

				// Execute
				r1, err1 := oaStore.Set(3, "three")
				r2, err2 := oaStore.Set(14, "fourteen")
				r3, err3 := oaStore.Set(3, "tres")

				// Check
				assert.NoError(t, err1, "sets first record")
				assert.NoError(t, err2, "sets colliding record")
				assert.NoError(t, err3, "updates first record")
				assert.False(t, r1.Updated, "first is new")
				assert.Equal(t, int64(0), r1.Collisions, "no collision")
				assert.False(t, r2.Updated, "second is new")
				assert.Equal(t, int64(1), r2.Collisions, "one collision on home slot")
				assert.True(t, r3.Updated, "third updates")

				record, err := oaStore.Get(3)
				assert.NoError(t, err, "gets record")
				assert.Equal(t, "tres", record.Value, "value updated")
				assert.Equal(t, int64(3), record.BucketNo, "stored in home slot")

				sp := oaStore.GetStorageParameters()
				assert.Equal(t, int64(2), sp.NumberOfOccupiedRecords, "two occupied")
				assert.Equal(t, int64(9), oaStore.nEmpty, "nine empty")
			})
		}
	})

	t.Run("fills every slot for linear probing and double hashing", func(t *testing.T) {
		for _, test := range []TestCaseOAStore{allOpenAddressing[0], allOpenAddressing[2]} {
			t.Run(fmt.Sprintf("fills table for %s", test.crtName), func(t *testing.T) {
				// Prepare
				oaStore := newTestStore(t, test, hashfunc.Int())

				// Execute
				for i := 0; i < 11; i++ {
					_, err := oaStore.Set(i, fmt.Sprintf("%d", i))
					assert.NoErrorf(t, err, "sets record %d", i)
				}
				_, err := oaStore.Set(11, "one too many")

				// Check
				assert.True(t, errors.Is(err, crt.TableFull{}), "table full")
				assert.Equal(t, int64(0), oaStore.nEmpty, "no empty slots")
			})
		}
	})
}

func TestOAStore_Delete(t *testing.T) {
	t.Run("deleted records keep probe chains intact for all CRTs", func(t *testing.T) {
		for _, test := range allOpenAddressing {
			t.Run(fmt.Sprintf("deletes in middle of probe chain for %s", test.crtName), func(t *testing.T) {
				// Prepare
				oaStore := newTestStore(t, test, modulo)
				for _, key := range []int{2, 13, 24} {
					_, err := oaStore.Set(key, fmt.Sprintf("%d", key))
					require.NoError(t, err, "sets record")
				}

				// Execute
				record, err := oaStore.Delete(13)

				// Check
				assert.NoError(t, err, "deletes record")
				assert.Equal(t, "13", record.Value, "returns deleted record")

				state, err := oaStore.GetSlotState(record.BucketNo)
				assert.NoError(t, err, "gets slot state")
				assert.Equal(t, model.RecordDeleted, state, "slot is a tombstone")

				for _, key := range []int{2, 24} {
					found, err := oaStore.Get(key)
					assert.NoErrorf(t, err, "finds key %d past tombstone", key)
					assert.Equal(t, fmt.Sprintf("%d", key), found.Value, "correct value")
				}

				_, err = oaStore.Get(13)
				assert.True(t, errors.Is(err, crt.NoRecordFound{}), "deleted key not found")

				sp := oaStore.GetStorageParameters()
				assert.Equal(t, int64(2), sp.NumberOfOccupiedRecords, "two occupied")
				assert.Equal(t, int64(1), sp.NumberOfDeletedRecords, "one deleted")
			})
		}
	})

	t.Run("set reuses first tombstone without duplicating key", func(t *testing.T) {
		for _, test := range allOpenAddressing {
			t.Run(fmt.Sprintf("reuses tombstone for %s", test.crtName), func(t *testing.T) {
				// Prepare
				oaStore := newTestStore(t, test, modulo)
				for _, key := range []int{2, 13, 24} {
					_, err := oaStore.Set(key, fmt.Sprintf("%d", key))
					require.NoError(t, err, "sets record")
				}
				deleted, err := oaStore.Delete(2)
				require.NoError(t, err, "deletes home record")

				// Execute
				result, err := oaStore.Set(24, "updated")

				// Check
				assert.NoError(t, err, "updates record past tombstone")
				assert.True(t, result.Updated, "existing record updated, not duplicated")

				result, err = oaStore.Set(35, "thirty-five")
				assert.NoError(t, err, "sets new record")
				assert.True(t, result.ReusedDeleted, "tombstone reused")

				record, err := oaStore.Get(35)
				assert.NoError(t, err, "gets new record")
				assert.Equal(t, deleted.BucketNo, record.BucketNo, "placed in first tombstone")

				sp := oaStore.GetStorageParameters()
				assert.Equal(t, int64(3), sp.NumberOfOccupiedRecords, "three occupied")
				assert.Equal(t, int64(0), sp.NumberOfDeletedRecords, "no tombstones")
			})
		}
	})
}

func TestOAStore_GetBucket(t *testing.T) {
	t.Run("returns only occupied slots as records", func(t *testing.T) {
		// Prepare
		oaStore := newTestStore(t, allOpenAddressing[0], modulo)
		_, _ = oaStore.Set(1, "one")
		_, _ = oaStore.Set(2, "two")
		_, _ = oaStore.Delete(2)

		// Execute
		b1, err1 := oaStore.GetBucket(1)
		b2, err2 := oaStore.GetBucket(2)
		b3, err3 := oaStore.GetBucket(3)

		// Check
		assert.NoError(t, err1, "gets bucket 1")
		assert.NoError(t, err2, "gets bucket 2")
		assert.NoError(t, err3, "gets bucket 3")
		assert.Len(t, b1.Records, 1, "occupied slot has one record")
		assert.Len(t, b2.Records, 0, "deleted slot has no records")
		assert.Len(t, b3.Records, 0, "empty slot has no records")
	})
}

func TestOAStore_Clear(t *testing.T) {
	t.Run("resets all slots", func(t *testing.T) {
		// Prepare
		oaStore := newTestStore(t, allOpenAddressing[2], modulo)
		_, _ = oaStore.Set(1, "one")
		_, _ = oaStore.Set(2, "two")
		_, _ = oaStore.Delete(2)

		// Execute
		oaStore.Clear()

		// Check
		sp := oaStore.GetStorageParameters()
		assert.Equal(t, int64(0), sp.NumberOfOccupiedRecords, "no occupied")
		assert.Equal(t, int64(0), sp.NumberOfDeletedRecords, "no deleted")
		assert.Equal(t, sp.NumberOfBucketsAvailable, oaStore.nEmpty, "all empty")
	})
}
