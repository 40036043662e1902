//go:build unit

package hash

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size rounded to prime", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[int](identity, 4)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(5), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number for any key", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[string](hashfunc.String(), 100)
		tableSize := h.GetTableSize()

		for _, key := range []string{"", "a", "hola", "mundo", "adios", "a much longer key than the others"} {
			// Execute
			bucketNo := h.HashFunc1(key)

			// Check
			assert.GreaterOrEqualf(t, bucketNo, int64(0), "bucket not negative for %q", key)
			assert.Lessf(t, bucketNo, tableSize, "bucket less than table size for %q", key)
		}
	})
}

func TestLinearProbingHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm[int](identity, 16)
		tableSize := h.GetTableSize()
		assert.Equal(t, int64(17), tableSize, "correct tableSize value")

		bucketNo := h.HashFunc1(12345)

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(bucketNo, 0, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in bucket #%d", i)
		}
		assert.Equal(t, bucketNo, h.ProbeIteration(bucketNo, 0, 0), "first probe is home bucket")
	})
}
