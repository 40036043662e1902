//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Run("identifies primes and non primes", func(t *testing.T) {
		// Prepare
		primes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 97, 101, 7919}
		nonPrimes := []int64{-7, 0, 1, 4, 6, 9, 15, 25, 49, 100, 7917}

		// Execute & Check
		for _, p := range primes {
			assert.Truef(t, IsPrime(p), "%d is a prime", p)
		}
		for _, n := range nonPrimes {
			assert.Falsef(t, IsPrime(n), "%d is not a prime", n)
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("rounds up to nearest prime", func(t *testing.T) {
		// Prepare
		tests := map[int64]int64{-3: 2, 0: 2, 1: 2, 2: 2, 3: 3, 4: 5, 10: 11, 11: 11, 20: 23, 22: 23, 100: 101, 7908: 7919}

		for n, expected := range tests {
			// Execute
			p := NextPrime(n)

			// Check
			assert.Equalf(t, expected, p, "next prime of %d", n)
		}
	})
}

func TestAddMulMod(t *testing.T) {
	t.Run("matches plain arithmetic for small values", func(t *testing.T) {
		// Execute & Check
		assert.Equal(t, int64((3+4*5)%7), AddMulMod(3, 4, 5, 7), "small values")
		assert.Equal(t, int64(0), AddMulMod(0, 0, 0, 11), "zero values")
		assert.Equal(t, int64(10), AddMulMod(10, 11, 11, 11), "multiple of modulo")
	})

	t.Run("does not overflow for large values", func(t *testing.T) {
		// Prepare
		m := int64(1000000007)
		big := int64(math.MaxInt64)

		// Execute
		r := AddMulMod(5, big, big, m)

		// Check
		bm := big % m
		expected := (5 + (bm*bm)%m) % m
		assert.Equal(t, expected, r, "correct result without overflow")
		assert.GreaterOrEqual(t, r, int64(0), "not negative")
	})
}

func TestCeilDiv(t *testing.T) {
	t.Run("rounds quotient up", func(t *testing.T) {
		// Execute & Check
		assert.Equal(t, int64(8), CeilDiv(7, 0.9), "7 / 0.9 rounds up to 8")
		assert.Equal(t, int64(14), CeilDiv(7, 0.5), "7 / 0.5 is exactly 14")
		assert.Equal(t, int64(0), CeilDiv(0, 0.5), "zero stays zero")
	})
}
