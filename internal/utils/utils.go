package utils

import "math/bits"

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime number greater than or equal to n
func NextPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// AddMulMod - Returns (a + b*c) mod m without overflowing, b*c is computed in 128 bits.
// All arguments must be non-negative and m must be positive.
func AddMulMod(a, b, c, m int64) int64 {
	hi, lo := bits.Mul64(uint64(b), uint64(c))
	bc := bits.Rem64(hi, lo, uint64(m))

	return int64((uint64(a)%uint64(m) + bc) % uint64(m))
}

// CeilDiv - Returns the smallest integer n such that n >= x / y for a positive y
func CeilDiv(x float64, y float64) int64 {
	n := int64(x / y)
	if float64(n)*y < x {
		n++
	}

	return n
}
