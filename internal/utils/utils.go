package utils

// IsPrime - Returns true if n is a prime number.
// Multiples of 2 and 3 are dealt with up front, the remaining candidates are trial
// divided by 6k-1/6k+1 pairs up to the square root of n.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Selects a hash table capacity given an expected number of elements.
// The expectation is scaled by 1.5 to keep the load factor down, rounded up to odd and then
// advanced in steps of 2 until prime. Anything at or below 2 yields the minimum viable capacity 2.
func NextPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}

	n = int64(float64(n) * 1.5)
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}

	return n
}
