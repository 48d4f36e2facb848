//go:build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	t.Run("identifies primes and composites", func(t *testing.T) {
		// Prepare
		primes := []int64{2, 3, 5, 7, 11, 13, 17, 151, 1511, 7919}
		composites := []int64{0, 1, 4, 6, 9, 15, 21, 25, 49, 121, 1501, 1507}

		// Execute and Check
		for _, n := range primes {
			assert.True(t, IsPrime(n), "prime %d", n)
		}
		for _, n := range composites {
			assert.False(t, IsPrime(n), "composite %d", n)
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("returns the minimum viable capacity for degenerate inputs", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, int64(2), NextPrime(0), "zero clamps to 2")
		assert.Equal(t, int64(2), NextPrime(1), "one clamps to 2")
		assert.Equal(t, int64(2), NextPrime(2), "two stays at 2")
	})

	t.Run("returns known capacities", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, int64(5), NextPrime(3), "3 scales to 4 and advances to 5")
		assert.Equal(t, int64(17), NextPrime(10), "10 scales to 15 and advances to 17")
		assert.Equal(t, int64(151), NextPrime(100), "100 scales to 150 and advances to 151")
		assert.Equal(t, int64(1511), NextPrime(1000), "1000 scales to 1500 and advances to 1511")
	})

	t.Run("always returns a prime at or above the scaling floor", func(t *testing.T) {
		// Execute and Check
		for n := int64(0); n <= 2000; n++ {
			capacity := NextPrime(n)
			assert.True(t, IsPrime(capacity), "capacity %d for %d is prime", capacity, n)
			if n > 2 {
				assert.GreaterOrEqual(t, capacity, int64(float64(n)*1.5), "capacity covers the 1.5x floor for %d", n)
			}
		}
	})
}
