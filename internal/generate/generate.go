package generate

import (
	"math/rand"

	"github.com/gostonefire/searchbench/internal/model"
)

const (
	minKeyLength = 3
	maxKeyLength = 10
	maxValue1    = 1000
	maxValue2    = 100.0
)

// Dataset - Generates a dataset of random records. Keys are drawn from a pool of
// max(10, size/5) random lowercase keys of length 3 to 10, so duplicate keys occur by
// construction. Value1 is uniform in 1..1000 and Value2 uniform in 0..100.
// A size of 0 yields an empty dataset. Output is deterministic for a given rand source,
// which is what makes benchmark runs reproducible.
//   - size is the number of records to generate
//   - rnd is the random source to draw from
func Dataset(size int, rnd *rand.Rand) (data []model.Record) {
	if size == 0 {
		return
	}

	poolSize := size / 5
	if poolSize < 10 {
		poolSize = 10
	}
	pool := keyPool(poolSize, rnd)

	data = make([]model.Record, 0, size)
	for i := 0; i < size; i++ {
		data = append(data, model.Record{
			Key:    pool[rnd.Intn(len(pool))],
			Value1: rnd.Intn(maxValue1) + 1,
			Value2: rnd.Float64() * maxValue2,
		})
	}

	return
}

// keyPool - Generates the pool of candidate keys duplicates are drawn from
func keyPool(poolSize int, rnd *rand.Rand) (pool []string) {
	pool = make([]string, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		keyLength := minKeyLength + rnd.Intn(maxKeyLength-minKeyLength+1)
		key := make([]byte, keyLength)
		for j := range key {
			key[j] = byte('a' + rnd.Intn(26))
		}
		pool = append(pool, string(key))
	}

	return
}
