package hashtable

import (
	"github.com/gostonefire/searchbench/crt"
	"github.com/gostonefire/searchbench/interfaces"
	"github.com/gostonefire/searchbench/internal/hash"
	"github.com/gostonefire/searchbench/internal/model"
	"github.com/gostonefire/searchbench/internal/utils"
)

// Table - A hash table resolving collisions by separate chaining. Each bucket holds an
// insertion-ordered chain of records, the capacity is always a prime at least 1.5 times
// the expected number of elements.
//
// The collision counter increments exactly once per inserted record whose target bucket
// already holds at least one record with a different key, i.e. it counts hash collisions
// between distinct keys, not repeated insertions of an already present key.
type Table struct {
	buckets       [][]model.Record
	tableSize     int64
	collisions    int64
	hashAlgorithm interfaces.HashAlgorithm
}

// NewTable - Returns a pointer to a new Table instance sized for an expected number of elements.
//   - expectedElements is the theoretical number of records to be stored, capacity is selected as
//     the nearest prime at or above 1.5 times that figure (minimum viable capacity is 2)
//   - hashAlgorithm is an optional custom bucket selection algorithm following the
//     interfaces.HashAlgorithm interface, nil selects the internal crc32 based one
func NewTable(expectedElements int64, hashAlgorithm interfaces.HashAlgorithm) *Table {
	t := &Table{hashAlgorithm: hashAlgorithm}
	if t.hashAlgorithm == nil {
		t.hashAlgorithm = hash.NewCRC32Algorithm(0)
	}
	t.Reset(expectedElements)

	return t
}

// Reset - Reconstructs the table in place: a fresh prime capacity is selected for the
// expected number of elements, all chains are dropped and the collision counter is zeroed.
//   - expectedElements is the number of records the new capacity should cover, values below 1 clamp to 1
func (T *Table) Reset(expectedElements int64) {
	if expectedElements < 1 {
		expectedElements = 1
	}

	T.tableSize = utils.NextPrime(expectedElements)
	T.buckets = make([][]model.Record, T.tableSize)
	T.collisions = 0
	T.hashAlgorithm.SetTableSize(T.tableSize)
}

// Build - Reconstructs the table from scratch sized to the dataset length and inserts every
// record in input order. Collision count afterwards reflects this dataset alone.
//   - records is the dataset to load
func (T *Table) Build(records []model.Record) (err error) {
	T.Reset(int64(len(records)))

	for _, record := range records {
		err = T.Insert(record)
		if err != nil {
			return
		}
	}

	return
}

// Insert - Inserts a single record. Complexity O(1) on average, O(n) worst case.
// Duplicates of an already stored key are appended to the chain, never deduplicated.
//   - record is the record to store
//
// It returns:
//   - err of type crt.BucketOutOfRange if the hash algorithm produced a bucket number outside
//     the table, in which case the insert is aborted for this record and the table untouched
func (T *Table) Insert(record model.Record) (err error) {
	if T.tableSize == 0 {
		T.Reset(1)
	}

	index := T.hashAlgorithm.BucketNo([]byte(record.Key))
	if index < 0 || index >= T.tableSize {
		err = crt.BucketOutOfRange{Index: index, TableSize: T.tableSize}
		return
	}

	if len(T.buckets[index]) > 0 {
		keyPresent := false
		for _, existing := range T.buckets[index] {
			if existing.Key == record.Key {
				keyPresent = true
				break
			}
		}
		if !keyPresent {
			T.collisions++
		}
	}

	T.buckets[index] = append(T.buckets[index], record)

	return
}

// Search - Returns all records matching key in chain order. Complexity O(1 + k) on average,
// O(n + k) worst case, where k is the number of matches. An empty table or a bucket number
// outside the table yields an empty result.
//   - key is the key to search for
func (T *Table) Search(key string) (results []model.Record) {
	if T.tableSize == 0 {
		return
	}

	index := T.hashAlgorithm.BucketNo([]byte(key))
	if index < 0 || index >= T.tableSize {
		return
	}

	for _, record := range T.buckets[index] {
		if record.Key == key {
			results = append(results, record)
		}
	}

	return
}

// CollisionCount - Returns the number of distinct-key collisions recorded since the last reset
func (T *Table) CollisionCount() int64 {
	return T.collisions
}

// TableSize - Returns the current bucket capacity
func (T *Table) TableSize() int64 {
	return T.tableSize
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Collisions is the number of distinct-key collisions recorded since the last reset
//   - BucketDistribution is the number of records stored in each available bucket
type Stat struct {
	Records            int64
	Collisions         int64
	BucketDistribution []int64
}

// Stat - Returns statistics on the overall usage and distribution over buckets
func (T *Table) Stat() (stat Stat) {
	stat.Collisions = T.collisions
	stat.BucketDistribution = make([]int64, T.tableSize)
	for i, chain := range T.buckets {
		stat.BucketDistribution[i] = int64(len(chain))
		stat.Records += int64(len(chain))
	}

	return
}
