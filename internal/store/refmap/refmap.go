package refmap

import (
	"sort"

	"github.com/gostonefire/searchbench/internal/model"
)

// Map - The reference ordered multi-map the other structures are benchmarked against.
// Records are kept in a key-sorted slice, stable for equal keys, and lookups run an
// equal-range binary search. Build is O(n log n), Insert O(n) from the shift.
type Map struct {
	records []model.Record
}

// NewMap - Returns a pointer to a new empty Map instance
func NewMap() *Map {
	return &Map{}
}

// Build - Discards any existing contents and loads the map with the given records.
// A stable sort keeps equal keys in input order.
//   - records is the dataset to load
func (M *Map) Build(records []model.Record) (err error) {
	M.records = make([]model.Record, len(records))
	copy(M.records, records)
	sort.SliceStable(M.records, func(i, j int) bool {
		return M.records[i].Less(M.records[j])
	})

	return
}

// Insert - Inserts a single record after the last record with an equal or lower key,
// preserving insertion order among duplicates.
//   - record is the record to store
func (M *Map) Insert(record model.Record) (err error) {
	i := sort.Search(len(M.records), func(i int) bool {
		return M.records[i].Key > record.Key
	})

	M.records = append(M.records, model.Record{})
	copy(M.records[i+1:], M.records[i:])
	M.records[i] = record

	return
}

// Search - Returns all records matching key in insertion order. Complexity O(log n + k)
// where k is the number of matches.
//   - key is the key to search for
func (M *Map) Search(key string) (results []model.Record) {
	lo := sort.Search(len(M.records), func(i int) bool {
		return M.records[i].Key >= key
	})
	hi := sort.Search(len(M.records), func(i int) bool {
		return M.records[i].Key > key
	})

	if hi > lo {
		results = make([]model.Record, hi-lo)
		copy(results, M.records[lo:hi])
	}

	return
}
