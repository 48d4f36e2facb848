package linear

import "github.com/gostonefire/searchbench/internal/model"

// Store - A flat insertion-ordered sequence of records searched by exhaustive scan.
// It is the O(n) baseline the tree and hash structures are benchmarked against.
type Store struct {
	records []model.Record
}

// NewStore - Returns a pointer to a new Store instance
func NewStore() *Store {
	return &Store{}
}

// Build - Discards any existing contents and loads the store with the given records in input order.
//   - records is the dataset to load
func (S *Store) Build(records []model.Record) (err error) {
	S.records = make([]model.Record, len(records))
	copy(S.records, records)

	return
}

// Insert - Appends a single record. Complexity O(1).
//   - record is the record to store
func (S *Store) Insert(record model.Record) (err error) {
	S.records = append(S.records, record)

	return
}

// Search - Returns all records matching key in insertion order. Complexity O(n).
//   - key is the key to search for
func (S *Store) Search(key string) (results []model.Record) {
	for _, record := range S.records {
		if record.Key == key {
			results = append(results, record)
		}
	}

	return
}
