package searchbench

import "github.com/gostonefire/searchbench/internal/model"

// SearchStore - Interface for any search structure taking part in a benchmark run.
// Build is an idempotent full (re)construction from a dataset, Insert a single incremental
// insertion and Search returns all records matching key in the structure's documented order.
type SearchStore interface {
	Build(records []model.Record) (err error)
	Insert(record model.Record) (err error)
	Search(key string) (results []model.Record)
}

// TableStat - Statistics on the hash table usage after a build
//   - Capacity is the prime bucket capacity the table selected for the dataset
//   - Records is the total number of records stored
//   - Collisions is the number of distinct-key collisions recorded during the build
//   - BucketDistribution is the number of records stored in each available bucket
type TableStat struct {
	Capacity           int64
	Records            int64
	Collisions         int64
	BucketDistribution []int64
}

// SizeResult - The measurements for one dataset size
//   - Size is the number of records in the generated dataset
//   - SearchKey is the key, drawn from the dataset, every structure was searched for
//   - LinearNs through MultimapNs are average search latencies in nanoseconds
//   - Collisions is the hash table collision count for this dataset
//   - TableStat carries the full hash table statistics
type SizeResult struct {
	Size        int
	SearchKey   string
	LinearNs    int64
	BSTNs       int64
	RBTNs       int64
	HashTableNs int64
	MultimapNs  int64
	Collisions  int64
	TableStat   TableStat
}
