package searchbench

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gostonefire/searchbench/interfaces"
	"github.com/gostonefire/searchbench/internal/generate"
	"github.com/gostonefire/searchbench/internal/model"
	"github.com/gostonefire/searchbench/internal/store/bstree"
	"github.com/gostonefire/searchbench/internal/store/hashtable"
	"github.com/gostonefire/searchbench/internal/store/linear"
	"github.com/gostonefire/searchbench/internal/store/rbtree"
	"github.com/gostonefire/searchbench/internal/store/refmap"
)

// defaultSearchIterations - Number of timed searches the average latency is taken over
const defaultSearchIterations = 10000

// RunConf - Configuration for a benchmark run
//   - Sizes is the list of dataset sizes to benchmark, processed in order
//   - SearchIterations is the number of timed searches per structure and size, zero selects the default of 10000
//   - Seed is the seed for dataset generation and search key selection, same seed gives same run
//   - HashAlgorithm is an optional custom bucket selection algorithm for the hash table
//     following the interfaces.HashAlgorithm interface, nil selects the internal crc32 based one
type RunConf struct {
	Sizes            []int
	SearchIterations int
	Seed             int64
	HashAlgorithm    interfaces.HashAlgorithm
}

// Run - Executes a full benchmark run. For every configured size a dataset is generated,
// each structure is built independently from it and then searched repeatedly for one key
// drawn from the dataset, yielding the average search latency per structure plus the hash
// table collision count.
//
// It returns:
//   - results with one SizeResult per configured size, in configuration order
//   - err is a normal Go Error which should be nil if everything went ok
func Run(conf RunConf) (results []SizeResult, err error) {
	if len(conf.Sizes) == 0 {
		err = fmt.Errorf("at least one dataset size must be given")
		return
	}
	for _, size := range conf.Sizes {
		if size < 0 {
			err = fmt.Errorf("dataset sizes must not be negative, got %d", size)
			return
		}
	}

	iterations := conf.SearchIterations
	if iterations <= 0 {
		iterations = defaultSearchIterations
	}

	rnd := rand.New(rand.NewSource(conf.Seed))
	results = make([]SizeResult, 0, len(conf.Sizes))

	for _, size := range conf.Sizes {
		log.WithField("size", size).Info("processing dataset size")

		data := generate.Dataset(size, rnd)
		if len(data) == 0 {
			results = append(results, SizeResult{Size: size})
			continue
		}

		result := SizeResult{Size: size, SearchKey: data[rnd.Intn(len(data))].Key}
		log.WithField("key", result.SearchKey).Debug("selected search key")

		linearStore := linear.NewStore()
		if err = buildTimed("linear", linearStore, data); err != nil {
			return
		}
		result.LinearNs = avgSearchNs(iterations, func() {
			_ = linearStore.Search(result.SearchKey)
		})

		bst := bstree.NewTree()
		if err = buildTimed("bst", bst, data); err != nil {
			return
		}
		result.BSTNs = avgSearchNs(iterations, func() {
			_ = bst.Search(result.SearchKey)
		})

		rbt := rbtree.NewTree()
		if err = buildTimed("rbt", rbt, data); err != nil {
			return
		}
		result.RBTNs = avgSearchNs(iterations, func() {
			_ = rbt.Search(result.SearchKey)
		})

		table := hashtable.NewTable(int64(size), conf.HashAlgorithm)
		if err = buildTimed("hashtable", table, data); err != nil {
			return
		}
		result.HashTableNs = avgSearchNs(iterations, func() {
			_ = table.Search(result.SearchKey)
		})
		result.Collisions = table.CollisionCount()

		stat := table.Stat()
		result.TableStat = TableStat{
			Capacity:           table.TableSize(),
			Records:            stat.Records,
			Collisions:         stat.Collisions,
			BucketDistribution: stat.BucketDistribution,
		}

		multimap := refmap.NewMap()
		if err = buildTimed("multimap", multimap, data); err != nil {
			return
		}
		result.MultimapNs = avgSearchNs(iterations, func() {
			_ = multimap.Search(result.SearchKey)
		})

		log.WithFields(log.Fields{
			"linear_ns":   result.LinearNs,
			"bst_ns":      result.BSTNs,
			"rbt_ns":      result.RBTNs,
			"hash_ns":     result.HashTableNs,
			"multimap_ns": result.MultimapNs,
			"collisions":  result.Collisions,
			"capacity":    result.TableStat.Capacity,
		}).Info("size done")

		results = append(results, result)
	}

	return
}

// buildTimed - Builds a store from the dataset and logs the build time at debug level
func buildTimed(name string, store SearchStore, data []model.Record) (err error) {
	start := time.Now()
	err = store.Build(data)
	if err != nil {
		err = fmt.Errorf("error while building %s store: %s", name, err)
		return
	}
	log.WithFields(log.Fields{"store": name, "build_ns": time.Since(start).Nanoseconds()}).Debug("store built")

	return
}

// avgSearchNs - Returns the average wall clock time in nanoseconds of running search
// the given number of iterations
func avgSearchNs(iterations int, search func()) int64 {
	var total int64
	for i := 0; i < iterations; i++ {
		start := time.Now()
		search()
		total += time.Since(start).Nanoseconds()
	}

	return total / int64(iterations)
}
