package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gostonefire/searchbench"
)

// SearchTimesFileName - Name of the CSV file holding average search latencies per size
const SearchTimesFileName = "search_times_ns.csv"

// CollisionsFileName - Name of the CSV file holding hash table collision counts per size
const CollisionsFileName = "hash_collisions.csv"

// WriteSearchTimes - Writes the average search latencies to a CSV file in the given
// directory, one row per dataset size, for external plotting.
//   - dir is the directory to write into, it must exist
//   - results is the outcome of a benchmark run
func WriteSearchTimes(dir string, results []searchbench.SizeResult) (err error) {
	rows := [][]string{
		{"Size", "Linear_Search_ns", "BST_Search_ns", "RBT_Search_ns", "HashTable_Search_ns", "Multimap_Search_ns"},
	}
	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.LinearNs, 10),
			strconv.FormatInt(r.BSTNs, 10),
			strconv.FormatInt(r.RBTNs, 10),
			strconv.FormatInt(r.HashTableNs, 10),
			strconv.FormatInt(r.MultimapNs, 10),
		})
	}

	err = writeCSV(filepath.Join(dir, SearchTimesFileName), rows)

	return
}

// WriteCollisions - Writes the hash table collision counts to a CSV file in the given
// directory, one row per dataset size.
//   - dir is the directory to write into, it must exist
//   - results is the outcome of a benchmark run
func WriteCollisions(dir string, results []searchbench.SizeResult) (err error) {
	rows := [][]string{{"Size", "Collisions"}}
	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.Collisions, 10),
		})
	}

	err = writeCSV(filepath.Join(dir, CollisionsFileName), rows)

	return
}

// writeCSV - Writes all rows to the given file, creating or truncating it
func writeCSV(path string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("error while creating result file: %s", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	w := csv.NewWriter(f)
	err = w.WriteAll(rows)
	if err != nil {
		err = fmt.Errorf("error while writing result file: %s", err)
		return
	}

	return
}

// RenderConsole - Renders the benchmark results as a table on the console
//   - results is the outcome of a benchmark run
func RenderConsole(results []searchbench.SizeResult) {
	data := pterm.TableData{
		{"Size", "Key", "Linear ns", "BST ns", "RBT ns", "HashTable ns", "Multimap ns", "Collisions"},
	}
	for _, r := range results {
		data = append(data, []string{
			strconv.Itoa(r.Size),
			r.SearchKey,
			strconv.FormatInt(r.LinearNs, 10),
			strconv.FormatInt(r.BSTNs, 10),
			strconv.FormatInt(r.RBTNs, 10),
			strconv.FormatInt(r.HashTableNs, 10),
			strconv.FormatInt(r.MultimapNs, 10),
			strconv.FormatInt(r.Collisions, 10),
		})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
