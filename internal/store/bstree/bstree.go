package bstree

import "github.com/gostonefire/searchbench/internal/model"

// node - One node in the unbalanced binary search tree
type node struct {
	data  model.Record
	left  *node
	right *node
}

// Tree - An unbalanced binary search tree. Duplicate keys are allowed and always descend
// into the right subtree, which is what lets Search scan right-only once a match is found.
// No balancing is done, a sorted input degrades it to a linked list.
type Tree struct {
	root *node
}

// NewTree - Returns a pointer to a new empty Tree instance
func NewTree() *Tree {
	return &Tree{}
}

// Build - Discards any existing tree and inserts every record from the input sequence in order.
//   - records is the dataset to load
func (T *Tree) Build(records []model.Record) (err error) {
	T.root = nil
	for _, record := range records {
		T.root = insert(T.root, record)
	}

	return
}

// Insert - Inserts a single record. Complexity O(log n) on average, O(n) worst case.
//   - record is the record to store
func (T *Tree) Insert(record model.Record) (err error) {
	T.root = insert(T.root, record)

	return
}

// insert - Descends to the insertion point and returns the possibly new subtree link,
// leaving it to the caller to reassign its child pointer. Equal keys go right.
func insert(n *node, record model.Record) *node {
	if n == nil {
		return &node{data: record}
	}

	if record.Key < n.data.Key {
		n.left = insert(n.left, record)
	} else {
		n.right = insert(n.right, record)
	}

	return n
}

// Search - Returns all records matching key. Since equal keys only ever live in right
// subtrees the scan continues right-only after a match. Complexity O(log n + k) on
// average, O(n + k) worst case, where k is the number of matches.
//   - key is the key to search for
func (T *Tree) Search(key string) (results []model.Record) {
	searchRecursive(T.root, key, &results)

	return
}

// searchRecursive - Collects matches into results while descending
func searchRecursive(n *node, key string, results *[]model.Record) {
	if n == nil {
		return
	}

	if key == n.data.Key {
		*results = append(*results, n.data)
		searchRecursive(n.right, key, results)
	} else if key < n.data.Key {
		searchRecursive(n.left, key, results)
	} else {
		searchRecursive(n.right, key, results)
	}
}
