package rbtree

import (
	"github.com/gostonefire/searchbench/crt"
	"github.com/gostonefire/searchbench/internal/model"
)

// color - Node color in the red-black tree
type color uint8

const (
	red color = iota
	black
)

// node - One node in the red-black tree. The parent/left/right links are structural only,
// the tree owns every node reachable from its root.
type node struct {
	data   model.Record
	color  color
	parent *node
	left   *node
	right  *node
}

// isLeftChild - Returns true if the node is the left child of its parent
func (n *node) isLeftChild() bool {
	return n.parent != nil && n == n.parent.left
}

// Tree - A red-black tree guaranteeing O(log n) insert and search through the classic
// invariants: the root is black, no red node has a red child, and every path from a node
// down to an empty position passes the same number of black nodes.
//
// Duplicate keys are allowed. An equal key always descends right, never left, at insert
// time, which keeps duplicates contiguous and in insertion order in the in-order
// traversal. Rotations preserve the in-order sequence, so Search can rely on that order
// even after fixups have restructured the tree.
type Tree struct {
	root *node
}

// NewTree - Returns a pointer to a new empty Tree instance
func NewTree() *Tree {
	return &Tree{}
}

// Build - Discards any existing tree, then inserts every record from the input sequence in order.
// The old tree is released through a post-order unlink before the rebuild starts, so no
// discarded node keeps a subtree alive.
//   - records is the dataset to load
func (T *Tree) Build(records []model.Record) (err error) {
	release(T.root)
	T.root = nil

	for _, record := range records {
		err = T.Insert(record)
		if err != nil {
			return
		}
	}

	return
}

// Insert - Inserts a single record. The new node is attached as a red leaf through an
// ordered descent (equal keys go right) and a fixup pass restores the red-black
// invariants. Complexity O(log n).
//   - record is the record to store
//
// It returns:
//   - err which is non-nil only if a rotation precondition failed, which indicates an
//     internal defect and never occurs for a tree mutated through this interface alone
func (T *Tree) Insert(record model.Record) (err error) {
	z := &node{data: record, color: red}

	var y *node
	x := T.root
	for x != nil {
		y = x
		if z.data.Key < x.data.Key {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	if y == nil {
		T.root = z
	} else if z.data.Key < y.data.Key {
		y.left = z
	} else {
		y.right = z
	}

	err = T.insertFixup(z)

	return
}

// insertFixup - Restores the red-black invariants walking upward from the newly inserted
// node z. A red uncle is handled by recoloring and moving the conflict two levels up, a
// black or absent uncle by one or two rotations around parent and grandparent.
func (T *Tree) insertFixup(z *node) (err error) {
	for z.parent != nil && z.parent.color == red {
		parent := z.parent
		grandparent := parent.parent
		if grandparent == nil {
			break
		}

		if parent == grandparent.left {
			uncle := grandparent.right
			if uncle != nil && uncle.color == red {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == parent.right {
					// triangle case, rotate into a line first
					z = parent
					if err = T.leftRotate(z); err != nil {
						return
					}
					parent = z.parent
					grandparent = nil
					if parent != nil {
						grandparent = parent.parent
					}
				}
				if parent != nil {
					parent.color = black
				}
				if grandparent != nil {
					grandparent.color = red
					if err = T.rightRotate(grandparent); err != nil {
						return
					}
				}
			}
		} else {
			uncle := grandparent.left
			if uncle != nil && uncle.color == red {
				parent.color = black
				uncle.color = black
				grandparent.color = red
				z = grandparent
			} else {
				if z == parent.left {
					z = parent
					if err = T.rightRotate(z); err != nil {
						return
					}
					parent = z.parent
					grandparent = nil
					if parent != nil {
						grandparent = parent.parent
					}
				}
				if parent != nil {
					parent.color = black
				}
				if grandparent != nil {
					grandparent.color = red
					if err = T.leftRotate(grandparent); err != nil {
						return
					}
				}
			}
		}
	}

	if T.root != nil {
		T.root.color = black
	}

	return
}

// leftRotate - Rotates the subtree rooted at x to the left, pulling its right child up.
// Requires x to have a right child, if it doesn't the tree is left untouched and a
// crt.MissingRotationChild is returned for the caller to decide on reporting.
func (T *Tree) leftRotate(x *node) (err error) {
	y := x.right
	if y == nil {
		err = crt.MissingRotationChild{Direction: "left"}
		return
	}

	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent
	if x.parent == nil {
		T.root = y
	} else if x.isLeftChild() {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.left = x
	x.parent = y

	return
}

// rightRotate - Rotates the subtree rooted at y to the right, pulling its left child up.
// Requires y to have a left child, if it doesn't the tree is left untouched and a
// crt.MissingRotationChild is returned for the caller to decide on reporting.
func (T *Tree) rightRotate(y *node) (err error) {
	x := y.left
	if x == nil {
		err = crt.MissingRotationChild{Direction: "right"}
		return
	}

	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent
	if y.parent == nil {
		T.root = x
	} else if y.isLeftChild() {
		y.parent.left = x
	} else {
		y.parent.right = x
	}

	x.right = y
	y.parent = x

	return
}

// Search - Returns all records matching key in insertion order. The scan narrows down to
// the equal range and collects it in order. Complexity O(log n + k) where k is the number
// of matches.
//   - key is the key to search for
func (T *Tree) Search(key string) (results []model.Record) {
	searchRecursive(T.root, key, &results)

	return
}

// searchRecursive - Collects matches in order while descending. On a match the scan must
// look into both subtrees, rotations can have moved an earlier duplicate leftward. Both
// branches still prune as soon as keys leave the equal range.
func searchRecursive(n *node, key string, results *[]model.Record) {
	if n == nil {
		return
	}

	if key < n.data.Key {
		searchRecursive(n.left, key, results)
	} else if key > n.data.Key {
		searchRecursive(n.right, key, results)
	} else {
		searchRecursive(n.left, key, results)
		*results = append(*results, n.data)
		searchRecursive(n.right, key, results)
	}
}

// release - Unlinks all nodes in post-order, children before parent, so every node is
// released exactly once and no parent back-link keeps a discarded subtree reachable.
func release(n *node) {
	if n == nil {
		return
	}

	release(n.left)
	release(n.right)
	n.left = nil
	n.right = nil
	n.parent = nil
}
