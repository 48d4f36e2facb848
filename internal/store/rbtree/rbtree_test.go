//go:build unit

package rbtree

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostonefire/searchbench/crt"
	"github.com/gostonefire/searchbench/internal/model"
)

// assertInvariants - Walks the whole tree and fails the test if any red-black or
// ordering invariant is broken
func assertInvariants(t *testing.T, tree *Tree) {
	if tree.root == nil {
		return
	}

	assert.Equal(t, black, tree.root.color, "root is black")
	assert.Nil(t, tree.root.parent, "root has no parent")

	assertNode(t, tree.root)

	var keys []string
	inorder(tree.root, &keys)
	for i := 1; i < len(keys); i++ {
		assert.LessOrEqual(t, keys[i-1], keys[i], "in-order traversal is non-decreasing")
	}
}

// assertNode - Checks color, link and black height consistency of the subtree rooted at n
// and returns its black height
func assertNode(t *testing.T, n *node) int {
	if n == nil {
		return 1
	}

	if n.color == red {
		if n.left != nil {
			assert.Equal(t, black, n.left.color, "no red node has a red left child")
		}
		if n.right != nil {
			assert.Equal(t, black, n.right.color, "no red node has a red right child")
		}
	}
	if n.left != nil {
		assert.Equal(t, n, n.left.parent, "left child points back to parent")
		assert.LessOrEqual(t, n.left.data.Key, n.data.Key, "left child key not greater")
	}
	if n.right != nil {
		assert.Equal(t, n, n.right.parent, "right child points back to parent")
		assert.GreaterOrEqual(t, n.right.data.Key, n.data.Key, "right child key not less")
	}

	leftHeight := assertNode(t, n.left)
	rightHeight := assertNode(t, n.right)
	assert.Equal(t, leftHeight, rightHeight, "uniform black height")

	if n.color == black {
		leftHeight++
	}

	return leftHeight
}

// inorder - Collects all keys of the subtree rooted at n in order
func inorder(n *node, keys *[]string) {
	if n == nil {
		return
	}
	inorder(n.left, keys)
	*keys = append(*keys, n.data.Key)
	inorder(n.right, keys)
}

func TestTree_Insert(t *testing.T) {
	t.Run("keeps invariants over random insertions", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(1))
		tree := NewTree()

		// Execute and Check
		for i := 0; i < 500; i++ {
			record := model.Record{Key: fmt.Sprintf("key%d", rnd.Intn(100)), Value1: i}
			err := tree.Insert(record)
			assert.NoError(t, err, "inserts record")
			assertInvariants(t, tree)
		}
	})

	t.Run("keeps invariants over ascending insertions", func(t *testing.T) {
		// Prepare
		tree := NewTree()

		// Execute and Check
		for i := 0; i < 200; i++ {
			err := tree.Insert(model.Record{Key: fmt.Sprintf("key%04d", i)})
			assert.NoError(t, err, "inserts record")
			assertInvariants(t, tree)
		}
	})

	t.Run("keeps invariants over descending insertions", func(t *testing.T) {
		// Prepare
		tree := NewTree()

		// Execute and Check
		for i := 200; i > 0; i-- {
			err := tree.Insert(model.Record{Key: fmt.Sprintf("key%04d", i)})
			assert.NoError(t, err, "inserts record")
			assertInvariants(t, tree)
		}
	})

	t.Run("routes duplicates to the right subtree", func(t *testing.T) {
		// Prepare
		tree := NewTree()

		// Execute
		for i := 0; i < 10; i++ {
			err := tree.Insert(model.Record{Key: "same", Value1: i})
			assert.NoError(t, err, "inserts duplicate")
			assertInvariants(t, tree)
		}

		// Check
		results := tree.Search("same")
		assert.Equal(t, 10, len(results), "all duplicates retrievable")
		for i, record := range results {
			assert.Equal(t, i, record.Value1, "duplicates in insertion order")
		}
	})
}

func TestTree_Search(t *testing.T) {
	t.Run("finds all matches in insertion-consistent order", func(t *testing.T) {
		// Prepare
		tree := NewTree()
		err := tree.Build([]model.Record{
			{Key: "cat", Value1: 1, Value2: 1.0},
			{Key: "dog", Value1: 2, Value2: 2.0},
			{Key: "cat", Value1: 3, Value2: 3.0},
		})
		assert.NoError(t, err, "builds tree")

		// Execute
		results := tree.Search("cat")

		// Check
		assert.Equal(t, 2, len(results), "finds both cats")
		assert.Equal(t, model.Record{Key: "cat", Value1: 1, Value2: 1.0}, results[0], "first cat first")
		assert.Equal(t, model.Record{Key: "cat", Value1: 3, Value2: 3.0}, results[1], "second cat second")
	})

	t.Run("returns empty result for a missing key", func(t *testing.T) {
		// Prepare
		tree := NewTree()
		err := tree.Build([]model.Record{{Key: "cat"}, {Key: "dog"}})
		assert.NoError(t, err, "builds tree")

		// Execute
		results := tree.Search("bird")

		// Check
		assert.Empty(t, results, "no matches for missing key")
	})

	t.Run("returns empty result on an empty tree", func(t *testing.T) {
		// Prepare
		tree := NewTree()

		// Execute
		results := tree.Search("cat")

		// Check
		assert.Empty(t, results, "no matches on empty tree")
	})
}

func TestTree_Build(t *testing.T) {
	t.Run("discards existing contents", func(t *testing.T) {
		// Prepare
		tree := NewTree()
		err := tree.Build([]model.Record{{Key: "old"}})
		assert.NoError(t, err, "builds first tree")

		// Execute
		err = tree.Build([]model.Record{{Key: "new"}})
		assert.NoError(t, err, "rebuilds tree")

		// Check
		assert.Empty(t, tree.Search("old"), "old contents gone")
		assert.Equal(t, 1, len(tree.Search("new")), "new contents present")
		assertInvariants(t, tree)
	})

	t.Run("is idempotent for the same dataset", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(2))
		records := make([]model.Record, 300)
		for i := range records {
			records[i] = model.Record{Key: fmt.Sprintf("key%d", rnd.Intn(50)), Value1: i}
		}
		tree := NewTree()

		// Execute
		err := tree.Build(records)
		assert.NoError(t, err, "builds tree")
		first := tree.Search("key7")
		err = tree.Build(records)
		assert.NoError(t, err, "rebuilds tree")
		second := tree.Search("key7")

		// Check
		assert.Equal(t, first, second, "identical search results after rebuild")
		assertInvariants(t, tree)
	})

	t.Run("builds an empty tree from an empty dataset", func(t *testing.T) {
		// Prepare
		tree := NewTree()

		// Execute
		err := tree.Build(nil)

		// Check
		assert.NoError(t, err, "builds empty tree")
		assert.Nil(t, tree.root, "tree is empty")
	})
}

func TestTree_Rotations(t *testing.T) {
	t.Run("left rotation without right child is a guarded no-op", func(t *testing.T) {
		// Prepare
		tree := NewTree()
		err := tree.Insert(model.Record{Key: "only"})
		assert.NoError(t, err, "inserts record")

		// Execute
		err = tree.leftRotate(tree.root)

		// Check
		var fault crt.MissingRotationChild
		assert.True(t, errors.As(err, &fault), "typed rotation fault")
		assert.Equal(t, "only", tree.root.data.Key, "tree untouched")
		assert.Nil(t, tree.root.left, "tree untouched")
		assert.Nil(t, tree.root.right, "tree untouched")
	})

	t.Run("right rotation without left child is a guarded no-op", func(t *testing.T) {
		// Prepare
		tree := NewTree()
		err := tree.Insert(model.Record{Key: "only"})
		assert.NoError(t, err, "inserts record")

		// Execute
		err = tree.rightRotate(tree.root)

		// Check
		var fault crt.MissingRotationChild
		assert.True(t, errors.As(err, &fault), "typed rotation fault")
		assert.Equal(t, "only", tree.root.data.Key, "tree untouched")
	})
}
