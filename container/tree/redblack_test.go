package tree

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prePopulatedRedBlackTree() *Tree {
	tree := NewRedBlackTree()
	prePopulateTree(tree)
	return tree
}

func TestRedBlackTreeRootNil(t *testing.T) {
	tree := NewRedBlackTree()
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.Empty())
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeRootNode(t *testing.T) {
	tree := NewRedBlackTree()
	tree.Insert(1)
	assert.Equal(t, 1, tree.Root().Key())
	assert.Equal(t, 1, tree.Len())
	assert.True(t, isBlack(tree.root))
}

func TestRedBlackTreeInsertBalanced(t *testing.T) {
	tree := NewRedBlackTree()

	tree.Insert(1)
	tree.Insert(0)
	tree.Insert(2)

	assertEqualTree(t, [][]interface{}{
		{1},
		{0, 2},
	}, tree)
}

func TestRedBlackTreeInsertMultiple(t *testing.T) {
	tree := NewRedBlackTree()

	for i := 0; i < 4; i++ {
		tree.Insert(i)
	}

	assertEqualTree(t, [][]interface{}{
		{1},
		{0, 2},
		{nil, nil, nil, 3},
	}, tree)
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeInsertLeftRotation(t *testing.T) {
	tree := NewRedBlackTree()

	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)

	assert.Equal(t, []int{10, 20, 30}, slices.Collect(tree.InOrder()))
	assert.Equal(t, []int{20, 10, 30}, slices.Collect(tree.LevelOrder()))
	assert.True(t, isBlack(tree.Find(20)))
	assert.True(t, isRed(tree.Find(10)))
	assert.True(t, isRed(tree.Find(30)))
}

func TestRedBlackTreeInsertZigZag(t *testing.T) {
	tree := NewRedBlackTree()

	tree.Insert(30)
	tree.Insert(10)
	tree.Insert(20)

	assert.Equal(t, []int{20, 10, 30}, slices.Collect(tree.LevelOrder()))
	assert.True(t, isBlack(tree.Find(20)))
	assert.True(t, isRed(tree.Find(10)))
	assert.True(t, isRed(tree.Find(30)))
}

func TestRedBlackTreeInOrderRoundTrip(t *testing.T) {
	tree := NewRedBlackTree()
	for _, k := range []int{5, 2, 8, 1, 9, 3} {
		tree.Insert(k)
	}

	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, slices.Collect(tree.InOrder()))
}

func TestRedBlackTreeInOrderWalkMultiLevel(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	assert.Equal(t, []int{0, 1, 1, 2, 3, 3, 5, 6, 7, 8}, slices.Collect(tree.InOrder()))
}

func TestRedBlackTreeLevelOrderMultiLevel(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	assert.Equal(t, []int{5, 2, 7, 1, 3, 6, 8, 0, 1, 3}, slices.Collect(tree.LevelOrder()))
}

func TestRedBlackTreeMinOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	n := tree.Min()

	assert.NotNil(t, n)
	assert.Equal(t, 0, n.Key())
}

func TestRedBlackTreeMinEmpty(t *testing.T) {
	tree := NewRedBlackTree()
	assert.Nil(t, tree.Min())
}

func TestRedBlackTreeMaxOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	n := tree.Max()

	assert.NotNil(t, n)
	assert.Equal(t, 8, n.Key())
}

func TestRedBlackTreeMaxEmpty(t *testing.T) {
	tree := NewRedBlackTree()
	assert.Nil(t, tree.Max())
}

func TestRedBlackTreeFindOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	n := tree.Find(2)

	assert.NotNil(t, n)
	assert.Equal(t, 2, n.Key())
	assert.True(t, tree.Contains(2))
}

func TestRedBlackTreeFindNil(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	assert.Nil(t, tree.Find(1000))
	assert.False(t, tree.Contains(1000))
}

func TestRedBlackTreeDeleteNoChildrenOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	ok := tree.Delete(8)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, nil},
		{0, 1, nil, 3, nil, nil, nil, nil},
	}, tree)
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeDeleteNoLeftChildrenOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	ok := tree.Delete(3)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, 8},
		{0, 1, nil, nil, nil, nil, nil, nil},
	}, tree)
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeDeleteTwoChildrenOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	ok := tree.Delete(1)

	assert.True(t, ok)
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 7},
		{1, 3, 6, 8},
		{0, nil, nil, 3, nil, nil, nil, nil},
	}, tree)
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeDeleteRootOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	ok := tree.Delete(5)
	assert.True(t, ok)

	assertEqualTree(t, [][]interface{}{
		{6},
		{2, 7},
		{1, 3, nil, 8},
		{0, 1, nil, 3, nil, nil, nil, nil},
	}, tree)
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeDeleteAllOK(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	for !tree.Empty() {
		ok := tree.Delete(tree.Root().Key())
		assert.True(t, ok)
		require.NoError(t, tree.Validate())
	}

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
	assert.Nil(t, tree.Root())
	assert.Same(t, tree.sentinel, tree.sentinel.parent)
}

func TestRedBlackTreeDeleteNotExistingNode(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	before := slices.Collect(tree.LevelOrder())

	ok := tree.Delete(100)

	assert.False(t, ok)
	assert.Equal(t, 10, tree.Len())
	assert.Equal(t, before, slices.Collect(tree.LevelOrder()))
}

func TestRedBlackTreeDeleteTwice(t *testing.T) {
	tree := prePopulatedRedBlackTree()

	assert.True(t, tree.Delete(7))
	assert.False(t, tree.Contains(7))
	levelOrder := slices.Collect(tree.LevelOrder())

	assert.False(t, tree.Delete(7))
	assert.Equal(t, levelOrder, slices.Collect(tree.LevelOrder()))
	assert.Equal(t, 9, tree.Len())
}

func TestRedBlackTreeDuplicateKeys(t *testing.T) {
	tree := NewRedBlackTree()

	tree.Insert(7)
	tree.Insert(7)

	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 2, tree.Count(7))
	assert.Equal(t, []int{7, 7}, slices.Collect(tree.InOrder()))
	assert.NotSame(t, tree.root, tree.root.Right())
	assert.Equal(t, 7, tree.root.Right().Key())

	assert.True(t, tree.Delete(7))
	assert.True(t, tree.Contains(7))
	assert.True(t, tree.Delete(7))
	assert.False(t, tree.Contains(7))
	assert.NoError(t, tree.Validate())
}

func TestRedBlackTreeDeleteWithBlackSiblingFixups(t *testing.T) {
	tree := NewRedBlackTree()
	for i := 1; i <= 20; i++ {
		tree.Insert(i)
	}

	for _, k := range []int{1, 3, 5, 2, 20, 19, 10, 8, 4, 12} {
		require.True(t, tree.Delete(k), "delete %d", k)
		require.NoError(t, tree.Validate(), "after delete %d", k)
	}

	assert.Equal(t, []int{6, 7, 9, 11, 13, 14, 15, 16, 17, 18}, slices.Collect(tree.InOrder()))
}

func TestRedBlackTreeRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := NewRedBlackTree()
	counts := map[int]int{}

	for i := 0; i < 5000; i++ {
		key := r.Intn(300)
		if r.Intn(3) == 0 {
			removed := tree.Delete(key)
			assert.Equal(t, counts[key] > 0, removed)
			if removed {
				counts[key]--
			}
		} else {
			tree.Insert(key)
			counts[key]++
		}

		if i%50 == 0 {
			require.NoError(t, tree.Validate(), "operation %d", i)
		}
	}

	require.NoError(t, tree.Validate())

	var expected []int
	for k, c := range counts {
		for ; c > 0; c-- {
			expected = append(expected, k)
		}
		assert.Equal(t, counts[k], tree.Count(k))
	}
	slices.Sort(expected)

	assert.Equal(t, len(expected), tree.Len())
	assert.Equal(t, expected, slices.Collect(tree.InOrder()))
}

func TestRedBlackTreeHeightBound(t *testing.T) {
	sequential := NewRedBlackTree()
	random := NewRedBlackTree()
	r := rand.New(rand.NewSource(7))

	for n := 1; n <= 4096; n++ {
		sequential.Insert(n)
		random.Insert(r.Int())

		bound := 2 * math.Log2(float64(n+1))
		require.LessOrEqual(t, float64(sequential.Height()), bound, "sequential n=%d", n)
		require.LessOrEqual(t, float64(random.Height()), bound, "random n=%d", n)
	}

	assert.NoError(t, sequential.Validate())
	assert.NoError(t, random.Validate())
}

func TestRedBlackTreeValidateDetectsViolations(t *testing.T) {
	tree := prePopulatedRedBlackTree()
	setRed(tree.root)
	assert.Error(t, tree.Validate())

	tree = prePopulatedRedBlackTree()
	setBlack(tree.Find(6))
	assert.Error(t, tree.Validate())

	tree = prePopulatedRedBlackTree()
	tree.Find(8).key = 4
	assert.Error(t, tree.Validate())

	tree = prePopulatedRedBlackTree()
	setRed(tree.Find(2))
	setRed(tree.Find(1))
	assert.Error(t, tree.Validate())
}

func BenchmarkRedBlackTreeNodeRandomInsert(b *testing.B) {
	tree := NewRedBlackTree()

	for i := 0; i < b.N; i++ {
		tree.Insert(int(rand.Int31()))
	}
}

func BenchmarkRedBlackTreeGrowingSequenceInsert(b *testing.B) {
	tree := NewRedBlackTree()

	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}

func BenchmarkRedBlackTreeInsertDelete(b *testing.B) {
	tree := NewRedBlackTree()

	for i := 0; i < b.N; i++ {
		tree.Insert(i)
		if i%2 == 1 {
			tree.Delete(i - 1)
		}
	}
}

func BenchmarkRedBlackTreePreOrderSequenceInsertAndWalk(b *testing.B) {
	tree := NewRedBlackTree()
	gen := balancedTreeGenerator{Highest: uint(b.N << 1)}
	count := 0

	for i := 0; i < b.N; i++ {
		v, ok := gen.Next()
		if !ok {
			panic("generator failed to generate enough numbers")
		}
		tree.Insert(v)
	}

	for range tree.InOrder() {
		count++
	}

	assert.Equal(b, b.N, count)
}
