package tree

const sentinelValue = 0xa0000000

func isNotSentinel(n *Node) bool {
	return n.metadata&sentinelValue != sentinelValue
}

func isSentinel(n *Node) bool {
	return n.metadata&sentinelValue == sentinelValue
}

func newSentinelNode() *Node {
	n := &Node{metadata: sentinelValue}
	setBlack(n)
	return n
}

func nilIfSentinel(n *Node) *Node {
	if n == nil || isSentinel(n) {
		return nil
	}

	return n
}

// Node of a tree
type Node struct {
	key int

	metadata uint
	left     *Node
	right    *Node
	parent   *Node
}

// Key returns the key stored in the node
func (n *Node) Key() int {
	return n.key
}

// Left returns the node's left child
func (n *Node) Left() *Node {
	return nilIfSentinel(n.left)
}

// Right returns the node's right child
func (n *Node) Right() *Node {
	return nilIfSentinel(n.right)
}

// Parent returns the node's parent
func (n *Node) Parent() *Node {
	return nilIfSentinel(n.parent)
}

// min returns the node of the lowest order in the subtree
// rooted at n. n must not be a sentinel.
func (n *Node) min() *Node {
	curr := n
	for isNotSentinel(curr.left) {
		curr = curr.left
	}

	return curr
}

func (n *Node) max() *Node {
	curr := n
	for isNotSentinel(curr.right) {
		curr = curr.right
	}

	return curr
}

// Tree is a red black binary search tree of integer keys.
// A Tree is not safe for concurrent use, callers must
// serialize reads and writes themselves.
type Tree struct {
	root     *Node
	sentinel *Node
	len      int
}

// NewRedBlackTree creates an empty tree. The branches of the
// tree are balanced using the red black node algorithm.
func NewRedBlackTree() *Tree {
	s := newSentinelNode()
	s.left = s
	s.right = s
	s.parent = s
	return &Tree{root: s, sentinel: s}
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree) Empty() bool {
	return isSentinel(t.root)
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree) Root() *Node {
	return nilIfSentinel(t.root)
}

// Min returns the node in the tree with the
// lowest key. It returns nil if the tree
// is empty
func (t *Tree) Min() *Node {
	if t.Empty() {
		return nil
	}

	return t.root.min()
}

// Max returns the node in the tree with the
// highest key. It returns nil if tree
// is empty
func (t *Tree) Max() *Node {
	if t.Empty() {
		return nil
	}

	return t.root.max()
}

// Find returns the first node on the search path from
// the root that holds key, or nil
func (t *Tree) Find(key int) *Node {
	curr := t.root
	for isNotSentinel(curr) && curr.key != key {
		if key < curr.key {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return nilIfSentinel(curr)
}

// Contains returns true if the tree holds at
// least one node with the key
func (t *Tree) Contains(key int) bool {
	return t.Find(key) != nil
}

// Count returns the number of nodes holding key.
func (t *Tree) Count(key int) int {
	return countSubtree(t.root, key)
}

// countSubtree relies on left <= node <= right, which rotations
// preserve for equal keys.
func countSubtree(n *Node, key int) int {
	if isSentinel(n) {
		return 0
	}

	switch {
	case key < n.key:
		return countSubtree(n.left, key)
	case key > n.key:
		return countSubtree(n.right, key)
	default:
		return 1 + countSubtree(n.left, key) + countSubtree(n.right, key)
	}
}

// Height returns the number of nodes on the longest path
// from the root to a leaf
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if isSentinel(n) {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Insert a key into the tree. Keys already present are
// inserted again as new nodes.
func (t *Tree) Insert(key int) {
	n := &Node{
		key:    key,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: t.sentinel,
	}

	t.bstInsert(n)
	t.fixInsert(n)
	t.len++
}

// Delete the first node on the search path that holds
// key. It returns false and leaves the tree untouched
// when the key is absent
func (t *Tree) Delete(key int) bool {
	n := t.Find(key)
	if n == nil {
		return false
	}

	t.deleteNode(n)
	t.len--
	return true
}
