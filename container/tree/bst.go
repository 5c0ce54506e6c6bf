package tree

// bstInsert links n into the tree preserving the Binary Search
// Tree properties but without applying any balancing algorithm.
// Equal keys descend to the right.
func (t *Tree) bstInsert(n *Node) {
	parent := t.sentinel
	isLeft := false

	for curr := t.root; isNotSentinel(curr); {
		parent = curr
		isLeft = n.key < curr.key
		if isLeft {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	n.parent = parent

	switch {
	case isSentinel(parent):
		t.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}
}

// transplant replaces u as a child of its parent with v. v may
// be the sentinel, in which case the sentinel keeps a transient
// reference to u's parent.
func (t *Tree) transplant(u *Node, v *Node) {
	t.replaceChild(u, v)
	v.parent = u.parent
}
