package tree

// leftRotateNode promotes n.right into the position of n. n becomes
// the left child of the promoted node and inherits its former left
// subtree. It is a no-op when n has no right child.
func (t *Tree) leftRotateNode(n *Node) {
	target := n.right
	if isSentinel(target) {
		return
	}

	n.right = target.left
	if isNotSentinel(target.left) {
		target.left.parent = n
	}
	target.parent = n.parent
	t.replaceChild(n, target)

	target.left = n
	n.parent = target
}

// rightRotateNode is the mirror of leftRotateNode
func (t *Tree) rightRotateNode(n *Node) {
	target := n.left
	if isSentinel(target) {
		return
	}

	n.left = target.right
	if isNotSentinel(target.right) {
		target.right.parent = n
	}
	target.parent = n.parent
	t.replaceChild(n, target)

	target.right = n
	n.parent = target
}

// replaceChild points the link that referenced old, either
// a child slot of its parent or the root, to n
func (t *Tree) replaceChild(old, n *Node) {
	switch {
	case isSentinel(old.parent):
		t.root = n
	case old == old.parent.left:
		old.parent.left = n
	case old == old.parent.right:
		old.parent.right = n
	default:
		panic("unreachable statement")
	}
}
