package tree

type color uint

const (
	red   color = 0
	black color = 1
)

func isRed(n *Node) bool {
	return color(n.metadata&0x00000001) == red
}

func isBlack(n *Node) bool {
	return color(n.metadata&0x00000001) == black
}

func copyColor(dest *Node, source *Node) {
	dest.metadata = (dest.metadata & 0xfffffffe) | (source.metadata & 0x00000001)
}

func setRed(n *Node) {
	n.metadata = n.metadata & 0xfffffffe
}

func setBlack(n *Node) {
	n.metadata = n.metadata | 0x00000001
}

// fixInsert restores the red black properties after n was
// linked as a red leaf. The only property that can be broken
// is a red node with a red parent.
func (t *Tree) fixInsert(n *Node) {
	setRed(n)

	for isRed(n.parent) {
		if n.parent == n.parent.parent.left {
			uncle := n.parent.parent.right
			if isRed(uncle) {
				setBlack(n.parent)
				setBlack(uncle)
				setRed(n.parent.parent)
				n = n.parent.parent
				continue
			}

			if n == n.parent.right {
				n = n.parent
				t.leftRotateNode(n)
			}

			setBlack(n.parent)
			setRed(n.parent.parent)
			t.rightRotateNode(n.parent.parent)
		} else {
			uncle := n.parent.parent.left
			if isRed(uncle) {
				setBlack(n.parent)
				setBlack(uncle)
				setRed(n.parent.parent)
				n = n.parent.parent
				continue
			}

			if n == n.parent.left {
				n = n.parent
				t.rightRotateNode(n)
			}

			setBlack(n.parent)
			setRed(n.parent.parent)
			t.leftRotateNode(n.parent.parent)
		}
	}

	setBlack(t.root)
}

// deleteNode splices n out of the tree. When n has two children
// its successor takes its place and its color.
func (t *Tree) deleteNode(n *Node) {
	var target *Node
	wasNodeBlack := isBlack(n)

	switch {
	case isSentinel(n.left):
		target = n.right
		t.transplant(n, target)
	case isSentinel(n.right):
		target = n.left
		t.transplant(n, target)
	default:
		min := n.right.min()
		wasNodeBlack = isBlack(min)
		target = min.right

		if min.parent == n {
			target.parent = min
		} else {
			t.transplant(min, min.right)
			min.right = n.right
			min.right.parent = min
		}

		t.transplant(n, min)
		min.left = n.left
		min.left.parent = min
		copyColor(min, n)
	}

	if wasNodeBlack {
		t.fixDelete(target)
	}

	t.sentinel.parent = t.sentinel
	n.left, n.right, n.parent = nil, nil, nil
}

// fixDelete pushes the extra black carried by n up the tree
// until it can be absorbed by a red node, by the root, or by a
// rotation. n may be the sentinel.
func (t *Tree) fixDelete(n *Node) {
	for n != t.root && isBlack(n) {
		if n == n.parent.left {
			sibling := n.parent.right
			if isRed(sibling) {
				setBlack(sibling)
				setRed(n.parent)
				t.leftRotateNode(n.parent)
				sibling = n.parent.right
			}

			switch {
			case isBlack(sibling.left) && isBlack(sibling.right):
				setRed(sibling)
				n = n.parent
			default:
				if isBlack(sibling.right) {
					setBlack(sibling.left)
					setRed(sibling)
					t.rightRotateNode(sibling)
					sibling = n.parent.right
				}

				copyColor(sibling, n.parent)
				setBlack(n.parent)
				setBlack(sibling.right)
				t.leftRotateNode(n.parent)
				n = t.root
			}
		} else {
			sibling := n.parent.left
			if isRed(sibling) {
				setBlack(sibling)
				setRed(n.parent)
				t.rightRotateNode(n.parent)
				sibling = n.parent.left
			}

			switch {
			case isBlack(sibling.left) && isBlack(sibling.right):
				setRed(sibling)
				n = n.parent
			default:
				if isBlack(sibling.left) {
					setBlack(sibling.right)
					setRed(sibling)
					t.leftRotateNode(sibling)
					sibling = n.parent.left
				}

				copyColor(sibling, n.parent)
				setBlack(n.parent)
				setBlack(sibling.left)
				t.rightRotateNode(n.parent)
				n = t.root
			}
		}
	}

	// ensure that if node is the root of the tree it will
	// remain black after a call to fixDelete
	setBlack(n)
}
