package tree

import (
	"github.com/pkg/errors"
)

// Validate checks the red black properties of the tree and the
// ordering of its keys. It returns nil when all of them hold and
// the first violation found otherwise.
func (t *Tree) Validate() error {
	if isRed(t.sentinel) {
		return errors.New("sentinel is red")
	}

	if t.Empty() {
		return nil
	}

	if isNotSentinel(t.root.parent) {
		return errors.Errorf("root %d has parent %d", t.root.key, t.root.parent.key)
	}

	if isRed(t.root) {
		return errors.Errorf("root %d is red", t.root.key)
	}

	if _, err := t.blackHeight(t.root); err != nil {
		return err
	}

	var (
		prev  int
		first = true
		err   error
	)
	t.InOrderWalk(func(n *Node) bool {
		if !first && n.key < prev {
			err = errors.Errorf("key %d found after key %d", n.key, prev)
			return false
		}

		prev, first = n.key, false
		return true
	})

	return err
}

// blackHeight returns the number of black nodes on every path from
// n to a sentinel, n excluded
func (t *Tree) blackHeight(n *Node) (int, error) {
	if isSentinel(n) {
		return 0, nil
	}

	for _, child := range []*Node{n.left, n.right} {
		if isNotSentinel(child) && child.parent != n {
			return 0, errors.Errorf("node %d is not the parent of its child %d", n.key, child.key)
		}

		if isRed(n) && isRed(child) {
			return 0, errors.Errorf("red node %d has red child %d", n.key, child.key)
		}
	}

	left, err := t.blackHeight(n.left)
	if err != nil {
		return 0, err
	}

	right, err := t.blackHeight(n.right)
	if err != nil {
		return 0, err
	}

	if isBlack(n.left) {
		left++
	}
	if isBlack(n.right) {
		right++
	}

	if left != right {
		return 0, errors.Errorf("node %d has black height %d on the left and %d on the right",
			n.key, left, right)
	}

	return left, nil
}
