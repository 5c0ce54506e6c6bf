package tree

import (
	"iter"

	"github.com/eapache/queue"
)

// InOrder returns the keys of the tree in ascending order. The
// sequence is evaluated lazily and can be ranged over any number
// of times. The tree must not be modified while it is iterated.
func (t *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		t.InOrderWalk(func(n *Node) bool {
			return yield(n.key)
		})
	}
}

// LevelOrder returns the keys of the tree in breadth first
// order, from the root down, left to right within a level.
func (t *Tree) LevelOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		t.LevelOrderWalk(func(n *Node) bool {
			return yield(n.key)
		})
	}
}

// LevelOrderWalk calls fn for every node of the tree in breadth
// first order until fn returns false.
func (t *Tree) LevelOrderWalk(fn func(*Node) bool) {
	if t.Empty() {
		return
	}

	pending := queue.New()
	pending.Add(t.root)

	for pending.Length() > 0 {
		n := pending.Remove().(*Node)
		if !fn(n) {
			return
		}

		if isNotSentinel(n.left) {
			pending.Add(n.left)
		}
		if isNotSentinel(n.right) {
			pending.Add(n.right)
		}
	}
}

// InOrderWalk calls fn for every node of the tree in ascending
// key order until fn returns false.
func (t *Tree) InOrderWalk(fn func(*Node) bool) {
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if isSentinel(n) {
			return true
		}

		return walk(n.left) && fn(n) && walk(n.right)
	}

	walk(t.root)
}
