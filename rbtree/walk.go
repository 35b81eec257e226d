package rbtree

import (
	"fmt"
)

// InOrder calls fn for every node in ascending key order, equal keys in
// insertion order. Returning false from fn stops the walk.
func (t *Tree[K]) InOrder(fn func(id NodeID, key K) bool) {
	stack := make([]NodeID, 0, 32)
	cur := t.root
	for cur != NilNode || len(stack) > 0 {
		for cur != NilNode {
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur, t.nodes[cur].key) {
			return
		}
		cur = t.nodes[cur].right
	}
}

// Keys returns all keys in in-order sequence.
func (t *Tree[K]) Keys() []K {
	out := make([]K, 0, t.Len())
	t.InOrder(func(_ NodeID, k K) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K]) Height() int {
	if t.root == NilNode {
		return 0
	}
	type item struct {
		id    NodeID
		depth int
	}
	best := 0
	stack := []item{{t.root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > best {
			best = it.depth
		}
		if l := t.nodes[it.id].left; l != NilNode {
			stack = append(stack, item{l, it.depth + 1})
		}
		if r := t.nodes[it.id].right; r != NilNode {
			stack = append(stack, item{r, it.depth + 1})
		}
	}
	return best
}

// BlackHeight returns the black-height of the root: the number of Black
// nodes on a path from the root down to an absent-child position, counting
// the Black nil position and not counting the root itself. A lone root
// gives 1; an empty tree gives 0. The leftmost path is measured; in a valid
// tree every path gives the same count.
//
// Complexity: O(log n).
func (t *Tree[K]) BlackHeight() int {
	if t.root == NilNode {
		return 0
	}
	bh := 1 // nil
	for cur := t.nodes[t.root].left; cur != NilNode; cur = t.nodes[cur].left {
		if t.nodes[cur].color == Black {
			bh++
		}
	}
	return bh
}

// Validate checks all four red-black properties plus key order.
// It returns the first violation found, wrapped with the offending node.
func (t *Tree[K]) Validate() error {
	if t.root == NilNode {
		return nil
	}
	if t.nodes[t.root].color != Black {
		return fmt.Errorf("%w: root %d", ErrRootNotBlack, t.root)
	}
	if t.nodes[t.root].parent != NilNode {
		return fmt.Errorf("%w: root %d has parent %d", ErrParentLink, t.root, t.nodes[t.root].parent)
	}

	// post-order: black[id] is the black-height of id, nil included, id excluded
	black := make(map[NodeID]int, t.Len())
	seen := make(map[NodeID]bool, t.Len())
	type frame struct {
		id       NodeID
		expanded bool
	}
	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := t.nodes[top.id]

		if !top.expanded {
			if seen[top.id] {
				return fmt.Errorf("%w: node %d reachable twice", ErrParentLink, top.id)
			}
			seen[top.id] = true
			top.expanded = true
			id := top.id
			for _, c := range [2]NodeID{n.left, n.right} {
				if c == NilNode {
					continue
				}
				if t.nodes[c].parent != id {
					return fmt.Errorf("%w: node %d is a child of %d but names parent %d",
						ErrParentLink, c, id, t.nodes[c].parent)
				}
				if n.color == Red && t.nodes[c].color == Red {
					return fmt.Errorf("%w: %d and child %d", ErrRedViolation, id, c)
				}
				stack = append(stack, frame{id: c})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		lh, rh := t.pathBlack(n.left, black), t.pathBlack(n.right, black)
		if lh != rh {
			return fmt.Errorf("%w: node %d has %d left, %d right", ErrBlackHeight, top.id, lh, rh)
		}
		black[top.id] = lh
	}

	var prev K
	first := true
	var orderErr error
	t.InOrder(func(id NodeID, k K) bool {
		if !first && k < prev {
			orderErr = fmt.Errorf("%w: node %d key %v after %v", ErrOrder, id, k, prev)
			return false
		}
		prev, first = k, false
		return true
	})
	return orderErr
}

// pathBlack returns the black count contributed by child c to its parent's
// black-height: c itself if Black, plus c's own black-height. The nil
// position counts as one Black node.
func (t *Tree[K]) pathBlack(c NodeID, black map[NodeID]int) int {
	if c == NilNode {
		return 1
	}
	if t.nodes[c].color == Black {
		return black[c] + 1
	}
	return black[c]
}
