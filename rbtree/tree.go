package rbtree

import (
	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/constraints"
)

// node is one arena slot. Slot 0 is the Black nil sentinel and is never written.
type node[K constraints.Ordered] struct {
	key                 K
	color               Color
	left, right, parent NodeID
}

// Tree is an insert-only red-black tree. The zero value is not usable; call New.
// A Tree must not be mutated concurrently; once building is done it may be
// read from any number of goroutines.
type Tree[K constraints.Ordered] struct {
	nodes []node[K]
	root  NodeID
	opts  TreeOptions
}

// New returns an empty tree configured by opts.
// With WithCapacity(n) the first n inserts do not grow the arena.
func New[K constraints.Ordered](opts ...Option) *Tree[K] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	nodes := make([]node[K], 1, o.Capacity+1)
	nodes[NilNode].color = Black
	return &Tree[K]{nodes: nodes, root: NilNode, opts: o}
}

// Insert adds key and returns the NodeID of the new node.
//
// Steps:
//  1. Descend from the root: go left when key < node key, right otherwise.
//  2. Attach a Red node at the nil position reached.
//  3. Run the fixup to restore the red-black properties.
//
// Equal keys are allowed and go right of every earlier peer, so they come
// back from InOrder in insertion order. The returned NodeID stays valid for
// the life of the tree; rotations relink nodes but never move them.
//
// Complexity: O(log n) time, at most two rotations per insert; O(1)
// amortized arena growth.
func (t *Tree[K]) Insert(key K) NodeID {
	z := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[K]{key: key, color: Red})

	y, x := NilNode, t.root
	for x != NilNode {
		y = x
		if key < t.nodes[x].key {
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}

	t.nodes[z].parent = y
	switch {
	case y == NilNode:
		t.root = z
	case key < t.nodes[y].key:
		t.nodes[y].left = z
	default:
		t.nodes[y].right = z
	}

	t.fixInsert(z)
	return z
}

// fixInsert restores the red-black properties after z was attached Red.
//
// While z's parent is Red:
//   - Red uncle: parent and uncle turn Black, grandparent Red, continue at
//     the grandparent.
//   - Black or absent uncle: if z is an inner child, rotate it outward at the
//     parent; then parent turns Black, grandparent Red, and the grandparent
//     rotates the other way. The parent is now Black, ending the loop.
//
// The root is recolored Black at the end.
func (t *Tree[K]) fixInsert(z NodeID) {
	for t.Color(t.nodes[z].parent) == Red {
		p := t.nodes[z].parent
		g := t.nodes[p].parent
		assert.Assertf(g != NilNode, "rbtree: red node %d has no grandparent", p)

		if p == t.nodes[g].left {
			u := t.nodes[g].right
			if t.Color(u) == Red {
				t.setColor(p, Black)
				t.setColor(u, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.nodes[p].right {
				z = p
				t.rotateLeft(z)
				p = t.nodes[z].parent
			}
			t.setColor(p, Black)
			t.setColor(g, Red)
			t.rotateRight(g)
		} else {
			u := t.nodes[g].left
			if t.Color(u) == Red {
				t.setColor(p, Black)
				t.setColor(u, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.nodes[p].left {
				z = p
				t.rotateRight(z)
				p = t.nodes[z].parent
			}
			t.setColor(p, Black)
			t.setColor(g, Red)
			t.rotateLeft(g)
		}
	}
	t.setColor(t.root, Black)
}

// setColor recolors id and reports the change. The nil sentinel is left alone.
func (t *Tree[K]) setColor(id NodeID, c Color) {
	if id == NilNode || t.nodes[id].color == c {
		return
	}
	t.nodes[id].color = c
	t.opts.OnRecolor(id, c)
}

// rotateLeft rotates around x:
//
//	  P              P
//	  |              |
//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func (t *Tree[K]) rotateLeft(x NodeID) {
	t.rotate(x, Left)
}

// rotateRight rotates around y:
//
//	    P            P
//	    |            |
//	    y            x
//	   / \          / \
//	  x   c   =>   a   y
//	 / \              / \
//	a   b            b   c
func (t *Tree[K]) rotateRight(y NodeID) {
	t.rotate(y, Right)
}

// rotate moves pivot's child on the opposite side of dir into pivot's place.
// It is a no-op when that child is absent.
func (t *Tree[K]) rotate(pivot NodeID, dir Direction) {
	n := t.nodes
	var child NodeID
	if dir == Left {
		child = n[pivot].right
	} else {
		child = n[pivot].left
	}
	if child == NilNode {
		return
	}

	// inner subtree changes sides
	var inner NodeID
	if dir == Left {
		inner = n[child].left
		n[pivot].right = inner
	} else {
		inner = n[child].right
		n[pivot].left = inner
	}
	if inner != NilNode {
		n[inner].parent = pivot
	}

	// child takes pivot's slot under the grandparent
	up := n[pivot].parent
	n[child].parent = up
	switch {
	case up == NilNode:
		t.root = child
	case n[up].left == pivot:
		n[up].left = child
	default:
		n[up].right = child
	}

	if dir == Left {
		n[child].left = pivot
	} else {
		n[child].right = pivot
	}
	n[pivot].parent = child

	assert.Assertf(up == NilNode || n[up].left == child || n[up].right == child,
		"rbtree: rotation at %d left parent %d detached", pivot, up)
	t.opts.OnRotate(Rotation{Dir: dir, Pivot: pivot, Child: child})
}

// Root returns the root NodeID, NilNode when the tree is empty.
func (t *Tree[K]) Root() NodeID { return t.root }

// Len returns the number of inserted keys.
func (t *Tree[K]) Len() int { return len(t.nodes) - 1 }

// Key returns the key stored at id.
// Like every accessor below, it panics when id is outside the arena; NilNode
// is in range and holds the zero key.
func (t *Tree[K]) Key(id NodeID) K {
	t.check(id)
	return t.nodes[id].key
}

// Color returns the color of id. NilNode is Black.
func (t *Tree[K]) Color(id NodeID) Color {
	t.check(id)
	return t.nodes[id].color
}

// Left returns the left child of id, or NilNode.
func (t *Tree[K]) Left(id NodeID) NodeID {
	t.check(id)
	return t.nodes[id].left
}

// Right returns the right child of id, or NilNode.
func (t *Tree[K]) Right(id NodeID) NodeID {
	t.check(id)
	return t.nodes[id].right
}

// Parent returns the parent of id, or NilNode for the root.
func (t *Tree[K]) Parent(id NodeID) NodeID {
	t.check(id)
	return t.nodes[id].parent
}

func (t *Tree[K]) check(id NodeID) {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "rbtree: node %d out of range [0,%d)", id, len(t.nodes))
}
