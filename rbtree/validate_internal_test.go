package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourNode builds 20(B) -> 10(B), 30(B) -> 40(R) and returns the ids in key order.
func fourNode(t *testing.T) (*Tree[int], [4]NodeID) {
	t.Helper()
	tr := New[int]()
	var ids [4]NodeID
	for i, k := range []int{10, 20, 30, 40} {
		ids[i] = tr.Insert(k)
	}
	require.NoError(t, tr.Validate())
	require.Equal(t, ids[1], tr.Root())
	require.Equal(t, ids[3], tr.nodes[ids[2]].right)
	return tr, ids
}

func TestRotate_NoOpWithoutChild(t *testing.T) {
	var rotations int
	tr := New[int](WithOnRotate(func(Rotation) { rotations++ }))
	a := tr.Insert(1)
	before := append([]node[int](nil), tr.nodes...)

	tr.rotateLeft(a)
	tr.rotateRight(a)

	assert.Equal(t, before, tr.nodes)
	assert.Equal(t, a, tr.root)
	assert.Zero(t, rotations)
}

func TestRotate_LeftThenRightRestores(t *testing.T) {
	tr, ids := fourNode(t)
	before := append([]node[int](nil), tr.nodes...)

	tr.rotateLeft(ids[2])
	assert.Equal(t, ids[3], tr.nodes[ids[1]].right)
	assert.Equal(t, ids[2], tr.nodes[ids[3]].left)
	assert.Equal(t, ids[3], tr.nodes[ids[2]].parent)

	tr.rotateRight(ids[3])
	assert.Equal(t, before, tr.nodes)
}

func TestRotate_AtRootMovesRoot(t *testing.T) {
	tr, ids := fourNode(t)
	tr.rotateRight(ids[1])
	assert.Equal(t, ids[0], tr.root)
	assert.Equal(t, NilNode, tr.nodes[ids[0]].parent)
	assert.Equal(t, []int{10, 20, 30, 40}, tr.Keys())
}

func TestValidate_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(tr *Tree[int], ids [4]NodeID)
		want    error
	}{
		{"red root", func(tr *Tree[int], ids [4]NodeID) {
			tr.nodes[ids[1]].color = Red
		}, ErrRootNotBlack},
		{"red red", func(tr *Tree[int], ids [4]NodeID) {
			tr.nodes[ids[2]].color = Red
		}, ErrRedViolation},
		{"black height", func(tr *Tree[int], ids [4]NodeID) {
			tr.nodes[ids[3]].color = Black
		}, ErrBlackHeight},
		{"parent link", func(tr *Tree[int], ids [4]NodeID) {
			tr.nodes[ids[3]].parent = ids[0]
		}, ErrParentLink},
		{"root with parent", func(tr *Tree[int], ids [4]NodeID) {
			tr.nodes[ids[1]].parent = ids[2]
		}, ErrParentLink},
		{"order", func(tr *Tree[int], ids [4]NodeID) {
			tr.nodes[ids[0]].key, tr.nodes[ids[2]].key = 30, 10
		}, ErrOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, ids := fourNode(t)
			tc.corrupt(tr, ids)
			assert.ErrorIs(t, tr.Validate(), tc.want)
		})
	}
}

func TestSetColor_IgnoresSentinelAndNoChange(t *testing.T) {
	var calls int
	tr := New[int](WithOnRecolor(func(NodeID, Color) { calls++ }))
	id := tr.Insert(1)
	// the insert itself recolored the new root Black
	require.Equal(t, 1, calls)
	calls = 0

	tr.setColor(NilNode, Red)
	tr.setColor(id, Black)
	assert.Equal(t, Black, tr.nodes[NilNode].color)
	assert.Zero(t, calls)

	tr.setColor(id, Red)
	assert.Equal(t, 1, calls)
}
