package rbtree

import (
	"errors"
)

// Color is the color of a tree node.
type Color uint8

const (
	// Red marks a freshly inserted or recolored node.
	Red Color = iota
	// Black marks a node counted in the black-height.
	Black
)

// String returns "red" or "black".
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// NodeID addresses a node inside a Tree's arena.
type NodeID int32

// NilNode is the absent position. It is always Black.
const NilNode NodeID = 0

// Direction names the way a rotation turns.
type Direction uint8

const (
	// Left rotation: the pivot's right child takes its place.
	Left Direction = iota
	// Right rotation: the pivot's left child takes its place.
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Rotation describes one rotation performed by the fixup.
type Rotation struct {
	Dir Direction
	// Pivot is the node that moved down.
	Pivot NodeID
	// Child is the node that moved up into Pivot's place.
	Child NodeID
}

// Sentinel errors reported by Validate.
var (
	// ErrRootNotBlack indicates the root is Red.
	ErrRootNotBlack = errors.New("rbtree: root is not black")

	// ErrRedViolation indicates a Red node with a Red child.
	ErrRedViolation = errors.New("rbtree: red node has red child")

	// ErrBlackHeight indicates two downward paths with different black counts.
	ErrBlackHeight = errors.New("rbtree: black-height mismatch")

	// ErrParentLink indicates inconsistent parent/child references.
	ErrParentLink = errors.New("rbtree: parent link mismatch")

	// ErrOrder indicates keys out of order.
	ErrOrder = errors.New("rbtree: keys out of order")
)

// Option configures a Tree at construction.
type Option func(*TreeOptions)

// TreeOptions holds construction-time settings and hooks.
type TreeOptions struct {
	// OnRotate is called after each completed rotation.
	OnRotate func(Rotation)

	// OnRecolor is called whenever a node changes color.
	OnRecolor func(id NodeID, c Color)

	// Capacity pre-sizes the node arena.
	Capacity int
}

// DefaultOptions returns TreeOptions with no-op hooks and no pre-sizing.
func DefaultOptions() TreeOptions {
	return TreeOptions{
		OnRotate:  func(Rotation) {},
		OnRecolor: func(NodeID, Color) {},
		Capacity:  0,
	}
}

// WithOnRotate installs fn as the rotation observer. A nil fn is ignored.
func WithOnRotate(fn func(Rotation)) Option {
	return func(o *TreeOptions) {
		if fn != nil {
			o.OnRotate = fn
		}
	}
}

// WithOnRecolor installs fn as the recolor observer. A nil fn is ignored.
func WithOnRecolor(fn func(id NodeID, c Color)) Option {
	return func(o *TreeOptions) {
		if fn != nil {
			o.OnRecolor = fn
		}
	}
}

// WithCapacity pre-sizes the arena for n keys. Negative n is treated as 0.
func WithCapacity(n int) Option {
	return func(o *TreeOptions) {
		if n < 0 {
			n = 0
		}
		o.Capacity = n
	}
}
