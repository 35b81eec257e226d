// Package rbtree implements an insert-only red-black tree over ordered keys.
//
// What:
//
//   - Insert places a Red node by ordinary ordered descent and restores the
//     red-black properties with the classic recolor/rotate fixup.
//   - Keys equal to an existing key descend to the right, so the tree is an
//     ordered multiset: equal keys come out of InOrder in insertion order.
//   - Nodes live in an arena and refer to each other by NodeID; the parent
//     link is a plain index and never owns anything.
//
// Properties restored after every Insert:
//
//  1. The root is Black.
//  2. A Red node has no Red child.
//  3. Every downward path to a nil position holds the same number of Black nodes.
//  4. Every non-root node's parent holds it as a child.
//
// There is no delete and no lookup by key. Reads go through Root, Left,
// Right, Parent, Key, Color, InOrder and Validate.
//
// Hooks:
//
//   - WithOnRotate(fn)  observes every rotation performed by the fixup
//   - WithOnRecolor(fn) observes every color change
//   - WithCapacity(n)   pre-sizes the arena
//
// Complexity:
//
//   - Insert:   O(log n) time, O(1) amortized extra memory
//   - InOrder:  O(n) time, O(h) memory
//   - Validate: O(n) time, O(n) memory
//
// Errors (Validate):
//
//   - ErrRootNotBlack  root is Red
//   - ErrRedViolation  Red node with a Red child
//   - ErrBlackHeight   unequal Black count along two paths
//   - ErrParentLink    parent/child links disagree or a node is reachable twice
//   - ErrOrder         in-order keys are not non-decreasing
package rbtree
