package ingest

import (
	"container/list"
)

// Record is one row, keyed by normalized column name.
type Record map[string]string

// Node holds one Record inside a RecordList.
type Node struct {
	Record Record
	elem   *list.Element
}

// Next returns the following node, or nil at the tail.
func (n *Node) Next() *Node {
	return nodeOf(n.elem.Next())
}

// Prev returns the preceding node, or nil at the head.
func (n *Node) Prev() *Node {
	return nodeOf(n.elem.Prev())
}

func nodeOf(e *list.Element) *Node {
	if e == nil {
		return nil
	}
	return e.Value.(*Node)
}

// RecordList is an append-only doubly linked list of records in input order.
// The zero value is an empty list ready to use.
type RecordList struct {
	l list.List
}

// Append adds rec at the tail and returns its node.
func (rl *RecordList) Append(rec Record) *Node {
	n := &Node{Record: rec}
	n.elem = rl.l.PushBack(n)
	return n
}

// Front returns the head node, or nil when empty.
func (rl *RecordList) Front() *Node { return nodeOf(rl.l.Front()) }

// Back returns the tail node, or nil when empty.
func (rl *RecordList) Back() *Node { return nodeOf(rl.l.Back()) }

// Len returns the number of records.
func (rl *RecordList) Len() int { return rl.l.Len() }

// Each calls fn for every record from head to tail; returning false stops.
func (rl *RecordList) Each(fn func(i int, rec Record) bool) {
	i := 0
	for n := rl.Front(); n != nil; n = n.Next() {
		if !fn(i, n.Record) {
			return
		}
		i++
	}
}
