package export

import (
	"bufio"
	"io"
)

const (
	connLast  = "└─ "
	connMid   = "├─ "
	padLast   = "   "
	padMid    = "│  "
	labelSep  = " ("
	labelTail = ")\n"
)

// Outline writes a preorder outline of src to w, one node per line:
//
//	└─ 20 (black)
//	   ├─ 10 (red)
//	   └─ 30 (red)
//
// The root and every right child use the closing connector; a left child
// always uses the branching one, even when its right sibling is absent.
// An empty tree writes nothing. A node reachable twice is printed once.
//
// Errors: ErrNilSource for a nil src, otherwise the first write error of w.
//
// Complexity: O(n) nodes; output size is O(n·h) for tree height h, because
// each line repeats its ancestors' indentation.
func Outline(w io.Writer, src Source) error {
	if src == nil {
		return ErrNilSource
	}
	root := src.Root()
	if root == None {
		return nil
	}

	type frame struct {
		id     ID
		indent string
		last   bool
	}
	bw := bufio.NewWriter(w)
	visited := make(map[ID]bool)
	stack := []frame{{id: root, last: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		conn, pad := connMid, padMid
		if f.last {
			conn, pad = connLast, padLast
		}
		bw.WriteString(f.indent)
		bw.WriteString(conn)
		bw.WriteString(src.Label(f.id))
		bw.WriteString(labelSep)
		bw.WriteString(src.Color(f.id))
		bw.WriteString(labelTail)

		// right is pushed first so the left subtree prints first
		child := f.indent + pad
		if r := src.Right(f.id); r != None {
			stack = append(stack, frame{id: r, indent: child, last: true})
		}
		if l := src.Left(f.id); l != None {
			stack = append(stack, frame{id: l, indent: child, last: false})
		}
	}
	return bw.Flush()
}
