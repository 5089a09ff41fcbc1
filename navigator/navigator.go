// Package navigator provides Navigator, a cursor over the implicit
// per-dimension binary trees of a sparse grid.
//
// Every move is unchecked codec arithmetic on the current point. A move may
// land on a point that is not stored (a missing child, a step past the last
// sibling); callers test Seq or Hint before trusting the position. A
// Navigator belongs to one traversal and is not safe for concurrent use.
package navigator

import (
	"github.com/katalvlaran/sparsegrid/gridpoint"
	"github.com/katalvlaran/sparsegrid/storage"
)

// Navigator is a mutable position inside one Storage.
type Navigator struct {
	st  *storage.Storage
	cur gridpoint.Point
	key []byte // reusable lookup key
}

// New returns a navigator positioned at the level-1 root of every dimension.
func New(st *storage.Storage) *Navigator {
	return &Navigator{
		st:  st,
		cur: gridpoint.New(st.Dim()),
		key: make([]byte, 0, 8*st.Dim()),
	}
}

// Storage returns the storage the navigator walks.
func (n *Navigator) Storage() *storage.Storage { return n.st }

// Dim returns the number of dimensions.
func (n *Navigator) Dim() int { return n.cur.Dim() }

// Get returns the current (level, index) pair of dimension d.
func (n *Navigator) Get(d int) (gridpoint.Level, gridpoint.Index) { return n.cur.Get(d) }

// Set moves dimension d to (l, i). Panics on an invalid pair.
func (n *Navigator) Set(d int, l gridpoint.Level, i gridpoint.Index) { n.cur.Set(d, l, i) }

// Point returns a copy of the current point.
func (n *Navigator) Point() gridpoint.Point { return n.cur.Clone() }

// MoveTo positions the navigator at p.
func (n *Navigator) MoveTo(p gridpoint.Point) { n.cur.CopyFrom(p) }

// Seq returns the sequence number of the current point. ok is false if the
// point is not stored.
func (n *Navigator) Seq() (seq int, ok bool) {
	n.key = n.cur.AppendKey(n.key[:0])

	return n.st.FindKey(n.key)
}

// Exists reports whether the current point is stored.
func (n *Navigator) Exists() bool {
	_, ok := n.Seq()

	return ok
}

// LeftChild descends to the left child in dimension d. From level 0 it
// descends to the level-1 root.
func (n *Navigator) LeftChild(d int) {
	l, i := n.cur.Get(d)
	l, i = gridpoint.LeftChild(l, i)
	n.cur.Put(d, l, i)
}

// RightChild descends to the right child in dimension d. From level 0 it
// descends to the level-1 root.
func (n *Navigator) RightChild(d int) {
	l, i := n.cur.Get(d)
	l, i = gridpoint.RightChild(l, i)
	n.cur.Put(d, l, i)
}

// Up ascends to the parent in dimension d. From level 1 it lands on the
// right boundary anchor (0, 1). Panics on level 0.
func (n *Navigator) Up(d int) {
	l, i := n.cur.Get(d)
	l, i = gridpoint.Parent(l, i)
	n.cur.Put(d, l, i)
}

// StepLeft moves to the previous point of the same level in dimension d.
func (n *Navigator) StepLeft(d int) {
	l, i := n.cur.Get(d)
	n.cur.Put(d, l, i-2)
}

// StepRight moves to the next point of the same level in dimension d.
func (n *Navigator) StepRight(d int) {
	l, i := n.cur.Get(d)
	n.cur.Put(d, l, i+2)
}

// LeftLevelZero jumps to the left boundary anchor (0, 0) of dimension d.
func (n *Navigator) LeftLevelZero(d int) { n.cur.Put(d, 0, 0) }

// RightLevelZero jumps to the right boundary anchor (0, 1) of dimension d.
func (n *Navigator) RightLevelZero(d int) { n.cur.Put(d, 0, 1) }

// Top jumps to the level-1 root (1, 1) of dimension d.
func (n *Navigator) Top(d int) { n.cur.Put(d, 1, 1) }

// ResetToLevelOne moves every dimension to the level-1 root.
func (n *Navigator) ResetToLevelOne() {
	for d := 0; d < n.cur.Dim(); d++ {
		n.cur.Put(d, 1, 1)
	}
}

// ResetToLevelZero moves every dimension to the left boundary anchor.
func (n *Navigator) ResetToLevelZero() {
	for d := 0; d < n.cur.Dim(); d++ {
		n.cur.Put(d, 0, 0)
	}
}

// Hint reports whether the current point is a leaf in dimension d: both
// children are absent. On a level-0 anchor it reports whether the level-1
// root of d is absent.
func (n *Navigator) Hint(d int) bool {
	return !n.HasLeftChild(d) && !n.HasRightChild(d)
}

// HasLeftChild reports whether the left child in dimension d is stored.
// The position is unchanged.
func (n *Navigator) HasLeftChild(d int) bool {
	return n.probe(d, gridpoint.LeftChild)
}

// HasRightChild reports whether the right child in dimension d is stored.
// The position is unchanged.
func (n *Navigator) HasRightChild(d int) bool {
	return n.probe(d, gridpoint.RightChild)
}

func (n *Navigator) probe(d int, step func(gridpoint.Level, gridpoint.Index) (gridpoint.Level, gridpoint.Index)) bool {
	l, i := n.cur.Get(d)
	cl, ci := step(l, i)
	n.cur.Put(d, cl, ci)
	ok := n.Exists()
	n.cur.Put(d, l, i)

	return ok
}
