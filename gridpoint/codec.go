package gridpoint

import "fmt"

// Level is the dyadic resolution of a point in one dimension.
type Level = uint32

// Index locates a point within its level. Odd for level ≥ 1.
type Index = uint32

// MaxLevel bounds the level so that 2^level fits into an Index.
const MaxLevel Level = 31

const (
	panicParentLevelZero = "gridpoint: Parent: level 0 has no parent"
	panicInvalidPair     = "gridpoint: invalid (level, index) pair"
)

// Valid reports whether (l, i) is a legal pair: index 0 or 1 on level 0,
// an odd index in [1, 2^l-1] above.
func Valid(l Level, i Index) bool {
	if l == 0 {
		return i <= 1
	}
	if l > MaxLevel {
		return false
	}

	return i&1 == 1 && i < Index(1)<<l
}

// LeftChild returns the left child (l+1, 2i-1) of (l, i).
// For a level-0 pair the child is the level-1 root (1, 1).
func LeftChild(l Level, i Index) (Level, Index) {
	if l == 0 {
		return 1, 1
	}

	return l + 1, 2*i - 1
}

// RightChild returns the right child (l+1, 2i+1) of (l, i).
// For a level-0 pair the child is the level-1 root (1, 1).
func RightChild(l Level, i Index) (Level, Index) {
	if l == 0 {
		return 1, 1
	}

	return l + 1, 2*i + 1
}

// Parent returns the hierarchical parent (l-1, (i>>1)|1). Every level-1
// point maps to the right boundary anchor (0, 1).
// Panics on level 0.
func Parent(l Level, i Index) (Level, Index) {
	if l == 0 {
		panic(panicParentLevelZero)
	}
	if l == 1 {
		return 0, 1
	}

	return l - 1, (i >> 1) | 1
}

// LeftNeighbor returns the closest coarser point on the left of (l, i),
// i.e. the left end of its support. ok is false when that end is the left
// domain boundary. For level ≥ 1 only.
func LeftNeighbor(l Level, i Index) (Level, Index, bool) {
	return coarsest(l, i-1)
}

// RightNeighbor returns the closest coarser point on the right of (l, i).
// ok is false when that end is the right domain boundary.
func RightNeighbor(l Level, i Index) (Level, Index, bool) {
	if i+1 == Index(1)<<l {
		return 0, 0, false
	}

	return coarsest(l, i+1)
}

// coarsest reduces the even numerator j/2^l to lowest terms.
func coarsest(l Level, j Index) (Level, Index, bool) {
	if j == 0 {
		return 0, 0, false
	}
	for j&1 == 0 {
		j >>= 1
		l--
	}

	return l, j, true
}

// IsLeftBoundary reports whether (l, i) is the leftmost point of its level:
// index 0 on level 0, index 1 above.
func IsLeftBoundary(l Level, i Index) bool {
	if l == 0 {
		return i == 0
	}

	return i == 1
}

// IsRightBoundary reports whether (l, i) is the rightmost point of its level:
// index 1 on level 0, index 2^l-1 above.
func IsRightBoundary(l Level, i Index) bool {
	if l == 0 {
		return i == 1
	}

	return i == Index(1)<<l-1
}

// Coordinate returns the position i·2^-l of (l, i) in the unit interval.
func Coordinate(l Level, i Index) float64 {
	return float64(i) / float64(uint64(1)<<l)
}

// Support returns the interval [left, right] on which the hat function of
// (l, i) is non-zero. The level-0 anchors are supported on the whole line
// segment.
func Support(l Level, i Index) (left, right float64) {
	if l == 0 {
		return 0, 1
	}
	h := 1 / float64(uint64(1)<<l)
	x := float64(i) * h

	return x - h, x + h
}

// mustValid panics with a descriptive message on an invalid pair.
func mustValid(l Level, i Index) {
	if !Valid(l, i) {
		panic(fmt.Sprintf("%s (%d, %d)", panicInvalidPair, l, i))
	}
}
