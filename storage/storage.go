package storage

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/sparsegrid/gridpoint"
)

// Storage maps grid points to dense sequence numbers and back.
type Storage struct {
	mu     sync.RWMutex      // guards seqs and points
	dim    int               // ambient dimension, fixed at construction
	seqs   map[string]int    // key -> sequence number
	points []gridpoint.Point // sequence number -> point
}

// New returns an empty storage for dim-dimensional points.
func New(dim int) (*Storage, error) {
	if dim <= 0 {
		return nil, ErrBadDimension
	}

	return &Storage{dim: dim, seqs: make(map[string]int)}, nil
}

// Dim returns the ambient dimension.
func (s *Storage) Dim() int { return s.dim }

// Size returns the number of stored points.
func (s *Storage) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.points)
}

// Insert adds p if missing and returns its sequence number.
//
// Implementation:
//   - Stage 1: validate the dimension and every (level, index) pair.
//   - Stage 2: under the write lock, return the existing number or append.
//
// Behavior highlights:
//   - Idempotent: inserting an existing point returns its number unchanged.
//   - The storage keeps its own copy; later mutation of p has no effect.
//
// Complexity:
//   - Time O(d) amortized, Space O(d).
func (s *Storage) Insert(p gridpoint.Point) (int, error) {
	if p.Dim() != s.dim {
		return 0, fmt.Errorf("Storage.Insert(%v): %w", p, ErrDimensionMismatch)
	}
	for d := 0; d < s.dim; d++ {
		if l, i := p.Get(d); !gridpoint.Valid(l, i) {
			return 0, fmt.Errorf("Storage.Insert(%v): dim %d: %w", p, d, ErrInvalidPoint)
		}
	}
	key := p.Key()

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq, ok := s.seqs[key]; ok {
		return seq, nil
	}
	seq := len(s.points)
	s.seqs[key] = seq
	s.points = append(s.points, p.Clone())

	return seq, nil
}

// Find returns the sequence number of p. ok is false if p is absent.
func (s *Storage) Find(p gridpoint.Point) (seq int, ok bool) {
	if p.Dim() != s.dim {
		return 0, false
	}
	var buf [64]byte

	return s.FindKey(p.AppendKey(buf[:0]))
}

// FindKey looks a point up by its encoded key (see gridpoint.Point.AppendKey).
// Cursors keep a reusable key buffer and call this on every step.
func (s *Storage) FindKey(key []byte) (seq int, ok bool) {
	s.mu.RLock()
	seq, ok = s.seqs[string(key)]
	s.mu.RUnlock()

	return seq, ok
}

// Contains reports whether p is stored.
func (s *Storage) Contains(p gridpoint.Point) bool {
	_, ok := s.Find(p)

	return ok
}

// Point returns a copy of the point with sequence number seq.
// Panics if seq is out of range.
func (s *Storage) Point(seq int) gridpoint.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.points[seq].Clone()
}

// Points returns copies of all points in sequence order.
func (s *Storage) Points() []gridpoint.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]gridpoint.Point, len(s.points))
	for k, p := range s.points {
		out[k] = p.Clone()
	}

	return out
}

// MaxLevel returns the largest level of any point in any dimension.
func (s *Storage) MaxLevel() gridpoint.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var m gridpoint.Level
	for _, p := range s.points {
		m = max(m, p.MaxLevel())
	}

	return m
}

// Delete removes the points with the given sequence numbers and renumbers
// the survivors densely in their previous relative order. Duplicates are
// ignored. The storage is left untouched on error.
//
// Complexity:
//   - Time O(N·d + k log k), Space O(N).
func (s *Storage) Delete(seqs ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := slices.Clone(seqs)
	slices.Sort(drop)
	drop = slices.Compact(drop)
	for _, seq := range drop {
		if seq < 0 || seq >= len(s.points) {
			return fmt.Errorf("Storage.Delete(%d): %w", seq, ErrOutOfRange)
		}
	}

	kept := make([]gridpoint.Point, 0, len(s.points)-len(drop))
	next := 0
	for seq, p := range s.points {
		if next < len(drop) && drop[next] == seq {
			next++
			delete(s.seqs, p.Key())
			continue
		}
		s.seqs[p.Key()] = len(kept)
		kept = append(kept, p)
	}
	s.points = kept

	return nil
}

// Clone returns an independent copy of s.
func (s *Storage) Clone() *Storage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := &Storage{
		dim:    s.dim,
		seqs:   make(map[string]int, len(s.seqs)),
		points: make([]gridpoint.Point, len(s.points)),
	}
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	for k, p := range s.points {
		c.points[k] = p.Clone()
	}

	return c
}
