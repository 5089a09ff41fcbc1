package grid

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/sparsegrid/storage"
)

// Option configures a Grid.
type Option func(*options)

type options struct {
	box *BoundingBox
	log logr.Logger
}

// WithBoundingBox sets the physical domain. A nil box keeps the unit cube.
func WithBoundingBox(box *BoundingBox) Option {
	return func(o *options) {
		if box != nil {
			o.box = box
		}
	}
}

// WithLogger sets the logger for generation and refinement.
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// Grid is a point storage together with its basis type and domain.
type Grid struct {
	typ Type
	st  *storage.Storage
	box *BoundingBox
	log logr.Logger
}

// New returns an empty grid of type t in dim dimensions.
func New(t Type, dim int, opts ...Option) (*Grid, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("grid.New(%v): %w", t, ErrUnknownType)
	}
	st, err := storage.New(dim)
	if err != nil {
		return nil, fmt.Errorf("grid.New(%v, %d): %w", t, dim, ErrBadDimension)
	}
	o := options{log: logr.Discard()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.box == nil {
		o.box = NewBoundingBox(dim)
	}
	if o.box.Dim() != dim {
		return nil, fmt.Errorf("grid.New: box has %d dims, grid %d: %w", o.box.Dim(), dim, ErrBadDimension)
	}

	return &Grid{typ: t, st: st, box: o.box, log: o.log}, nil
}

// NewNamed is New with the type given by name (see ParseType).
func NewNamed(name string, dim int, opts ...Option) (*Grid, error) {
	t, err := ParseType(name)
	if err != nil {
		return nil, err
	}

	return New(t, dim, opts...)
}

// Type returns the basis type.
func (g *Grid) Type() Type { return g.typ }

// Storage returns the point storage.
func (g *Grid) Storage() *storage.Storage { return g.st }

// BoundingBox returns the physical domain.
func (g *Grid) BoundingBox() *BoundingBox { return g.box }

// Dim returns the number of dimensions.
func (g *Grid) Dim() int { return g.st.Dim() }

// Size returns the number of grid points.
func (g *Grid) Size() int { return g.st.Size() }

// Logger returns the grid's logger.
func (g *Grid) Logger() logr.Logger { return g.log }
