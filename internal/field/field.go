// Package field provides a generic two-dimensional grid with neighbour kernel
// iteration.
package field

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmptyField is returned when a grid would have no cells.
	ErrEmptyField = errors.New("field: width and height must be positive")
	// ErrRaggedRows is returned when rows passed to FromRows differ in length.
	ErrRaggedRows = errors.New("field: rows have different lengths")
)

// Boundary selects how kernel offsets behave at the grid edges.
type Boundary uint8

const (
	// Toroidal wraps offsets around opposite edges.
	Toroidal Boundary = iota
	// Truncate drops offsets that fall outside the grid.
	Truncate
)

func (b Boundary) String() string {
	switch b {
	case Toroidal:
		return "toroidal"
	case Truncate:
		return "truncate"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary resolves a boundary policy by name.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "toroidal", "wrap", "":
		return Toroidal, nil
	case "truncate", "clip":
		return Truncate, nil
	}
	return Toroidal, fmt.Errorf("field: unknown boundary %q", s)
}

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row, Column int
}

// Offset is a relative displacement from a cell.
type Offset struct {
	Rows, Columns int
}

// SquareKernel lists every offset within a (2r+1)² square.
func SquareKernel(radius int, includeCenter bool) []Offset {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	offsets := make([]Offset, 0, side*side)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 && !includeCenter {
				continue
			}
			offsets = append(offsets, Offset{Rows: dy, Columns: dx})
		}
	}
	return offsets
}

// Moore is the radius-one neighbourhood without the centre cell.
var Moore = SquareKernel(1, false)

// Field stores W×H values in row-major order.
type Field[T any] struct {
	W, H     int
	boundary Boundary
	data     []T
}

// New allocates a grid of zero-valued cells.
func New[T any](w, h int, boundary Boundary) (*Field[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyField, w, h)
	}
	return &Field[T]{W: w, H: h, boundary: boundary, data: make([]T, w*h)}, nil
}

// FromRows builds a grid from nested row/column values.
func FromRows[T any](rows [][]T, boundary Boundary) (*Field[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyField
	}
	w := len(rows[0])
	f := &Field[T]{W: w, H: len(rows), boundary: boundary, data: make([]T, 0, w*len(rows))}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), w)
		}
		f.data = append(f.data, row...)
	}
	return f, nil
}

// Boundary reports the edge policy.
func (f *Field[T]) Boundary() Boundary { return f.boundary }

// Values exposes the backing slice in row-major order.
func (f *Field[T]) Values() []T { return f.data }

// Index returns the linear slice index for a coordinate.
func (f *Field[T]) Index(c Coordinate) int { return c.Row*f.W + c.Column }

// At returns the value stored at c.
func (f *Field[T]) At(c Coordinate) T { return f.data[f.Index(c)] }

// Set stores v at c.
func (f *Field[T]) Set(c Coordinate, v T) { f.data[f.Index(c)] = v }

// Row returns a view of a single row.
func (f *Field[T]) Row(r int) []T { return f.data[r*f.W : (r+1)*f.W] }

// Rows yields each row index with its cells.
func (f *Field[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < f.H; r++ {
			if !yield(r, f.Row(r)) {
				return
			}
		}
	}
}

// Wrap applies toroidal wrapping to the provided coordinate.
func (f *Field[T]) Wrap(c Coordinate) Coordinate {
	c.Row = (c.Row%f.H + f.H) % f.H
	c.Column = (c.Column%f.W + f.W) % f.W
	return c
}

// resolve maps c+o onto a cell, reporting false when the offset leaves the
// grid or wraps back onto c itself.
func (f *Field[T]) resolve(c Coordinate, o Offset) (Coordinate, bool) {
	n := Coordinate{Row: c.Row + o.Rows, Column: c.Column + o.Columns}
	if f.boundary == Truncate {
		if n.Row < 0 || n.Row >= f.H || n.Column < 0 || n.Column >= f.W {
			return n, false
		}
		return n, true
	}
	n = f.Wrap(n)
	if n == c && (o.Rows != 0 || o.Columns != 0) {
		return n, false
	}
	return n, true
}

// Kernel yields the values at c+offset for every offset, in order. On a
// toroidal field narrower than three cells, distinct offsets can wrap onto the
// same cell, which is then yielded once per offset.
func (f *Field[T]) Kernel(c Coordinate, offsets []Offset) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, o := range offsets {
			n, ok := f.resolve(c, o)
			if !ok {
				continue
			}
			if !yield(f.data[f.Index(n)]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (f *Field[T]) Clone() *Field[T] {
	out := &Field[T]{W: f.W, H: f.H, boundary: f.boundary, data: make([]T, len(f.data))}
	copy(out.data, f.data)
	return out
}
