// Package grid implements an immutable rectangular occupancy grid
// and the movement rules used to walk it.
package grid

import (
	"errors"
	"fmt"
)

// Point identifies a grid cell. X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ErrRagged is returned by New when the rows are not all the same length.
var ErrRagged = errors.New("grid: rows have differing lengths")

// Grid is a rectangular grid of cells, each either open or blocked.
// A Grid never changes once created, so it may be shared freely
// between goroutines.
type Grid struct {
	// cells holds the blocked flags in row-major order.
	cells  []bool
	width  int
	height int
}

// New returns a grid built from rows, where rows[y][x] is true when
// the cell at (x, y) is blocked. The rows are copied.
func New(rows [][]bool) (*Grid, error) {
	g := &Grid{
		height: len(rows),
	}
	if len(rows) > 0 {
		g.width = len(rows[0])
	}
	g.cells = make([]bool, 0, g.width*g.height)
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), g.width, ErrRagged)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(rows [][]bool) *Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Blocked reports whether the cell at p is an obstacle.
// Points outside the grid are reported as blocked.
func (g *Grid) Blocked(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[p.Y*g.width+p.X]
}

// IsWalkable reports whether p is inside the grid and not blocked.
func (g *Grid) IsWalkable(p Point) bool {
	return g.InBounds(p) && !g.cells[p.Y*g.width+p.X]
}

// Rows returns a copy of the grid as rows of blocked flags,
// in the form accepted by New.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range rows {
		rows[y] = append([]bool(nil), g.cells[y*g.width:(y+1)*g.width]...)
	}
	return rows
}
