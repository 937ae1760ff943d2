package beamgrid

import (
	"strings"
)

// supportedSizes lists the grid edge lengths the difficulty table uses.
var supportedSizes = map[int]bool{6: true, 8: true, 10: true}

// Grid is a square N×N arrangement of cells, each either empty or holding
// exactly one Material. A Grid owns its cells outright: constructors and
// Clone deep-copy, so no two grids share storage.
type Grid struct {
	size  int
	cells [][]*Material
}

// NewGrid constructs an empty size×size grid.
// Returns ErrBadGridSize unless size ∈ {6, 8, 10}.
// Complexity: O(N²) time and memory.
func NewGrid(size int) (*Grid, error) {
	if !supportedSizes[size] {
		return nil, ErrBadGridSize
	}
	cells := make([][]*Material, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]*Material, size)
	}
	return &Grid{size: size, cells: cells}, nil
}

// Size returns the grid edge length N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// OnBoundary reports whether p lies on one of the four grid edges.
// Complexity: O(1).
func (g *Grid) OnBoundary(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return p.X == 0 || p.X == g.size-1 || p.Y == 0 || p.Y == g.size-1
}

// Place puts m into the grid at m.Pos.
// Returns ErrOutOfBounds if the position is outside the grid,
// ErrUnknownMaterial for a type outside the closed set (Empty included:
// empty cells are represented by absence, not by a stored material),
// and ErrCellOccupied if the cell already holds a material.
// Complexity: O(1).
func (g *Grid) Place(m Material) error {
	if !g.InBounds(m.Pos) {
		return ErrOutOfBounds
	}
	if !m.Type.Valid() || m.Type == Empty {
		return ErrUnknownMaterial
	}
	if g.cells[m.Pos.Y][m.Pos.X] != nil {
		return ErrCellOccupied
	}
	held := m
	g.cells[m.Pos.Y][m.Pos.X] = &held
	return nil
}

// Remove clears the cell at p and reports whether a material was present.
// Removing from an out-of-bounds or empty cell is a no-op returning false.
// Complexity: O(1).
func (g *Grid) Remove(p Position) bool {
	if !g.InBounds(p) || g.cells[p.Y][p.X] == nil {
		return false
	}
	g.cells[p.Y][p.X] = nil
	return true
}

// MaterialAt returns the material at p, if any.
// The returned Material is a copy; mutating it does not affect the grid.
// Complexity: O(1).
func (g *Grid) MaterialAt(p Position) (Material, bool) {
	if !g.InBounds(p) || g.cells[p.Y][p.X] == nil {
		return Material{}, false
	}
	return *g.cells[p.Y][p.X], true
}

// MaterialCount returns the number of occupied cells.
// Complexity: O(N²).
func (g *Grid) MaterialCount() int {
	n := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] != nil {
				n++
			}
		}
	}
	return n
}

// Materials returns a copy of every placed material in row-major order.
// Complexity: O(N²).
func (g *Grid) Materials() []Material {
	out := make([]Material, 0, g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if c := g.cells[y][x]; c != nil {
				out = append(out, *c)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
// Complexity: O(N²) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([][]*Material, g.size)
	for y := 0; y < g.size; y++ {
		cells[y] = make([]*Material, g.size)
		for x := 0; x < g.size; x++ {
			if c := g.cells[y][x]; c != nil {
				held := *c
				cells[y][x] = &held
			}
		}
	}
	return &Grid{size: g.size, cells: cells}
}

// cellGlyphs maps material types to single-rune ASCII markers for String.
var cellGlyphs = map[MaterialType]string{
	Mirror:   "╱",
	Water:    "~",
	Glass:    "▢",
	Metal:    "▣",
	Absorber: "█",
}

// String renders the grid as an ASCII diagram, one row per line, "·" for
// empty cells. Intended for tests and debugging, not gameplay rendering.
// Complexity: O(N²).
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if c := g.cells[y][x]; c != nil {
				b.WriteString(cellGlyphs[c.Type])
			} else {
				b.WriteString("·")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
