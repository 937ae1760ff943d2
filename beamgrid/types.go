// Package beamgrid core types, options, and sentinel errors shared by the
// laser-puzzle pipeline.
package beamgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for beamgrid operations.
var (
	// ErrBadGridSize indicates a grid size outside the supported set.
	ErrBadGridSize = errors.New("beamgrid: grid size must be 6, 8 or 10")
	// ErrOutOfBounds indicates a position outside the grid boundaries.
	ErrOutOfBounds = errors.New("beamgrid: position out of bounds")
	// ErrCellOccupied indicates a cell that already holds a material.
	ErrCellOccupied = errors.New("beamgrid: cell already occupied")
	// ErrUnknownMaterial indicates a material type outside the closed enumeration.
	ErrUnknownMaterial = errors.New("beamgrid: unknown material type")
	// ErrUnknownDifficulty indicates a difficulty outside {Easy, Medium, Hard}.
	ErrUnknownDifficulty = errors.New("beamgrid: unknown difficulty")
)

// Position identifies a single grid cell by its (X, Y) coordinates.
// Positions compare by value; two positions are the same cell iff X and Y match.
type Position struct {
	X, Y int
}

// Manhattan returns the L1 distance between p and q.
// Complexity: O(1).
func (p Position) Manhattan(q Position) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y)
}

// String renders the position as "(x,y)" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// absInt returns |v| without touching float math.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MaterialType enumerates the closed set of optical cell contents.
type MaterialType int

const (
	// Empty marks a cell with no material; the beam passes through unaffected.
	Empty MaterialType = iota
	// Mirror reflects deterministically about its configured surface angle.
	Mirror
	// Water reflects like a 45° mirror plus a bounded random diffusion.
	Water
	// Glass reflects deterministically with transparency-scaled attenuation.
	Glass
	// Metal reverses the beam direction outright.
	Metal
	// Absorber terminates the beam at the cell, unconditionally.
	Absorber
)

// materialNames maps MaterialType to its canonical lowercase name.
var materialNames = map[MaterialType]string{
	Empty:    "empty",
	Mirror:   "mirror",
	Water:    "water",
	Glass:    "glass",
	Metal:    "metal",
	Absorber: "absorber",
}

// String returns the canonical lowercase name of the material type.
func (m MaterialType) String() string {
	if s, ok := materialNames[m]; ok {
		return s
	}
	return fmt.Sprintf("MaterialType(%d)", int(m))
}

// Valid reports whether m belongs to the closed enumeration.
func (m MaterialType) Valid() bool {
	_, ok := materialNames[m]
	return ok
}

// Properties is the static physical description of a material type.
// Values are data, not behavior: the trace engine interprets them.
type Properties struct {
	// Reflectivity scales beam intensity on each reflective interaction, in [0,1].
	Reflectivity float64
	// Transparency is the fraction of light the material lets through, in [0,1].
	Transparency float64
	// Diffusion is the maximum random perturbation in degrees (water only).
	Diffusion float64
	// Absorbs marks materials that terminate the beam unconditionally.
	Absorbs bool
}

// Material is a MaterialType bound to a grid cell. AngleDeg is the mirror
// surface angle in [0,360) and is meaningful only when Type == Mirror.
type Material struct {
	Type     MaterialType
	Pos      Position
	AngleDeg float64
}
