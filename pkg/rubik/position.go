// Package rubik models the permutation algebra of a 3x3x3 Rubik's cube:
// the 27 cell positions, the 24 block orientations, the six outer layers
// and the layer transforms that move blocks between cells.
package rubik

import "fmt"

// NumPositions is the number of cells in a 3x3x3 cube.
const NumPositions = 27

// CubePosition identifies one cell of the 3x3x3 grid.
//
// Grid coordinates run 0..2 on each axis: x to the right, y up and z
// toward the front face. The encoding is
//
//	x + 3*(2-z) + 9*(2-y)
//
// so 0 is the up-front-left corner and 26 the down-back-right corner.
type CubePosition uint8

// NewPosition encodes grid coordinates into a CubePosition.
func NewPosition(x, y, z int) (CubePosition, error) {
	if !inGrid(x) || !inGrid(y) || !inGrid(z) {
		return 0, fmt.Errorf("%w: (%d,%d,%d)", ErrInvalidPosition, x, y, z)
	}
	return CubePosition(x + 3*(2-z) + 9*(2-y)), nil
}

// PositionFromUint8 decodes an encoded position value.
func PositionFromUint8(v uint8) (CubePosition, error) {
	if v >= NumPositions {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, v)
	}
	return CubePosition(v), nil
}

// MustPosition is like PositionFromUint8 but panics on an out-of-range value.
func MustPosition(v uint8) CubePosition {
	p, err := PositionFromUint8(v)
	if err != nil {
		panic(err)
	}
	return p
}

// positionAt encodes a centered offset. Offsets outside the grid panic.
func positionAt(off [3]int) CubePosition {
	p, err := NewPosition(off[0]+1, off[1]+1, off[2]+1)
	if err != nil {
		panic(err)
	}
	return p
}

func inGrid(v int) bool {
	return v >= 0 && v <= 2
}

// Valid reports whether p is one of the 27 cells.
func (p CubePosition) Valid() bool {
	return p < NumPositions
}

// Coords decodes p into grid coordinates.
// It panics if p is not a valid position.
func (p CubePosition) Coords() (x, y, z int) {
	if !p.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidPosition, uint8(p)))
	}
	v := int(p)
	x = v % 3
	z = 2 - (v%9)/3
	y = 2 - v/9
	return x, y, z
}

// Offset returns the coordinates of p relative to the core cell,
// each component in {-1, 0, 1}.
func (p CubePosition) Offset() [3]int {
	x, y, z := p.Coords()
	return [3]int{x - 1, y - 1, z - 1}
}

// Name returns the symbolic name of the cell: the faces it touches,
// ordered U/D, F/B, L/R. The core cell is "C".
func (p CubePosition) Name() string {
	x, y, z := p.Coords()
	name := ""
	switch y {
	case 2:
		name += "U"
	case 0:
		name += "D"
	}
	switch z {
	case 2:
		name += "F"
	case 0:
		name += "B"
	}
	switch x {
	case 0:
		name += "L"
	case 2:
		name += "R"
	}
	if name == "" {
		return "C"
	}
	return name
}

func (p CubePosition) String() string {
	if !p.Valid() {
		return fmt.Sprintf("CubePosition(%d)", uint8(p))
	}
	return p.Name()
}

// AllPositions returns the 27 positions in encoding order.
func AllPositions() []CubePosition {
	out := make([]CubePosition, NumPositions)
	for i := range out {
		out[i] = CubePosition(i)
	}
	return out
}
