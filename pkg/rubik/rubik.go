package rubik

// Cell is the content of one grid cell: which block sits there, named by
// the cell it occupies when solved, and how that block is rotated.
type Cell struct {
	Home CubePosition
	Perm CubePermutation
}

// Rubik is the aggregate state of a 3x3x3 cube, indexed by current position.
type Rubik struct {
	cells [NumPositions]Cell
}

// New creates a cube in the solved layout.
func New() *Rubik {
	r := &Rubik{}
	r.Reset()
	return r
}

// Reset returns the cube to the solved layout.
func (r *Rubik) Reset() {
	for i := range r.cells {
		r.cells[i] = Cell{Home: CubePosition(i), Perm: Unit}
	}
}

// Clone creates a copy of the cube.
func (r *Rubik) Clone() *Rubik {
	clone := *r
	return &clone
}

// Equal reports whether both cubes hold the same blocks in the same
// positions and orientations.
func (r *Rubik) Equal(other *Rubik) bool {
	return r.cells == other.cells
}

// Execute applies a layer transform. Every block of the layer moves to
// t.ApplyOnPosition of its cell and composes t.Rotation into its
// orientation; all other blocks are left alone.
func (r *Rubik) Execute(t LayerTransform) {
	delta := t.Rotation()
	next := r.cells
	for i, cell := range r.cells {
		p := CubePosition(i)
		if !t.Affects(p) {
			continue
		}
		next[t.ApplyOnPosition(p)] = Cell{Home: cell.Home, Perm: cell.Perm.Compose(delta)}
	}
	r.cells = next
}

// ExecuteAll applies a sequence of transforms in order.
func (r *Rubik) ExecuteAll(ts ...LayerTransform) {
	for _, t := range ts {
		r.Execute(t)
	}
}

// At returns the cell content at p.
func (r *Rubik) At(p CubePosition) Cell {
	return r.cells[p]
}

// Locate returns the current position of the block whose solved position
// is home.
func (r *Rubik) Locate(home CubePosition) CubePosition {
	for i, cell := range r.cells {
		if cell.Home == home {
			return CubePosition(i)
		}
	}
	panic("rubik: block " + home.String() + " is missing")
}

// IsIdentity reports whether every block is home and unrotated.
func (r *Rubik) IsIdentity() bool {
	for i, cell := range r.cells {
		if cell.Home != CubePosition(i) || cell.Perm != Unit {
			return false
		}
	}
	return true
}

// IsSolved reports whether every face shows a single color. Unlike
// IsIdentity it ignores how center and core blocks are spun.
func (r *Rubik) IsSolved() bool {
	f := r.Facelets()
	for face := range f {
		for i := 0; i < 9; i++ {
			if f[face][i] != f[face][4] {
				return false
			}
		}
	}
	return true
}
