package rubik

import "fmt"

// CubePermutation is one of the 24 proper rotations of the cube. It tracks a
// block's cumulative orientation relative to the solved layout.
//
// The zero value is Unit, the identity rotation.
type CubePermutation uint8

// NumPermutations is the order of the cube rotation group.
const NumPermutations = 24

// matrix is a signed permutation matrix acting on column vectors.
type matrix [3][3]int

var identity = matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Quarter turns of +90 degrees (right-hand rule) that generate the group.
var (
	quarterX = matrix{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	quarterY = matrix{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
)

// mul returns m·n.
func (m matrix) mul(n matrix) matrix {
	var out matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

func (m matrix) apply(v [3]int) [3]int {
	var out [3]int
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// rotationGroup holds the multiplication tables of the 24 rotations.
type rotationGroup struct {
	elems   []matrix
	index   map[matrix]CubePermutation
	compose [NumPermutations][NumPermutations]CubePermutation
	inverse [NumPermutations]CubePermutation
}

// buildGroup closes {identity} under the quarter turns. Breadth-first order
// keeps the numbering deterministic with the identity at index 0.
func buildGroup() *rotationGroup {
	g := &rotationGroup{index: make(map[matrix]CubePermutation, NumPermutations)}
	queue := []matrix{identity}
	g.add(identity)
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		for _, gen := range []matrix{quarterX, quarterY} {
			n := gen.mul(m)
			if _, ok := g.index[n]; ok {
				continue
			}
			g.add(n)
			queue = append(queue, n)
		}
	}
	if len(g.elems) != NumPermutations {
		panic(fmt.Sprintf("rubik: rotation group has %d elements", len(g.elems)))
	}

	for a := range g.elems {
		for b := range g.elems {
			g.compose[a][b] = g.lookup(g.elems[b].mul(g.elems[a]))
		}
	}
	for a := range g.elems {
		for b := range g.elems {
			if g.compose[a][b] == 0 {
				g.inverse[a] = CubePermutation(b)
			}
		}
	}
	return g
}

func (g *rotationGroup) add(m matrix) {
	g.index[m] = CubePermutation(len(g.elems))
	g.elems = append(g.elems, m)
}

func (g *rotationGroup) lookup(m matrix) CubePermutation {
	p, ok := g.index[m]
	if !ok {
		panic(fmt.Sprintf("rubik: %v is not a cube rotation", m))
	}
	return p
}

var group = buildGroup()

// Named rotations.
var (
	// Unit is the identity orientation.
	Unit = group.lookup(identity)

	// X2, Y2 and Z2 are half turns about the coordinate axes.
	X2 = group.lookup(matrix{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}})
	Y2 = group.lookup(matrix{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}})
	Z2 = group.lookup(matrix{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}})

	// C1 turns 120 degrees about the main diagonal (1,1,1): x->y->z->x.
	// C2 is its inverse.
	C1 = group.lookup(matrix{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}})
	C2 = group.lookup(matrix{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})

	// I is the half turn about the edge axis (1,-1,0). It swaps C1 and C2
	// under conjugation.
	I = group.lookup(matrix{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}})
)

// Compose returns the rotation that applies p first and then next.
func (p CubePermutation) Compose(next CubePermutation) CubePermutation {
	return group.compose[p][next]
}

// Inverse returns the rotation that undoes p.
func (p CubePermutation) Inverse() CubePermutation {
	return group.inverse[p]
}

// Apply rotates an integer vector.
func (p CubePermutation) Apply(v [3]int) [3]int {
	return group.elems[p].apply(v)
}

// Matrix returns the rotation matrix of p (acting on column vectors).
func (p CubePermutation) Matrix() [3][3]int {
	return group.elems[p]
}

// Order returns the smallest n > 0 with p^n == Unit.
func (p CubePermutation) Order() int {
	n := 1
	for q := p; q != Unit; q = q.Compose(p) {
		n++
	}
	return n
}

// Valid reports whether p is one of the 24 rotations.
func (p CubePermutation) Valid() bool {
	return p < NumPermutations
}

func (p CubePermutation) String() string {
	switch p {
	case Unit:
		return "UNIT"
	case X2:
		return "X_2"
	case Y2:
		return "Y_2"
	case Z2:
		return "Z_2"
	case C1:
		return "C1"
	case C2:
		return "C2"
	case I:
		return "I"
	}
	return fmt.Sprintf("P%d", uint8(p))
}

// Permutations returns all 24 rotations, identity first.
func Permutations() []CubePermutation {
	out := make([]CubePermutation, NumPermutations)
	for i := range out {
		out[i] = CubePermutation(i)
	}
	return out
}

// rotationFor returns the rotation that maps each basis vector e_i to cols[i].
func rotationFor(cols [3][3]int) CubePermutation {
	var m matrix
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			m[i][j] = cols[j][i]
		}
	}
	return group.lookup(m)
}
