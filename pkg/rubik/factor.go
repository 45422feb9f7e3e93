package rubik

import "fmt"

// HalfTurn is the half-turn factor of a rotation.
type HalfTurn uint8

const (
	HalfTurnNone HalfTurn = iota
	HalfTurnX
	HalfTurnY
	HalfTurnZ
)

// Permutation returns the rotation for h.
func (h HalfTurn) Permutation() CubePermutation {
	return [...]CubePermutation{Unit, X2, Y2, Z2}[h]
}

// DiagonalTurn is the 120 degree factor of a rotation, about (1,1,1).
type DiagonalTurn uint8

const (
	DiagonalNone DiagonalTurn = iota
	DiagonalC1
	DiagonalC2
)

// Permutation returns the rotation for c.
func (c DiagonalTurn) Permutation() CubePermutation {
	return [...]CubePermutation{Unit, C1, C2}[c]
}

// Flip is the edge-axis half-turn factor of a rotation.
type Flip uint8

const (
	FlipNone Flip = iota
	FlipI
)

// Permutation returns the rotation for f.
func (f Flip) Permutation() CubePermutation {
	return [...]CubePermutation{Unit, I}[f]
}

type factors struct {
	half HalfTurn
	diag DiagonalTurn
	flip Flip
}

// The half turns form a normal subgroup of order 4 and {C1, C2, I} generate
// a complement of order 6, so every rotation has exactly one factorization.
var factorTable = buildFactors()

func buildFactors() [NumPermutations]factors {
	var table [NumPermutations]factors
	var seen [NumPermutations]bool
	for h := HalfTurnNone; h <= HalfTurnZ; h++ {
		for c := DiagonalNone; c <= DiagonalC2; c++ {
			for f := FlipNone; f <= FlipI; f++ {
				p := f.Permutation().Compose(c.Permutation()).Compose(h.Permutation())
				if seen[p] {
					panic(fmt.Sprintf("rubik: rotation %v factors twice", p))
				}
				seen[p] = true
				table[p] = factors{half: h, diag: c, flip: f}
			}
		}
	}
	return table
}

// Factor3 splits p into h, c and f such that applying f, then c, then h
// equals p. As matrices, M(p) = M(h)·M(c)·M(f).
func (p CubePermutation) Factor3() (HalfTurn, DiagonalTurn, Flip) {
	f := factorTable[p]
	return f.half, f.diag, f.flip
}
