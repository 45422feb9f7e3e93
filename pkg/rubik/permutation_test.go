package rubik

import "testing"

func TestGroupHas24DistinctRotations(t *testing.T) {
	seen := make(map[[3][3]int]bool)
	for _, p := range Permutations() {
		m := p.Matrix()
		if seen[m] {
			t.Errorf("rotation %v duplicated", p)
		}
		seen[m] = true
	}
	if len(seen) != NumPermutations {
		t.Errorf("got %d rotations, want %d", len(seen), NumPermutations)
	}
	if Unit != 0 {
		t.Errorf("Unit = %d, want the zero value", Unit)
	}
}

func TestComposeIdentityAndInverse(t *testing.T) {
	for _, p := range Permutations() {
		if p.Compose(Unit) != p || Unit.Compose(p) != p {
			t.Errorf("%v composed with Unit changed", p)
		}
		if p.Compose(p.Inverse()) != Unit || p.Inverse().Compose(p) != Unit {
			t.Errorf("%v composed with its inverse is not Unit", p)
		}
	}
}

func TestComposeIsAssociative(t *testing.T) {
	for _, a := range Permutations() {
		for _, b := range Permutations() {
			for _, c := range Permutations() {
				if a.Compose(b).Compose(c) != a.Compose(b.Compose(c)) {
					t.Fatalf("(%v·%v)·%v != %v·(%v·%v)", a, b, c, a, b, c)
				}
			}
		}
	}
}

func TestComposeAppliesLeftFirst(t *testing.T) {
	v := [3]int{1, 2, 3}
	for _, a := range Permutations() {
		for _, b := range Permutations() {
			got := a.Compose(b).Apply(v)
			want := b.Apply(a.Apply(v))
			if got != want {
				t.Fatalf("%v then %v: got %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestComposeNotCommutative(t *testing.T) {
	if R.Rotation().Compose(U.Rotation()) == U.Rotation().Compose(R.Rotation()) {
		t.Error("quarter turns about different axes should not commute")
	}
}

func TestNamedRotations(t *testing.T) {
	tests := []struct {
		p     CubePermutation
		order int
	}{
		{Unit, 1},
		{X2, 2},
		{Y2, 2},
		{Z2, 2},
		{C1, 3},
		{C2, 3},
		{I, 2},
	}
	for _, tt := range tests {
		if got := tt.p.Order(); got != tt.order {
			t.Errorf("%v order = %d, want %d", tt.p, got, tt.order)
		}
	}

	if C1.Compose(C1) != C2 {
		t.Error("C1 twice should be C2")
	}
	if I.Compose(C1).Compose(I) != C2 {
		t.Error("conjugating C1 by I should give C2")
	}
	if got := C1.Apply([3]int{1, 0, 0}); got != [3]int{0, 1, 0} {
		t.Errorf("C1 maps x to %v, want y", got)
	}
}

func TestFactor3Recomposes(t *testing.T) {
	for _, p := range Permutations() {
		h, c, f := p.Factor3()
		got := f.Permutation().Compose(c.Permutation()).Compose(h.Permutation())
		if got != p {
			t.Errorf("%v factors to (%d,%d,%d) which recomposes to %v", p, h, c, f, got)
		}
	}
}

func TestFactor3OfNamedRotations(t *testing.T) {
	if h, c, f := Unit.Factor3(); h != HalfTurnNone || c != DiagonalNone || f != FlipNone {
		t.Errorf("Unit factors to (%d,%d,%d)", h, c, f)
	}
	if h, c, f := Y2.Factor3(); h != HalfTurnY || c != DiagonalNone || f != FlipNone {
		t.Errorf("Y_2 factors to (%d,%d,%d)", h, c, f)
	}
	if h, c, f := C2.Factor3(); h != HalfTurnNone || c != DiagonalC2 || f != FlipNone {
		t.Errorf("C2 factors to (%d,%d,%d)", h, c, f)
	}
	if h, c, f := I.Factor3(); h != HalfTurnNone || c != DiagonalNone || f != FlipI {
		t.Errorf("I factors to (%d,%d,%d)", h, c, f)
	}
}
