package rubik

import "testing"

func TestNewRubikIsSolved(t *testing.T) {
	r := New()
	if !r.IsSolved() || !r.IsIdentity() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	r := New()
	r.Execute(R)
	if r.IsSolved() {
		t.Error("Cube should not be solved after R")
	}
}

func TestFourQuarterTurnsReturnToSolved_AllLayers(t *testing.T) {
	for _, l := range Layers() {
		r := New()
		tr := LayerTransform{Layer: l, Turn: CW}
		r.ExecuteAll(tr, tr, tr, tr)
		if !r.IsIdentity() {
			t.Errorf("%v x 4 should return to solved", tr)
			t.Log(r.String())
		}
	}
}

func TestDoubleDoubleReturnsToSolved(t *testing.T) {
	r := New()
	r.ExecuteAll(R2, R2)
	if !r.IsIdentity() {
		t.Error("R2 R2 should return to solved")
	}

	r.ExecuteAll(U2)
	other := New()
	other.ExecuteAll(U, U)
	if !r.Equal(other) {
		t.Error("U2 should equal U U")
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	r := New()
	for i := 0; i < 6; i++ {
		r.ExecuteAll(SexyMove...)
		if i < 5 && r.IsIdentity() {
			t.Fatalf("cube returned to solved after %d repetitions", i+1)
		}
	}
	if !r.IsIdentity() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(r.String())
	}
}

func TestExecuteThenInverseRestores(t *testing.T) {
	base := New()
	base.ExecuteAll(R, U, F2, LPrime, D)
	for _, tr := range Transforms() {
		r := base.Clone()
		r.Execute(tr)
		r.Execute(tr.Inverse())
		if !r.Equal(base) {
			t.Errorf("%v then %v did not restore the cube", tr, tr.Inverse())
		}
	}
}

func TestExecuteTouchesOnlyLayer(t *testing.T) {
	r := New()
	r.Execute(R)
	for _, p := range AllPositions() {
		cell := r.At(p)
		if R.Affects(p) {
			if cell.Perm != R.Rotation() {
				t.Errorf("block at %v has %v, want R rotation", p, cell.Perm)
			}
			if R.ApplyOnPosition(cell.Home) != p {
				t.Errorf("block %v landed on %v", cell.Home, p)
			}
			continue
		}
		if cell.Home != p || cell.Perm != Unit {
			t.Errorf("non-member %v changed to %+v", p, cell)
		}
	}
}

func TestLocate(t *testing.T) {
	r := New()
	ufr, _ := NewPosition(2, 2, 2)
	ubr, _ := NewPosition(2, 2, 0)
	r.Execute(R)
	if got := r.Locate(ufr); got != ubr {
		t.Errorf("UFR block is at %v after R, want UBR", got)
	}
}

func TestFaceletsAfterR(t *testing.T) {
	r := New()
	r.Execute(R)
	f := r.Facelets()

	for _, i := range []int{2, 5, 8} {
		if f[LayerU][i] != Green {
			t.Errorf("U sticker %d = %v, want G", i, f[LayerU][i])
		}
		if f[LayerF][i] != Yellow {
			t.Errorf("F sticker %d = %v, want Y", i, f[LayerF][i])
		}
	}
	for _, i := range []int{0, 3, 6} {
		if f[LayerU][i] != White {
			t.Errorf("U sticker %d = %v, want W", i, f[LayerU][i])
		}
	}
	for i := 0; i < 9; i++ {
		if f[LayerR][i] != Red {
			t.Errorf("R sticker %d = %v, want R", i, f[LayerR][i])
		}
		if f[LayerL][i] != Orange {
			t.Errorf("L sticker %d = %v, want O", i, f[LayerL][i])
		}
	}
}

func TestFaceletColorCounts(t *testing.T) {
	r := New()
	r.ExecuteAll(R, U, FPrime, L2, D, BPrime)
	counts := make(map[Color]int)
	for _, face := range r.Facelets() {
		for _, c := range face {
			counts[c]++
		}
	}
	for c := White; c <= Orange; c++ {
		if counts[c] != 9 {
			t.Errorf("color %v appears %d times, want 9", c, counts[c])
		}
	}
}

func TestStringNet(t *testing.T) {
	s := New().String()
	if len(s) == 0 {
		t.Fatal("empty net")
	}
	want := "      W W W \n"
	if s[:len(want)] != want {
		t.Errorf("net starts with %q, want %q", s[:len(want)], want)
	}
}
