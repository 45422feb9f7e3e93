package rubik

// Phase is the furthest stage of the layer-by-layer method the cube shows,
// white on top and green in front. Phases are ordered and compare with <
// and >.
type Phase int

const (
	PhaseScrambled Phase = iota

	// PhaseWhiteCross: U edges are white and their side colors match
	// the side centers.
	PhaseWhiteCross

	// PhaseTopLayer: the whole U layer is solved.
	PhaseTopLayer

	// PhaseMiddleLayer: the four middle edges are solved.
	PhaseMiddleLayer

	// PhaseBottomCross: the D edges show yellow on D.
	PhaseBottomCross

	// PhaseCornersPositioned: the D corners are in place, maybe twisted.
	PhaseCornersPositioned

	// PhaseCornersOriented: the D corners are solved; D edges may still
	// be swapped.
	PhaseCornersOriented

	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseTopLayer:
		return "top_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseBottomCross:
		return "bottom_cross"
	case PhaseCornersPositioned:
		return "corners_positioned"
	case PhaseCornersOriented:
		return "corners_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseTopLayer:
		return "Top Layer"
	case PhaseMiddleLayer:
		return "Middle Layer"
	case PhaseBottomCross:
		return "Yellow Cross"
	case PhaseCornersPositioned:
		return "Yellow Corners Positioned"
	case PhaseCornersOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

type faces [NumLayers][9]Color

// matches reports whether the given stickers of face show its center color.
func (f *faces) matches(face Layer, idx ...int) bool {
	for _, i := range idx {
		if f[face][i] != f[face][4] {
			return false
		}
	}
	return true
}

var sideFaces = []Layer{LayerF, LayerR, LayerB, LayerL}

func whiteCross(f *faces) bool {
	for _, i := range []int{1, 3, 5, 7} {
		if f[LayerU][i] != White {
			return false
		}
	}
	for _, face := range sideFaces {
		if !f.matches(face, 1) {
			return false
		}
	}
	return true
}

func topLayer(f *faces) bool {
	for i := 0; i < 9; i++ {
		if f[LayerU][i] != White {
			return false
		}
	}
	for _, face := range sideFaces {
		if !f.matches(face, 0, 2) {
			return false
		}
	}
	return true
}

func middleLayer(f *faces) bool {
	for _, face := range sideFaces {
		if !f.matches(face, 3, 5) {
			return false
		}
	}
	return true
}

func bottomCross(f *faces) bool {
	for _, i := range []int{1, 3, 5, 7} {
		if f[LayerD][i] != Yellow {
			return false
		}
	}
	return true
}

// bottomCorners lists the stickers of each D corner and the colors it
// shows when solved.
var bottomCorners = []struct {
	stickers [3][2]int // face, index
	colors   [3]Color
}{
	{[3][2]int{{int(LayerF), 8}, {int(LayerR), 6}, {int(LayerD), 2}}, [3]Color{Green, Red, Yellow}},
	{[3][2]int{{int(LayerR), 8}, {int(LayerB), 6}, {int(LayerD), 8}}, [3]Color{Red, Blue, Yellow}},
	{[3][2]int{{int(LayerB), 8}, {int(LayerL), 6}, {int(LayerD), 6}}, [3]Color{Blue, Orange, Yellow}},
	{[3][2]int{{int(LayerL), 8}, {int(LayerF), 6}, {int(LayerD), 0}}, [3]Color{Orange, Green, Yellow}},
}

func cornersPositioned(f *faces) bool {
	for _, corner := range bottomCorners {
		var got [3]Color
		for i, s := range corner.stickers {
			got[i] = f[s[0]][s[1]]
		}
		if !sameColors(got, corner.colors) {
			return false
		}
	}
	return true
}

func cornersOriented(f *faces) bool {
	for i := 0; i < 9; i++ {
		if f[LayerD][i] != Yellow {
			return false
		}
	}
	for _, face := range sideFaces {
		if !f.matches(face, 6, 8) {
			return false
		}
	}
	return true
}

// sameColors reports whether a and b hold the same colors in any order.
func sameColors(a, b [3]Color) bool {
	var count [NumLayers]int
	for i := range a {
		count[a[i]]++
		count[b[i]]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

// phaseChecks holds the check that completes each phase after
// PhaseScrambled, in order.
var phaseChecks = []func(*faces) bool{
	whiteCross,
	topLayer,
	middleLayer,
	bottomCross,
	cornersPositioned,
	cornersOriented,
}

// Phase returns the furthest phase whose checks, and those of every
// earlier phase, pass.
func (r *Rubik) Phase() Phase {
	if r.IsSolved() {
		return PhaseSolved
	}
	f := faces(r.Facelets())
	p := PhaseScrambled
	for _, check := range phaseChecks {
		if !check(&f) {
			break
		}
		p++
	}
	return p
}
