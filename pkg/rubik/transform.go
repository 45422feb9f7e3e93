package rubik

import (
	"math"
	"strings"
)

// Turn represents the direction and magnitude of a layer turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees), looking at the face
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// LayerTransform is a discrete move: one layer turned by one Turn.
type LayerTransform struct {
	Layer Layer
	Turn  Turn
}

// Rotation returns the orientation delta the transform applies to every
// block of its layer.
func (t LayerTransform) Rotation() CubePermutation {
	n := t.Layer.Normal()
	var cols [3][3]int
	for j := 0; j < 3; j++ {
		var e [3]int
		e[j] = 1
		cols[j] = t.turnVector(n, e)
	}
	return rotationFor(cols)
}

// turnVector rotates v about the unit axis n by the transform's angle.
// Clockwise seen from outside the face is a negative angle about n.
func (t LayerTransform) turnVector(n, v [3]int) [3]int {
	d := dot(n, v)
	c := cross(n, v)
	var out [3]int
	for i := 0; i < 3; i++ {
		switch t.Turn {
		case CCW:
			out[i] = d*n[i] + c[i]
		case Double:
			out[i] = 2*d*n[i] - v[i]
		default:
			out[i] = d*n[i] - c[i]
		}
	}
	return out
}

// Affects reports whether p belongs to the transform's layer.
func (t LayerTransform) Affects(p CubePosition) bool {
	return t.Layer.Contains(p)
}

// ApplyOnPosition returns where a block at p ends up. Positions outside
// the layer map to themselves, so the function is a bijection on all 27
// positions.
func (t LayerTransform) ApplyOnPosition(p CubePosition) CubePosition {
	if !t.Affects(p) {
		return p
	}
	return positionAt(t.turnVector(t.Layer.Normal(), p.Offset()))
}

// Inverse returns the transform that undoes t.
// R becomes R', R' becomes R, R2 stays R2.
func (t LayerTransform) Inverse() LayerTransform {
	inv := t
	switch t.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// Axis returns the geometric rotation axis, the outward face normal.
func (t LayerTransform) Axis() [3]int {
	return t.Layer.Normal()
}

// Angle returns the signed rotation angle about Axis in radians.
func (t LayerTransform) Angle() float64 {
	switch t.Turn {
	case CCW:
		return math.Pi / 2
	case Double:
		return -math.Pi
	default:
		return -math.Pi / 2
	}
}

// Notation returns the standard notation string: R, R', R2.
func (t LayerTransform) Notation() string {
	suffix := ""
	switch t.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return t.Layer.String() + suffix
}

func (t LayerTransform) String() string {
	return t.Notation()
}

// ParseTransform parses a standard notation string such as R, R' or R2.
func ParseTransform(s string) (LayerTransform, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return LayerTransform{}, ErrInvalidNotation
	}

	layer, err := ParseLayer(s[:1])
	if err != nil {
		return LayerTransform{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return LayerTransform{}, ErrInvalidNotation
		}
	}

	return LayerTransform{Layer: layer, Turn: turn}, nil
}

// ParseTransforms parses a space-separated sequence such as "R U R' U'".
func ParseTransforms(s string) ([]LayerTransform, error) {
	parts := strings.Fields(s)
	out := make([]LayerTransform, 0, len(parts))
	for _, part := range parts {
		t, err := ParseTransform(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// FormatTransforms formats transforms as a space-separated notation string.
func FormatTransforms(ts []LayerTransform) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Notation()
	}
	return strings.Join(parts, " ")
}

// normalizeTurn maps a quarter-turn count onto a Turn. ok is false for a
// multiple of four, which turns nothing.
func normalizeTurn(quarters int) (t Turn, ok bool) {
	switch ((quarters % 4) + 4) % 4 {
	case 1:
		return CW, true
	case 2:
		return Double, true
	case 3:
		return CCW, true
	}
	return 0, false
}

// Simplify merges consecutive transforms of the same layer, so R R becomes
// R2 and R R' cancels. The result has the same effect as ts.
func Simplify(ts []LayerTransform) []LayerTransform {
	out := make([]LayerTransform, 0, len(ts))
	for _, t := range ts {
		if n := len(out); n > 0 && out[n-1].Layer == t.Layer {
			turn, ok := normalizeTurn(int(out[n-1].Turn) + int(t.Turn))
			if ok {
				out[n-1].Turn = turn
			} else {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, t)
	}
	return out
}
