package rubik

import (
	"fmt"
	"strings"
)

// Layer is one of the six outer slices of the cube, named by its face.
type Layer uint8

const (
	LayerU Layer = 0 // Up
	LayerD Layer = 1 // Down
	LayerF Layer = 2 // Front
	LayerB Layer = 3 // Back
	LayerR Layer = 4 // Right
	LayerL Layer = 5 // Left
)

// NumLayers is the number of outer layers.
const NumLayers = 6

var layerNormals = [NumLayers][3]int{
	LayerU: {0, 1, 0},
	LayerD: {0, -1, 0},
	LayerF: {0, 0, 1},
	LayerB: {0, 0, -1},
	LayerR: {1, 0, 0},
	LayerL: {-1, 0, 0},
}

func (l Layer) String() string {
	switch l {
	case LayerU:
		return "U"
	case LayerD:
		return "D"
	case LayerF:
		return "F"
	case LayerB:
		return "B"
	case LayerR:
		return "R"
	case LayerL:
		return "L"
	default:
		return "?"
	}
}

// ParseLayer parses a face letter (case-insensitive).
func ParseLayer(s string) (Layer, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "U":
		return LayerU, nil
	case "D":
		return LayerD, nil
	case "F":
		return LayerF, nil
	case "B":
		return LayerB, nil
	case "R":
		return LayerR, nil
	case "L":
		return LayerL, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLayer, s)
}

// Layers returns the six layers in face order U, D, F, B, R, L.
func Layers() []Layer {
	return []Layer{LayerU, LayerD, LayerF, LayerB, LayerR, LayerL}
}

// Normal returns the outward unit normal of the layer's face.
func (l Layer) Normal() [3]int {
	return layerNormals[l]
}

// Contains reports whether p lies in the layer.
func (l Layer) Contains(p CubePosition) bool {
	return dot(p.Offset(), l.Normal()) == 1
}

// Positions returns the nine positions of the layer in encoding order.
func (l Layer) Positions() []CubePosition {
	out := make([]CubePosition, 0, 9)
	for _, p := range AllPositions() {
		if l.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// layerFacing returns the layer whose outward normal is n.
func layerFacing(n [3]int) Layer {
	for l, ln := range layerNormals {
		if ln == n {
			return Layer(l)
		}
	}
	panic(fmt.Sprintf("rubik: %v is not a face normal", n))
}

func dot(a, b [3]int) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]int) [3]int {
	return [3]int{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
