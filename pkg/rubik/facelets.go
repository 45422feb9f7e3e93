package rubik

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// SolvedColor returns the color a layer's face shows when solved.
func (l Layer) SolvedColor() Color {
	// Layer and Color share their numbering.
	return Color(l)
}

// faceUp is the direction drawn as the top row of each face in the net.
var faceUp = [NumLayers][3]int{
	LayerU: {0, 0, -1},
	LayerD: {0, 0, 1},
	LayerF: {0, 1, 0},
	LayerB: {0, 1, 0},
	LayerR: {0, 1, 0},
	LayerL: {0, 1, 0},
}

// FaceletPosition returns the cell holding sticker i of a face. Stickers
// are indexed as seen from outside the face:
//
//	0 1 2
//	3 4 5
//	6 7 8
func FaceletPosition(face Layer, i int) CubePosition {
	n := face.Normal()
	up := faceUp[face]
	right := cross(up, n)
	row, col := i/3, i%3
	var off [3]int
	for k := 0; k < 3; k++ {
		off[k] = n[k] + (1-row)*up[k] + (col-1)*right[k]
	}
	return positionAt(off)
}

// Facelets projects the block state onto sticker colors,
// Facelets()[face][i] being sticker i of the face.
func (r *Rubik) Facelets() [NumLayers][9]Color {
	var out [NumLayers][9]Color
	for _, face := range Layers() {
		n := face.Normal()
		for i := 0; i < 9; i++ {
			cell := r.cells[FaceletPosition(face, i)]
			// The sticker now facing n faced Perm⁻¹·n when solved.
			home := cell.Perm.Inverse().Apply(n)
			out[face][i] = layerFacing(home).SolvedColor()
		}
	}
	return out
}

// String renders the cube as an unfolded net.
func (r *Rubik) String() string {
	f := r.Facelets()
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[LayerU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Layer{LayerL, LayerF, LayerR, LayerB} {
			for col := 0; col < 3; col++ {
				b.WriteString(f[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(f[LayerD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
