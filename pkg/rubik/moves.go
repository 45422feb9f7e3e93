package rubik

// Predefined transforms for convenience.
//
// Example:
//
//	r := rubik.New()
//	r.ExecuteAll(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
var (
	// Right layer
	R      = LayerTransform{Layer: LayerR, Turn: CW}
	RPrime = LayerTransform{Layer: LayerR, Turn: CCW}
	R2     = LayerTransform{Layer: LayerR, Turn: Double}

	// Left layer
	L      = LayerTransform{Layer: LayerL, Turn: CW}
	LPrime = LayerTransform{Layer: LayerL, Turn: CCW}
	L2     = LayerTransform{Layer: LayerL, Turn: Double}

	// Up layer
	U      = LayerTransform{Layer: LayerU, Turn: CW}
	UPrime = LayerTransform{Layer: LayerU, Turn: CCW}
	U2     = LayerTransform{Layer: LayerU, Turn: Double}

	// Down layer
	D      = LayerTransform{Layer: LayerD, Turn: CW}
	DPrime = LayerTransform{Layer: LayerD, Turn: CCW}
	D2     = LayerTransform{Layer: LayerD, Turn: Double}

	// Front layer
	F      = LayerTransform{Layer: LayerF, Turn: CW}
	FPrime = LayerTransform{Layer: LayerF, Turn: CCW}
	F2     = LayerTransform{Layer: LayerF, Turn: Double}

	// Back layer
	B      = LayerTransform{Layer: LayerB, Turn: CW}
	BPrime = LayerTransform{Layer: LayerB, Turn: CCW}
	B2     = LayerTransform{Layer: LayerB, Turn: Double}
)

// SexyMove is R U R' U'. Six repetitions return the cube to its start.
var SexyMove = []LayerTransform{R, U, RPrime, UPrime}

// Transforms returns all 18 face transforms.
func Transforms() []LayerTransform {
	out := make([]LayerTransform, 0, 3*NumLayers)
	for _, l := range Layers() {
		for _, turn := range []Turn{CW, CCW, Double} {
			out = append(out, LayerTransform{Layer: l, Turn: turn})
		}
	}
	return out
}
