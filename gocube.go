// Package gocube simulates a 3x3x3 Rubik's cube for rendering: 27 blocks
// that turn layer by layer and animate smoothly between orientations.
//
// # Features
//
//   - Per-block state mirrored against the aggregate cube of package rubik
//   - Layer moves dispatched from trigger keys, with an inverse modifier
//   - Tick-driven rotation animations that always finish on the exact
//     target orientation
//   - Stable entity names for the cube and each of its 27 cells
//
// # Quick Start
//
// The host owns the cube and calls the engine once per frame:
//
//	cube := gocube.NewCube()
//	engine := gocube.NewEngine(gocube.WithDuration(300 * time.Millisecond))
//
//	for frame := range frames {
//	    engine.Frame(cube, frame.Delta, gocube.Input{
//	        Keys:     frame.Keys,     // e.g. []gocube.Key{"r"}
//	        Modifier: frame.CtrlHeld, // turn the inverse way, without animation
//	    })
//	    for _, b := range cube.Blocks() {
//	        draw(b.Name(), b.Transform(1.0))
//	    }
//	}
//
// # Moves
//
// Moves can also be dispatched directly, bypassing key bindings:
//
//	engine.HandleTrigger(cube, rubik.R2, false)
//
// A move whose layer still has animating blocks is rejected as a whole, so
// a block never carries two animations and the blocks never disagree with
// the aggregate state.
package gocube
