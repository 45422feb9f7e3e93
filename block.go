package gocube

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// BlockID identifies a block by the position it occupies in the solved
// layout. It never changes while the block moves.
type BlockID rubik.CubePosition

// Home returns the block's position in the solved layout.
func (id BlockID) Home() rubik.CubePosition {
	return rubik.CubePosition(id)
}

func (id BlockID) String() string {
	return BlockName(id)
}

// Block is the state of one of the 27 blocks.
//
// Position and Perm are the logical state and change the moment a move is
// dispatched. Rotation is the visual state; it lags behind Perm while an
// animation runs and equals PermToQuat(Perm) at rest.
type Block struct {
	ID       BlockID
	Position rubik.CubePosition
	Perm     rubik.CubePermutation
	Rotation mgl64.Quat
}

func newBlock(id BlockID) Block {
	return Block{
		ID:       id,
		Position: id.Home(),
		Perm:     rubik.Unit,
		Rotation: mgl64.QuatIdent(),
	}
}

// Name returns the block's stable entity name.
func (b Block) Name() string {
	return BlockName(b.ID)
}

// HomeOffset returns the block center in the solved layout, relative to
// the cube core, in block units.
func (b Block) HomeOffset() mgl64.Vec3 {
	return vec3(b.ID.Home().Offset())
}

// Translation returns the block center for the current visual rotation.
// Blocks turn about the cube core, so the center is the home offset
// carried along by Rotation.
func (b Block) Translation(spacing float64) mgl64.Vec3 {
	return b.Rotation.Rotate(b.HomeOffset().Mul(spacing))
}

// Transform returns the block's model matrix relative to the cube core.
func (b Block) Transform(spacing float64) mgl64.Mat4 {
	home := b.HomeOffset().Mul(spacing)
	return b.Rotation.Mat4().Mul4(mgl64.Translate3D(home.X(), home.Y(), home.Z()))
}
