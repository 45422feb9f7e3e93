package gocube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// Cube is the authoritative state of one simulated cube: the aggregate
// rubik.Rubik, the 27 block records it mirrors and the animation tasks
// currently attached to blocks.
//
// The scene that owns a Cube hands it to the Engine on every call. A Cube
// is not safe for concurrent use.
type Cube struct {
	rubik  rubik.Rubik
	blocks [rubik.NumPositions]Block
	tasks  [rubik.NumPositions]*RotateAnimation
	active int
}

// NewCube creates a cube in the solved layout.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved layout and drops every animation.
func (c *Cube) Reset() {
	c.rubik.Reset()
	for i := range c.blocks {
		c.blocks[i] = newBlock(BlockID(i))
		c.tasks[i] = nil
	}
	c.active = 0
}

// Aggregate returns a copy of the aggregate cube state.
func (c *Cube) Aggregate() *rubik.Rubik {
	return c.rubik.Clone()
}

// Block returns the block with the given identity.
func (c *Cube) Block(id BlockID) Block {
	return c.blocks[id]
}

// BlockAt returns the block currently at position p.
func (c *Cube) BlockAt(p rubik.CubePosition) Block {
	return c.blocks[c.rubik.At(p).Home]
}

// Blocks returns all blocks ordered by identity.
func (c *Cube) Blocks() []Block {
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks[:])
	return out
}

// Animation returns the task attached to a block, if any.
func (c *Cube) Animation(id BlockID) (RotateAnimation, bool) {
	if a := c.tasks[id]; a != nil {
		return *a, true
	}
	return RotateAnimation{}, false
}

// Animating reports whether a block has an animation task attached.
func (c *Cube) Animating(id BlockID) bool {
	return c.tasks[id] != nil
}

// ActiveAnimations returns the number of attached animation tasks.
func (c *Cube) ActiveAnimations() int {
	return c.active
}

// Settled reports whether no animation is running.
func (c *Cube) Settled() bool {
	return c.active == 0
}

// IsSolved reports whether the logical state shows a solved cube.
func (c *Cube) IsSolved() bool {
	return c.rubik.IsSolved()
}

// Phase returns the layer-by-layer stage the logical state shows.
func (c *Cube) Phase() rubik.Phase {
	return c.rubik.Phase()
}

// String renders the logical state as an unfolded net.
func (c *Cube) String() string {
	return c.rubik.String()
}

func (c *Cube) attach(a *RotateAnimation) {
	if c.tasks[a.Block] != nil {
		panic(fmt.Sprintf("gocube: block %v already has an animation", a.Block))
	}
	c.tasks[a.Block] = a
	c.active++
}

func (c *Cube) detach(id BlockID) {
	if c.tasks[id] != nil {
		c.tasks[id] = nil
		c.active--
	}
}

// Verify checks that the blocks and the aggregate describe the same cube:
// every block's position and orientation match the aggregate cell, the
// block positions cover all 27 cells, and settled blocks are drawn at
// their logical orientation.
func (c *Cube) Verify() error {
	var seen [rubik.NumPositions]bool
	for _, b := range c.blocks {
		if !b.Position.Valid() {
			return fmt.Errorf("%w: block %v at invalid position %d", ErrStateDiverged, b.ID, b.Position)
		}
		if seen[b.Position] {
			return fmt.Errorf("%w: two blocks at %v", ErrStateDiverged, b.Position)
		}
		seen[b.Position] = true

		cell := c.rubik.At(b.Position)
		if cell.Home != b.ID.Home() {
			return fmt.Errorf("%w: block %v is at %v but the aggregate holds %v there",
				ErrStateDiverged, b.ID, b.Position, BlockID(cell.Home))
		}
		if cell.Perm != b.Perm {
			return fmt.Errorf("%w: block %v has orientation %v, aggregate has %v",
				ErrStateDiverged, b.ID, b.Perm, cell.Perm)
		}
		if c.tasks[b.ID] == nil && !sameRotation(b.Rotation, PermToQuat(b.Perm)) {
			return fmt.Errorf("%w: settled block %v is drawn off its orientation", ErrStateDiverged, b.ID)
		}
	}
	return nil
}

// Resolve returns the block addressed by an entity path such as
// Rubik/UFR. The path names a position, so the result is whichever block
// currently occupies it.
func (c *Cube) Resolve(path EntityPath) (Block, error) {
	p, err := path.Position()
	if err != nil {
		return Block{}, err
	}
	return c.BlockAt(p), nil
}

// sameRotation reports whether two unit quaternions describe the same
// rotation; q and -q do. The tolerance is absolute, so float residue on a
// zero component does not count as a difference.
func sameRotation(a, b mgl64.Quat) bool {
	return math.Abs(a.Dot(b)) > 1-1e-9
}
