package gocube

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// RotateAnimation turns one block from one orientation to the next over a
// fixed duration. It is attached when a move is dispatched and detached the
// tick its progress reaches 1.
type RotateAnimation struct {
	Block    BlockID
	Axis     mgl64.Vec3 // world axis of the layer turn, unit length
	Angle    float64    // signed turn angle about Axis, radians
	S        float64    // progress, reaches 1 when Elapsed reaches Duration
	Elapsed  time.Duration
	Duration time.Duration
	From     mgl64.Quat
	To       mgl64.Quat
}

func newRotateAnimation(id BlockID, t rubik.LayerTransform, prev, next rubik.CubePermutation, d time.Duration) *RotateAnimation {
	return &RotateAnimation{
		Block:    id,
		Axis:     vec3(t.Axis()),
		Angle:    t.Angle(),
		Duration: d,
		From:     PermToQuat(prev),
		To:       PermToQuat(next),
	}
}

// At returns the rotation at progress s. The block turns about Axis, which
// is the shortest arc from From to To for turns of at most half a
// revolution. s >= 1 yields To exactly.
func (a *RotateAnimation) At(s float64) mgl64.Quat {
	switch {
	case s >= 1:
		return a.To
	case s <= 0:
		return a.From
	}
	return mgl64.QuatRotate(a.Angle*s, a.Axis).Mul(a.From).Normalize()
}

// advance moves the task forward by dt and reports whether it finished.
// Progress is derived from the accumulated integer duration so that ticks
// adding up to Duration always finish the task.
func (a *RotateAnimation) advance(dt time.Duration) bool {
	if dt > 0 {
		a.Elapsed += dt
	}
	if a.Duration <= 0 || a.Elapsed >= a.Duration {
		a.S = 1
		return true
	}
	a.S = float64(a.Elapsed) / float64(a.Duration)
	return false
}

// Remaining returns the time left until the task completes.
func (a *RotateAnimation) Remaining() time.Duration {
	if a.Elapsed >= a.Duration {
		return 0
	}
	return a.Duration - a.Elapsed
}

// Step advances every attached animation by dt, applies the interpolated
// rotation to its block and detaches the tasks that complete. It returns
// the blocks that settled during this tick.
//
// A nil cube is ignored.
func (e *Engine) Step(c *Cube, dt time.Duration) []BlockID {
	if c == nil {
		return nil
	}
	var settled []BlockID
	for i, a := range c.tasks {
		if a == nil {
			continue
		}
		b := &c.blocks[i]
		done := a.advance(dt)
		b.Rotation = a.At(a.S)
		if !done {
			continue
		}
		b.Rotation = a.To
		c.detach(b.ID)
		settled = append(settled, b.ID)
	}

	for _, id := range settled {
		e.stats.Settled++
		e.logger.Debug("block settled", "block", id)
		if e.cfg.onSettle != nil {
			e.cfg.onSettle(id)
		}
	}
	return settled
}
