package gocube

import (
	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// DispatchMode describes how a trigger was handled.
type DispatchMode int

const (
	DispatchAnimated DispatchMode = iota // applied, members animate
	DispatchInstant                      // applied, no animation
	DispatchRejected                     // members still animating, nothing changed
	DispatchIgnored                      // no cube
)

func (m DispatchMode) String() string {
	switch m {
	case DispatchAnimated:
		return "animated"
	case DispatchInstant:
		return "instant"
	case DispatchRejected:
		return "rejected"
	case DispatchIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Dispatch is the outcome of one trigger.
type Dispatch struct {
	ID        string               // unique per dispatch, for log correlation
	Transform rubik.LayerTransform // the transform applied, inverted if the modifier was held
	Mode      DispatchMode
	Moved     []BlockID // blocks that changed position and orientation
	Busy      []BlockID // layer members that were still animating
}

// Err returns ErrLayerBusy for a rejected dispatch and nil otherwise.
func (d Dispatch) Err() error {
	if d.Mode == DispatchRejected {
		return ErrLayerBusy
	}
	return nil
}

// HandleTrigger turns the layer of t. With inverse set the inverse
// transform is used.
//
// The blocks of the layer are selected by their current position. If any
// of them is still animating the trigger is rejected and nothing changes.
// Otherwise each member gets its new position and orientation at once,
// the aggregate executes the transform once, and every member gets an
// animation from its old to its new orientation. Inverse triggers skip the
// animation unless WithInstantInverse(false) is set.
//
// A nil cube is ignored.
func (e *Engine) HandleTrigger(c *Cube, t rubik.LayerTransform, inverse bool) Dispatch {
	if inverse {
		t = t.Inverse()
	}
	if c == nil {
		return Dispatch{Transform: t, Mode: DispatchIgnored}
	}

	d := Dispatch{ID: uuid.NewString(), Transform: t}
	members := c.members(t.Layer)
	for _, id := range members {
		if c.Animating(id) {
			d.Busy = append(d.Busy, id)
		}
	}

	switch {
	case len(d.Busy) > 0:
		d.Mode = DispatchRejected
	case inverse && e.cfg.instantInverse:
		e.commit(c, t, members, false)
		d.Mode = DispatchInstant
		d.Moved = members
	default:
		e.commit(c, t, members, true)
		d.Mode = DispatchAnimated
		d.Moved = members
	}

	e.record(d)
	return d
}

// members returns the blocks currently in layer l, ordered by identity.
func (c *Cube) members(l rubik.Layer) []BlockID {
	out := make([]BlockID, 0, 9)
	for _, b := range c.blocks {
		if l.Contains(b.Position) {
			out = append(out, b.ID)
		}
	}
	return out
}

// commit updates the members and the aggregate for t.
func (e *Engine) commit(c *Cube, t rubik.LayerTransform, members []BlockID, animate bool) {
	delta := t.Rotation()
	for _, id := range members {
		b := &c.blocks[id]
		prev := b.Perm
		next := prev.Compose(delta)
		if animate {
			c.attach(newRotateAnimation(id, t, prev, next, e.cfg.duration))
		} else {
			b.Rotation = PermToQuat(next)
		}
		b.Position = t.ApplyOnPosition(b.Position)
		b.Perm = next
	}
	c.rubik.Execute(t)

	if e.cfg.verify {
		if err := c.Verify(); err != nil {
			panic(err)
		}
	}
}
