package gocube

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// Engine drives cubes: it turns triggers into moves and advances the
// resulting animations. It holds configuration and statistics only; the
// cube state is passed in on every call.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg    *config
	logger *log.Logger
	stats  Stats
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		cfg:    cfg,
		logger: cfg.logger,
	}
}

// Duration returns the animation duration of one move.
func (e *Engine) Duration() time.Duration {
	return e.cfg.duration
}

// Bindings returns a copy of the key bindings.
func (e *Engine) Bindings() Bindings {
	return e.cfg.bindings.Clone()
}

// Key is a trigger key as delivered by the host, e.g. "r".
type Key string

// Bindings maps trigger keys to the layer they turn.
type Bindings map[Key]rubik.Layer

// DefaultBindings binds each face letter to its layer.
func DefaultBindings() Bindings {
	b := make(Bindings, rubik.NumLayers)
	for _, l := range rubik.Layers() {
		b[Key(strings.ToLower(l.String()))] = l
	}
	return b
}

// Lookup returns the layer bound to k. Keys match case-insensitively.
func (b Bindings) Lookup(k Key) (rubik.Layer, bool) {
	l, ok := b[Key(strings.ToLower(string(k)))]
	return l, ok
}

// Clone returns a copy of b with normalized keys.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for k, l := range b {
		out[Key(strings.ToLower(string(k)))] = l
	}
	return out
}

// Input is the input collected by the host for one frame.
type Input struct {
	// Keys pressed this frame, in delivery order.
	Keys []Key
	// Modifier reports whether the inverse modifier is held.
	Modifier bool
}

// FrameResult reports what happened during one frame.
type FrameResult struct {
	Dispatch *Dispatch // nil when no bound key was pressed
	Settled  []BlockID
}

// Frame runs one tick: it dispatches the first bound key in the input,
// ignoring any later ones, and then advances animations by dt. A move
// dispatched in this frame is advanced in the same frame.
func (e *Engine) Frame(c *Cube, dt time.Duration, in Input) FrameResult {
	e.stats.Frames++
	var res FrameResult
	for _, k := range in.Keys {
		layer, ok := e.cfg.bindings.Lookup(k)
		if !ok {
			continue
		}
		d := e.HandleTrigger(c, rubik.LayerTransform{Layer: layer, Turn: rubik.CW}, in.Modifier)
		res.Dispatch = &d
		break
	}
	res.Settled = e.Step(c, dt)
	return res
}
