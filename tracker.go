package gocube

// Stats counts what an Engine has done since it was created or last reset.
type Stats struct {
	Frames     int // calls to Frame
	Dispatched int // moves applied with animation
	Instant    int // moves applied without animation
	Rejected   int // triggers refused because the layer was busy
	Settled    int // animations that ran to completion
}

// Stats returns the engine's counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// ResetStats zeroes the engine's counters.
func (e *Engine) ResetStats() {
	e.stats = Stats{}
}

// record updates the counters for a dispatch, logs it and fires the move
// callback.
func (e *Engine) record(d Dispatch) {
	switch d.Mode {
	case DispatchAnimated:
		e.stats.Dispatched++
	case DispatchInstant:
		e.stats.Instant++
	case DispatchRejected:
		e.stats.Rejected++
	}

	if d.Mode == DispatchRejected {
		e.logger.Debug("move rejected", "id", d.ID, "move", d.Transform, "busy", len(d.Busy))
	} else {
		e.logger.Debug("move dispatched", "id", d.ID, "move", d.Transform, "mode", d.Mode, "moved", len(d.Moved))
	}

	if e.cfg.onMove != nil {
		e.cfg.onMove(d)
	}
}
