package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Dispatch errors
	ErrLayerBusy = errors.New("gocube: layer has blocks still animating")

	// Identity errors
	ErrUnknownEntity = errors.New("gocube: unknown entity path")

	// State errors
	ErrStateDiverged = errors.New("gocube: block state diverged from aggregate")
)
