package gocube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// RubikName is the entity name of the cube itself.
const RubikName = "Rubik"

var positionNames = func() [rubik.NumPositions]string {
	var names [rubik.NumPositions]string
	for _, p := range rubik.AllPositions() {
		names[p] = p.Name()
	}
	return names
}()

// PositionName returns the stable entity name of a cell, e.g. "UFR".
func PositionName(p rubik.CubePosition) string {
	return positionNames[p]
}

// BlockName returns the stable name of a block, derived from the grid
// coordinates of its home cell: "cube-x-y-z".
func BlockName(id BlockID) string {
	x, y, z := id.Home().Coords()
	return fmt.Sprintf("cube-%d-%d-%d", x, y, z)
}

// EntityPath addresses an entity from the cube down, e.g. [Rubik UFR].
type EntityPath []string

// PathFor returns the path of the block at position p.
func PathFor(p rubik.CubePosition) EntityPath {
	return EntityPath{RubikName, PositionName(p)}
}

// ParseEntityPath parses a slash-separated path such as "Rubik/UFR".
func ParseEntityPath(s string) (EntityPath, error) {
	path := EntityPath(strings.Split(strings.Trim(s, "/"), "/"))
	if _, err := path.Position(); err != nil {
		return nil, err
	}
	return path, nil
}

// Position returns the position the path names.
func (path EntityPath) Position() (rubik.CubePosition, error) {
	if len(path) != 2 || path[0] != RubikName {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, path.String())
	}
	for i, name := range positionNames {
		if name == path[1] {
			return rubik.CubePosition(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEntity, path.String())
}

func (path EntityPath) String() string {
	return strings.Join(path, "/")
}
