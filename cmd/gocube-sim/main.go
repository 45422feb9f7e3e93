// gocube-sim - terminal simulator for a 3x3x3 Rubik's cube.
package main

import (
	"github.com/SeamusWaldron/gocube_sim/internal/cli"
)

func main() {
	cli.Execute()
}
