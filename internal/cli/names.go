package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

var namesCmd = &cobra.Command{
	Use:   "names [moves]",
	Short: "Show entity names and which block occupies each cell",
	Long: `List the 27 cells with their entity path and the block that occupies
each one. With a move sequence, the moves are applied instantly first.`,
	RunE: runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)
}

// namesTable builds the identity rows for a cube.
func namesTable(cube *gocube.Cube) [][]string {
	rows := make([][]string, 0, rubik.NumPositions)
	for _, p := range rubik.AllPositions() {
		b := cube.BlockAt(p)
		x, y, z := p.Coords()
		rows = append(rows, []string{
			fmt.Sprintf("%d", p),
			fmt.Sprintf("(%d,%d,%d)", x, y, z),
			gocube.PathFor(p).String(),
			b.Name(),
			b.Perm.String(),
		})
	}
	return rows
}

func runNames(cmd *cobra.Command, args []string) error {
	moves, err := rubik.ParseTransforms(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cube := gocube.NewCube()
	engine := gocube.NewEngine(
		gocube.WithDuration(0),
		gocube.WithLogger(loggerFromContext(cmd.Context())),
	)
	for _, move := range moves {
		engine.HandleTrigger(cube, move, false)
		engine.Step(cube, 0)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(statusStyle).
		Headers("#", "GRID", "PATH", "BLOCK", "ORIENTATION").
		Rows(namesTable(cube)...)

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
