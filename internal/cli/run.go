package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

var (
	runStep    time.Duration
	runTrace   bool
	runInverse bool
	runPlain   bool
)

var runCmd = &cobra.Command{
	Use:   "run <moves>",
	Short: "Run a move sequence headless",
	Long: `Dispatch a move sequence one move at a time, advancing the animation
clock in fixed steps until each move settles, then print the final state.

Examples:
  gocube-sim run "R U R' U'"
  gocube-sim run --trace --step 100ms "F2 B"
  gocube-sim run --inverse "R U"    # runs R' U' with the inverse modifier`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&runStep, "step", 0, "Frame duration (default: one frame at the configured FPS)")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "Print every frame")
	runCmd.Flags().BoolVar(&runInverse, "inverse", false, "Hold the inverse modifier for every move")
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "Print the net as letters instead of colors")
	rootCmd.AddCommand(runCmd)
}

// runResult summarizes a headless run.
type runResult struct {
	Frames  int
	Elapsed time.Duration
	Final   *rubik.Rubik
	Stats   gocube.Stats
}

// simulate dispatches each move and steps the engine until the cube
// settles. Frames are reported to trace when it is non-nil.
func simulate(engine *gocube.Engine, moves []rubik.LayerTransform, inverse bool, step time.Duration, trace io.Writer) (runResult, error) {
	if step <= 0 {
		return runResult{}, fmt.Errorf("step must be positive, got %v", step)
	}
	cube := gocube.NewCube()
	var res runResult

	for _, move := range moves {
		d := engine.HandleTrigger(cube, move, inverse)
		if err := d.Err(); err != nil {
			return res, fmt.Errorf("move %s: %w", d.Transform, err)
		}
		if trace != nil {
			fmt.Fprintf(trace, "%8s  %-3s %-8s %s\n", res.Elapsed, d.Transform, d.Mode, d.ID)
		}
		for !cube.Settled() {
			settled := engine.Step(cube, step)
			res.Frames++
			res.Elapsed += step
			if trace != nil && len(settled) > 0 {
				fmt.Fprintf(trace, "%8s  settled %d blocks\n", res.Elapsed, len(settled))
			}
		}
	}

	res.Final = cube.Aggregate()
	res.Stats = engine.Stats()
	return res, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	moves, err := rubik.ParseTransforms(strings.Join(args, " "))
	if err != nil {
		return err
	}

	step := runStep
	if step == 0 {
		step = cfg.FrameInterval()
	}

	out := cmd.OutOrStdout()
	var trace io.Writer
	if runTrace {
		trace = out
	}

	engine := gocube.NewEngine(cfg.EngineOptions(logger)...)
	res, err := simulate(engine, moves, runInverse, step, trace)
	if err != nil {
		return err
	}
	logger.Debug("run complete", "moves", len(moves), "frames", res.Frames, "elapsed", res.Elapsed)

	fmt.Fprintln(out)
	if runPlain {
		fmt.Fprint(out, res.Final.String())
	} else {
		fmt.Fprint(out, renderNet(res.Final, cfg.Render.BlockSize))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves:   %s\n", moveStyle.Render(rubik.FormatTransforms(moves)))
	if simple := rubik.Simplify(moves); len(simple) < len(moves) {
		fmt.Fprintf(out, "Reduced: %s (%d moves)\n", moveStyle.Render(rubik.FormatTransforms(simple)), len(simple))
	}
	fmt.Fprintf(out, "Solved:  %v\n", res.Final.IsSolved())
	fmt.Fprintf(out, "Phase:   %s\n", res.Final.Phase().DisplayName())
	fmt.Fprintf(out, "Frames:  %d (%s simulated)\n", res.Frames, res.Elapsed)
	fmt.Fprintf(out, "Applied: %d animated, %d instant\n", res.Stats.Dispatched, res.Stats.Instant)
	return nil
}
