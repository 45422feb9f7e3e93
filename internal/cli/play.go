package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

var playLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Start an interactive TUI that turns the cube from the keyboard.

Keyboard shortcuts:
  r l u d f b      - Turn a layer clockwise (animated)
  R L U D F B      - Turn a layer counter-clockwise (instant)
  ctrl+<letter>    - Same as the uppercase letter
  0                - Reset to solved
  q/Esc            - Quit

Bindings and the animation duration come from --config.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playLogFile, "log-file", "", "Write engine logs to this file")
	rootCmd.AddCommand(playCmd)
}

// Messages
type frameMsg time.Time

// Model
type playModel struct {
	cube     *gocube.Cube
	engine   *gocube.Engine
	interval time.Duration
	last     time.Time
	size     int // sticker width in columns

	// Input collected since the last frame
	pending gocube.Input

	// UI
	history  []string
	lastMove *gocube.Dispatch
	quitting bool
}

func newPlayModel(engine *gocube.Engine, interval time.Duration, size int) *playModel {
	return &playModel{
		cube:     gocube.NewCube(),
		engine:   engine,
		interval: interval,
		size:     size,
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.frameCmd()
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// keyInput maps a key press to a trigger key. Uppercase letters and
// ctrl+letter carry the inverse modifier.
func keyInput(s string) (k gocube.Key, modifier bool, ok bool) {
	if rest, found := strings.CutPrefix(s, "ctrl+"); found {
		if len(rest) == 1 && unicode.IsLetter(rune(rest[0])) {
			return gocube.Key(strings.ToLower(rest)), true, true
		}
		return "", false, false
	}
	r := []rune(s)
	if len(r) != 1 || !unicode.IsLetter(r[0]) {
		return "", false, false
	}
	if unicode.IsUpper(r[0]) {
		return gocube.Key(string(unicode.ToLower(r[0]))), true, true
	}
	return gocube.Key(s), false, true
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "0":
			m.cube.Reset()
			m.history = nil
			m.lastMove = nil
			return m, nil
		}

		if k, modifier, ok := keyInput(msg.String()); ok {
			// The modifier applies to the whole frame, so a frame
			// holds keys of one kind only.
			if len(m.pending.Keys) == 0 {
				m.pending.Modifier = modifier
			}
			if m.pending.Modifier == modifier {
				m.pending.Keys = append(m.pending.Keys, k)
			}
		}

	case frameMsg:
		now := time.Time(msg)
		dt := m.interval
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.frame(dt)
		return m, m.frameCmd()
	}

	return m, nil
}

// frame hands the collected input to the engine and advances one tick.
func (m *playModel) frame(dt time.Duration) {
	res := m.engine.Frame(m.cube, dt, m.pending)
	m.pending = gocube.Input{}

	if d := res.Dispatch; d != nil {
		m.lastMove = d
		if d.Mode == gocube.DispatchAnimated || d.Mode == gocube.DispatchInstant {
			m.history = append(m.history, d.Transform.Notation())
		}
	}
}

// progress returns the mean progress of the running animations and the
// time until the last of them settles.
func (m *playModel) progress() (float64, time.Duration) {
	var sum float64
	var n int
	var left time.Duration
	for _, b := range m.cube.Blocks() {
		if a, ok := m.cube.Animation(b.ID); ok {
			sum += a.S
			n++
			left = max(left, a.Remaining())
		}
	}
	if n == 0 {
		return 1, 0
	}
	return sum / float64(n), left
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("GoCube Simulator"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.cube.Aggregate(), m.size))
	b.WriteString("\n")

	// Animation status
	if m.cube.Settled() {
		b.WriteString(statusStyle.Render("Idle"))
	} else {
		s, left := m.progress()
		b.WriteString(busyStyle.Render(fmt.Sprintf("Turning: %d blocks, %3.0f%%, %s left",
			m.cube.ActiveAnimations(), 100*s, left)))
	}
	b.WriteString("\n")

	if phase := m.cube.Phase(); phase == rubik.PhaseSolved {
		b.WriteString(moveStyle.Render("SOLVED"))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("Phase: %s\n", statusStyle.Render(phase.DisplayName())))
	}

	// Last move
	if d := m.lastMove; d != nil {
		if err := d.Err(); err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", d.Transform, err)))
		} else {
			b.WriteString(fmt.Sprintf("Last: %s (%s)", moveStyle.Render(d.Transform.Notation()), d.Mode))
		}
		b.WriteString("\n")
	}

	// Recent moves
	if len(m.history) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.history) > 20 {
			start = len(m.history) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(strings.Join(m.history[start:], " ")))
		b.WriteString("\n")
	}

	s := m.engine.Stats()
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d animated, %d instant, %d rejected",
		s.Dispatched, s.Instant, s.Rejected)))
	b.WriteString("\n\n")

	// Help
	b.WriteString(helpStyle.Render("Keys: r l u d f b=turn  Shift/ctrl=inverse  0=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	// The TUI owns the terminal, so engine logs go to a file or nowhere.
	logger := loggerFromContext(ctx).With("cmd", "play")
	var out io.Writer = io.Discard
	if playLogFile != "" {
		f, err := os.Create(playLogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger.SetOutput(out)

	engine := gocube.NewEngine(cfg.EngineOptions(logger)...)
	model := newPlayModel(engine, cfg.FrameInterval(), cfg.Render.BlockSize)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
