package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

func TestKeyInput(t *testing.T) {
	tests := []struct {
		in       string
		key      gocube.Key
		modifier bool
		ok       bool
	}{
		{"r", "r", false, true},
		{"R", "r", true, true},
		{"ctrl+f", "f", true, true},
		{"ctrl+up", "", false, false},
		{"1", "", false, false},
		{"enter", "", false, false},
	}
	for _, tt := range tests {
		k, modifier, ok := keyInput(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.key, k, "input %q", tt.in)
		assert.Equal(t, tt.modifier, modifier, "input %q", tt.in)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelFrame(t *testing.T) {
	engine := gocube.NewEngine(gocube.WithDuration(100 * time.Millisecond))
	m := newPlayModel(engine, 50*time.Millisecond, 2)

	m.Update(runes("r"))
	m.Update(runes("l"))
	_, cmd := m.Update(frameMsg(time.Now()))
	assert.NotNil(t, cmd, "frames keep ticking")

	require.NotNil(t, m.lastMove)
	assert.Equal(t, rubik.R, m.lastMove.Transform)
	assert.Equal(t, []string{"R"}, m.history)
	assert.Equal(t, 9, m.cube.ActiveAnimations())
	s, left := m.progress()
	assert.InDelta(t, 0.5, s, 1e-9)
	assert.Equal(t, 50*time.Millisecond, left)
	assert.Contains(t, m.View(), "Turning: 9 blocks")
	assert.Contains(t, m.View(), "50ms left")

	m.frame(50 * time.Millisecond)
	assert.True(t, m.cube.Settled())
	s, left = m.progress()
	assert.Equal(t, 1.0, s)
	assert.Zero(t, left)
}

func TestPlayModelInverseAndReset(t *testing.T) {
	engine := gocube.NewEngine()
	m := newPlayModel(engine, 10*time.Millisecond, 2)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m.frame(0)
	require.NotNil(t, m.lastMove)
	assert.Equal(t, gocube.DispatchInstant, m.lastMove.Mode)
	assert.Equal(t, rubik.UPrime, m.lastMove.Transform)
	assert.False(t, m.cube.IsSolved())

	m.Update(runes("0"))
	assert.True(t, m.cube.IsSolved())
	assert.Empty(t, m.history)

	_, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "Goodbye!\n", m.View())
}

func TestSimulate(t *testing.T) {
	engine := gocube.NewEngine(gocube.WithDuration(100 * time.Millisecond))
	moves, err := rubik.ParseTransforms("R U R' U'")
	require.NoError(t, err)

	var trace bytes.Buffer
	res, err := simulate(engine, moves, false, 25*time.Millisecond, &trace)
	require.NoError(t, err)

	assert.Equal(t, 16, res.Frames)
	assert.Equal(t, 400*time.Millisecond, res.Elapsed)
	assert.Equal(t, 4, res.Stats.Dispatched)
	assert.Equal(t, 36, res.Stats.Settled)
	assert.Equal(t, 8, strings.Count(trace.String(), "\n"))

	want := rubik.New()
	want.ExecuteAll(moves...)
	assert.True(t, res.Final.Equal(want))

	_, err = simulate(engine, moves, false, 0, nil)
	assert.Error(t, err)
}

func TestSimulateInverse(t *testing.T) {
	engine := gocube.NewEngine()
	res, err := simulate(engine, []rubik.LayerTransform{rubik.R}, true, time.Millisecond, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Frames)

	want := rubik.New()
	want.Execute(rubik.RPrime)
	assert.True(t, res.Final.Equal(want))
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"run", "--plain", "--step", "100ms", "R2", "R2"})
	t.Cleanup(func() { runPlain = false; runStep = 0 })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Solved:  true")
	assert.Contains(t, out.String(), "Phase:   Solved")
	assert.Contains(t, out.String(), "Frames:  10")
}

func TestNamesTable(t *testing.T) {
	cube := gocube.NewCube()
	rows := namesTable(cube)
	require.Len(t, rows, rubik.NumPositions)
	assert.Equal(t, []string{"2", "(2,2,2)", "Rubik/UFR", "cube-2-2-2", "UNIT"}, rows[2])
}

// netWidths returns the widest top row and the widest middle row of a net.
func netWidths(net string) (top, middle int) {
	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if i >= 3 && i < 6 {
			middle = max(middle, w)
		} else {
			top = max(top, w)
		}
	}
	return top, middle
}

func TestRenderNetBlockSize(t *testing.T) {
	tests := []struct {
		size        int
		top, middle int
	}{
		{1, 7, 16},
		{2, 13, 28},
		{5, 31, 64},
		{0, 7, 16},
	}
	for _, tt := range tests {
		net := renderNet(rubik.New(), tt.size)
		assert.Equal(t, 9, strings.Count(net, "\n"), "size %d", tt.size)
		top, middle := netWidths(net)
		assert.Equal(t, tt.top, top, "size %d", tt.size)
		assert.Equal(t, tt.middle, middle, "size %d", tt.size)
	}
}

func TestRunCommandUsesBlockSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gocube-sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  block_size: 5\n"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"run", "--config", path, "--step", "500ms", "R"})
	t.Cleanup(func() { configPath = ""; runStep = 0 })

	require.NoError(t, rootCmd.Execute())
	net := out.String()[:strings.Index(out.String(), "Moves:")]
	_, middle := netWidths(strings.TrimLeft(net, "\n"))
	assert.Equal(t, 64, middle)
}

func TestPlayModelBlockSize(t *testing.T) {
	m := newPlayModel(gocube.NewEngine(), time.Second, 4)
	want := renderNet(rubik.New(), 4)
	assert.Contains(t, m.View(), want)
}
