package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	busyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles paints one sticker per color.
var stickerStyles = map[rubik.Color]lipgloss.Style{
	rubik.White:  sticker("#FFFFFF"),
	rubik.Yellow: sticker("#FFD500"),
	rubik.Green:  sticker("#009B48"),
	rubik.Blue:   sticker("#0046AD"),
	rubik.Red:    sticker("#B71234"),
	rubik.Orange: sticker("#FF5800"),
}

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("#000000"))
}

// renderNet draws the cube as a colored unfolded net, size columns per
// sticker.
func renderNet(r *rubik.Rubik, size int) string {
	size = max(size, 1)
	f := r.Facelets()
	var b strings.Builder

	cell := strings.Repeat(" ", size)
	row := func(face rubik.Layer, i int) {
		for col := 0; col < 3; col++ {
			b.WriteString(stickerStyles[f[face][i*3+col]].Render(cell))
		}
	}
	pad := strings.Repeat(" ", 3*size+1)

	for i := 0; i < 3; i++ {
		b.WriteString(pad)
		row(rubik.LayerU, i)
		b.WriteString("\n")
	}
	for i := 0; i < 3; i++ {
		for _, face := range []rubik.Layer{rubik.LayerL, rubik.LayerF, rubik.LayerR, rubik.LayerB} {
			row(face, i)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for i := 0; i < 3; i++ {
		b.WriteString(pad)
		row(rubik.LayerD, i)
		b.WriteString("\n")
	}
	return b.String()
}
