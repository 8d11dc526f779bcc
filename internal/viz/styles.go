package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/rain"
)

const rainClear = rain.Clear

var (
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	// one foreground style per console colour id
	glyphStyles [16]lipgloss.Style
)

func init() {
	for id := range glyphStyles {
		glyphStyles[id] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(palette.XTerm(id))))
	}
}

// RenderRow styles a row of cells, one style run per colour change.
// Background cells render as blanks.
func RenderRow(cells []Cell) string {
	var out, run strings.Builder
	runColor := rainClear
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if palette.Valid(runColor) {
			out.WriteString(glyphStyles[runColor].Render(run.String()))
		} else {
			out.WriteString(run.String())
		}
		run.Reset()
	}

	for _, c := range cells {
		color := c.Color
		if !palette.Valid(color) {
			color = rainClear
		}
		if color != runColor {
			flush()
			runColor = color
		}
		if color == rainClear {
			run.WriteByte(' ')
		} else {
			run.WriteRune(c.Ch)
		}
	}
	flush()
	return out.String()
}

// Swatch renders a short sample of id, e.g. for palette listings.
func Swatch(id int, text string) string {
	if !palette.Valid(id) {
		return text
	}
	return glyphStyles[id].Render(text)
}
