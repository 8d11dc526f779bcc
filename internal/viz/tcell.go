package viz

import (
	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/digirain/internal/palette"
)

// Screen draws updates onto a tcell screen and shows it once per frame.
type Screen struct {
	screen tcell.Screen
	styles [16]tcell.Style
}

func NewScreen(s tcell.Screen) *Screen {
	out := &Screen{screen: s}
	for id := range out.styles {
		out.styles[id] = tcell.StyleDefault.Foreground(tcell.PaletteColor(palette.XTerm(id)))
	}
	return out
}

func (s *Screen) OnCellUpdate(x, y int, ch rune, color int) {
	if !palette.Valid(color) {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		return
	}
	s.screen.SetContent(x, y, ch, nil, s.styles[color])
}

func (s *Screen) EndFrame() { s.screen.Show() }

// Quit reports whether ev asks to leave the rain.
func Quit(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return true
	case *tcell.EventKey:
		return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
	}
	return false
}
