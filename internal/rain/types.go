package rain

// Clear is the colour id meaning "no foreground", used to erase a cell.
const Clear = -1

// ColorTriple holds the colour ids for the three visual zones of a trail.
type ColorTriple struct {
	Head int `yaml:"head"`
	Fade int `yaml:"fade"`
	Tail int `yaml:"tail"`
}

// CellRenderer receives every cell change the engine produces.
type CellRenderer interface {
	OnCellUpdate(x, y int, ch rune, color int)
}

// FrameRenderer is implemented by renderers that want to know when a tick
// has finished emitting updates, e.g. to flush a buffer.
type FrameRenderer interface {
	EndFrame()
}

// RendererFunc adapts a plain function to CellRenderer.
type RendererFunc func(x, y int, ch rune, color int)

func (f RendererFunc) OnCellUpdate(x, y int, ch rune, color int) { f(x, y, ch, color) }
