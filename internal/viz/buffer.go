package viz

import "github.com/san-kum/digirain/internal/rain"

// Cell is the last character and colour reported for a grid position.
type Cell struct {
	Ch    rune
	Color int
}

// Buffer is an in-memory CellRenderer for renderers that redraw whole frames.
type Buffer struct {
	width, height int
	cells         []Cell
	frames        int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Color: rain.Clear}
	}
	return b
}

func (b *Buffer) OnCellUpdate(x, y int, ch rune, color int) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Ch: ch, Color: color}
}

func (b *Buffer) EndFrame() { b.frames++ }

func (b *Buffer) Size() (int, int) { return b.width, b.height }
func (b *Buffer) Frames() int      { return b.frames }

func (b *Buffer) Cell(x, y int) Cell { return b.cells[y*b.width+x] }

// Row returns the cells of row y; the slice aliases the buffer.
func (b *Buffer) Row(y int) []Cell { return b.cells[y*b.width : (y+1)*b.width] }
