package rain

import "math/rand/v2"

const minTrailLength = 3

// Line is one falling trail. Start is the bright head, Middle the point where
// the trail fades to the tail colour and End the edge behind which cells are
// cleared. All three move together, so End <= Middle <= Start always holds.
type Line struct {
	X      int
	Start  int
	Middle int
	End    int
}

// NewLine spawns a trail for column x somewhere above the top of a grid of
// the given height.
func NewLine(x, height int, rng *rand.Rand) *Line {
	l := &Line{X: x}
	l.spawn(rng, height, height)
	return l
}

// spawn places the head at most boundMin rows above the top edge with a
// random trail length in [3, height/2).
func (l *Line) spawn(rng *rand.Rand, height, boundMin int) {
	length := minTrailLength
	if height/2 > minTrailLength {
		length += rng.IntN(height/2 - minTrailLength)
	}
	offset := 0
	if boundMin > 0 {
		offset = rng.IntN(boundMin)
	}
	l.Start = -offset
	l.Middle = l.Start - length
	l.End = l.Middle - length
}

// Advance moves the trail down one row and recolours the cells that changed
// zone. glyphAt returns the current grid character of row y in this column.
// A trail whose end has passed the bottom re-spawns just above the top
// without emitting anything.
func (l *Line) Advance(glyphAt func(y int) rune, height int, colors ColorTriple, rng *rand.Rand, r CellRenderer) {
	l.Start++
	l.Middle++
	l.End++
	if l.Start < 0 {
		return
	}
	if l.End >= height {
		l.spawn(rng, height, 0)
		return
	}

	if l.Start <= height {
		if l.Start < height {
			r.OnCellUpdate(l.X, l.Start, glyphAt(l.Start), colors.Head)
		}
		if l.Start > 0 {
			r.OnCellUpdate(l.X, l.Start-1, glyphAt(l.Start-1), colors.Fade)
		}
	}

	if l.Middle < 0 {
		return
	}
	if l.Middle < height {
		r.OnCellUpdate(l.X, l.Middle, glyphAt(l.Middle), colors.Tail)
	}
	if l.End < 0 {
		return
	}
	r.OnCellUpdate(l.X, l.End, glyphAt(l.End), Clear)
}

// Substitute reports a new character at row y if it lies strictly inside
// the trail. Rows in [Middle, Start) keep the fade colour, the rest of the
// body uses the tail colour.
func (l *Line) Substitute(y int, ch rune, colors ColorTriple, r CellRenderer) {
	if y >= l.Start || y <= l.End {
		return
	}
	color := colors.Tail
	if y >= l.Middle {
		color = colors.Fade
	}
	r.OnCellUpdate(l.X, y, ch, color)
}
