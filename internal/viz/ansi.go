package viz

import (
	"bufio"
	"io"
	"strconv"

	"github.com/san-kum/digirain/internal/palette"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetStyle  = "\033[0m"
)

// ANSI renders updates as raw escape sequences. Output is buffered and
// flushed once per frame.
type ANSI struct {
	w     *bufio.Writer
	color int
	err   error
}

func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, 64*1024), color: -2}
}

// Start clears the terminal and hides the cursor.
func (a *ANSI) Start() error {
	a.w.WriteString(hideCursor + clearScreen)
	return a.w.Flush()
}

func (a *ANSI) OnCellUpdate(x, y int, ch rune, color int) {
	a.w.WriteString("\033[")
	a.w.WriteString(strconv.Itoa(y + 1))
	a.w.WriteByte(';')
	a.w.WriteString(strconv.Itoa(x + 1))
	a.w.WriteByte('H')

	if !palette.Valid(color) {
		// background colour: the glyph is erased rather than drawn
		a.w.WriteByte(' ')
		return
	}
	if color != a.color {
		a.w.WriteString("\033[")
		a.w.WriteString(strconv.Itoa(palette.ANSI(color)))
		a.w.WriteByte('m')
		a.color = color
	}
	a.w.WriteRune(ch)
}

func (a *ANSI) EndFrame() {
	if err := a.w.Flush(); err != nil && a.err == nil {
		a.err = err
	}
}

// Err reports the first write error seen while flushing frames.
func (a *ANSI) Err() error { return a.err }

// Stop restores the terminal.
func (a *ANSI) Stop() error {
	a.w.WriteString(resetStyle + clearScreen + showCursor)
	return a.w.Flush()
}
