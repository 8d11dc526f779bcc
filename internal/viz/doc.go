// Package viz turns rain cell updates into pixels on a terminal.
//
// Three renderers are provided, all implementing [rain.CellRenderer] and
// [rain.FrameRenderer]:
//
//   - [ANSI]: raw escape sequences written to any io.Writer
//   - [Screen]: a tcell screen
//   - [Model]: a Bubble Tea program styled with Lip Gloss, drawn from a [Buffer]
//
// # Key Bindings (Model)
//
//	Space - Pause/Resume
//	S     - Toggle status line
//	Q/Esc - Quit
//
// Colour ids outside the 16 console colours are drawn as blanks.
package viz
