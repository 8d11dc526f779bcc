// Package palette maps the 16 console colour ids used by the rain engine to
// names, RGB values and ANSI escape codes, and holds the named colour sets.
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/digirain/internal/rain"
)

// Console colour ids, in the classic 16-colour console order.
const (
	Black = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

type RGB struct{ R, G, B uint8 }

type entry struct {
	name string
	rgb  RGB
	sgr  int
}

var colors = [16]entry{
	Black:       {"black", RGB{0, 0, 0}, 30},
	DarkBlue:    {"darkblue", RGB{0, 0, 128}, 34},
	DarkGreen:   {"darkgreen", RGB{0, 128, 0}, 32},
	DarkCyan:    {"darkcyan", RGB{0, 128, 128}, 36},
	DarkRed:     {"darkred", RGB{128, 0, 0}, 31},
	DarkMagenta: {"darkmagenta", RGB{128, 0, 128}, 35},
	DarkYellow:  {"darkyellow", RGB{128, 128, 0}, 33},
	Gray:        {"gray", RGB{192, 192, 192}, 37},
	DarkGray:    {"darkgray", RGB{128, 128, 128}, 90},
	Blue:        {"blue", RGB{0, 0, 255}, 94},
	Green:       {"green", RGB{0, 255, 0}, 92},
	Cyan:        {"cyan", RGB{0, 255, 255}, 96},
	Red:         {"red", RGB{255, 0, 0}, 91},
	Magenta:     {"magenta", RGB{255, 0, 255}, 95},
	Yellow:      {"yellow", RGB{255, 255, 0}, 93},
	White:       {"white", RGB{255, 255, 255}, 97},
}

// Valid reports whether id names a console colour. Anything else, including
// rain.Clear, is drawn in the background colour.
func Valid(id int) bool { return id >= 0 && id < len(colors) }

// Name returns the lower-case name of id, or "background".
func Name(id int) string {
	if !Valid(id) {
		return "background"
	}
	return colors[id].name
}

// Parse looks a colour up by name, case-insensitively.
func Parse(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, c := range colors {
		if c.name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown color: %s", name)
}

// ColorRGB returns the RGB value of id. ok is false for background ids.
func ColorRGB(id int) (rgb RGB, ok bool) {
	if !Valid(id) {
		return RGB{}, false
	}
	return colors[id].rgb, true
}

// Hex returns id as "#rrggbb"; background ids yield "".
func Hex(id int) string {
	c, ok := ColorRGB(id)
	if !ok {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ANSI returns the SGR foreground code for id, or 39 (default foreground).
func ANSI(id int) int {
	if !Valid(id) {
		return 39
	}
	return colors[id].sgr
}

// XTerm returns the index of id in the 16-colour xterm palette, or -1.
func XTerm(id int) int {
	if !Valid(id) {
		return -1
	}
	sgr := colors[id].sgr
	if sgr >= 90 {
		return sgr - 90 + 8
	}
	return sgr - 30
}

var sets = map[string]rain.ColorTriple{
	"green":   {Head: White, Fade: Green, Tail: DarkGreen},
	"blue":    {Head: White, Fade: Blue, Tail: DarkBlue},
	"red":     {Head: White, Fade: Red, Tail: DarkRed},
	"magenta": {Head: White, Fade: Magenta, Tail: DarkMagenta},
	"yellow":  {Head: White, Fade: Yellow, Tail: DarkYellow},
	"cyan":    {Head: White, Fade: Cyan, Tail: DarkCyan},
	"gray":    {Head: White, Fade: Gray, Tail: DarkGray},
}

// mutationOrder is the order the colour-cycling rain has always used.
var mutationOrder = []string{"green", "blue", "red", "magenta", "yellow", "cyan", "gray"}

// Set returns the named colour set.
func Set(name string) (rain.ColorTriple, bool) {
	c, ok := sets[strings.ToLower(name)]
	return c, ok
}

// Sets resolves a list of set names, failing on the first unknown one.
func Sets(names []string) ([]rain.ColorTriple, error) {
	out := make([]rain.ColorTriple, 0, len(names))
	for _, n := range names {
		c, ok := Set(n)
		if !ok {
			return nil, fmt.Errorf("unknown palette: %s (available: %v)", n, Names())
		}
		out = append(out, c)
	}
	return out, nil
}

// Names lists the colour sets alphabetically.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MutationNames returns every colour set name in cycling order, green first.
func MutationNames() []string {
	return append([]string(nil), mutationOrder...)
}
