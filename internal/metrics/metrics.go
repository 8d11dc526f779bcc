package metrics

import "github.com/san-kum/digirain/internal/rain"

type Metric interface {
	Name() string
	Value() float64
	Reset()
}

// Counter sits between the engine and a renderer, forwarding every update
// and tallying what it sees. Each finished frame adds one sample to the
// per-tick update history.
type Counter struct {
	next rain.CellRenderer

	updates int
	byColor map[int]int
	current int
	history []float64
}

// NewCounter wraps next; a nil next turns the counter into a sink.
func NewCounter(next rain.CellRenderer) *Counter {
	return &Counter{next: next, byColor: make(map[int]int)}
}

func (c *Counter) OnCellUpdate(x, y int, ch rune, color int) {
	c.updates++
	c.current++
	c.byColor[color]++
	if c.next != nil {
		c.next.OnCellUpdate(x, y, ch, color)
	}
}

func (c *Counter) EndFrame() {
	c.history = append(c.history, float64(c.current))
	c.current = 0
	if fr, ok := c.next.(rain.FrameRenderer); ok {
		fr.EndFrame()
	}
}

func (c *Counter) Name() string { return "updates_per_tick" }

// Value is the mean number of updates per finished frame.
func (c *Counter) Value() float64 {
	if len(c.history) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range c.history {
		sum += v
	}
	return sum / float64(len(c.history))
}

func (c *Counter) Reset() {
	c.updates = 0
	c.current = 0
	c.history = c.history[:0]
	c.byColor = make(map[int]int)
}

func (c *Counter) Updates() int       { return c.updates }
func (c *Counter) Frames() int        { return len(c.history) }
func (c *Counter) ByColor(id int) int { return c.byColor[id] }
func (c *Counter) History() []float64 { return append([]float64(nil), c.history...) }

// Peak is the largest number of updates seen in one frame.
func (c *Counter) Peak() float64 {
	peak := 0.0
	for _, v := range c.history {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// ZoneShare reports how the updates were split across the zones of colors;
// entries are head, fade, tail and clear fractions.
func (c *Counter) ZoneShare(colors rain.ColorTriple) [4]float64 {
	var out [4]float64
	if c.updates == 0 {
		return out
	}
	total := float64(c.updates)
	out[0] = float64(c.byColor[colors.Head]) / total
	out[1] = float64(c.byColor[colors.Fade]) / total
	out[2] = float64(c.byColor[colors.Tail]) / total
	out[3] = float64(c.byColor[rain.Clear]) / total
	return out
}
