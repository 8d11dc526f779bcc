package rain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultScrambleOdds = 50
	DefaultSwitchFactor = 200
)

// Simulation owns the character grid, one Line per column and the palette.
type Simulation struct {
	width, height int
	grid          [][]rune // column-major: grid[x][y]
	lines         []*Line
	palette       []ColorTriple
	current       ColorTriple
	renderer      CellRenderer
	rng           *rand.Rand

	fullAlphabet bool
	scrambleOdds int
	switchFactor int
	ticks        uint64
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand makes the simulation draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithSeed seeds a PCG source for reproducible runs.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewPCG(uint64(seed), 0)) }
}

// WithFullAlphabet lets the last symbol of Alphabet be drawn as well.
func WithFullAlphabet() Option {
	return func(s *Simulation) { s.fullAlphabet = true }
}

// WithScrambleOdds sets n so that each glowing cell is rescrambled with
// probability 1/n per tick.
func WithScrambleOdds(n int) Option {
	return func(s *Simulation) { s.scrambleOdds = n }
}

// WithSwitchFactor sets n so that the palette switches with probability
// 1/n per tick.
func WithSwitchFactor(n int) Option {
	return func(s *Simulation) { s.switchFactor = n }
}

// New builds a width x height simulation, fills the grid with random glyphs
// and reports every cell to r with the Clear colour. The first palette entry
// is the starting colour.
func New(width, height int, r CellRenderer, palette []ColorTriple, opts ...Option) (*Simulation, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: palette must not be empty", ErrInvalidArgument)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: renderer is nil", ErrInvalidArgument)
	}

	s := &Simulation{
		width:        width,
		height:       height,
		palette:      append([]ColorTriple(nil), palette...),
		current:      palette[0],
		renderer:     r,
		scrambleOdds: DefaultScrambleOdds,
		switchFactor: DefaultSwitchFactor,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.scrambleOdds < 1 || s.switchFactor < 1 {
		return nil, fmt.Errorf("%w: odds must be at least 1", ErrInvalidArgument)
	}

	s.grid = make([][]rune, width)
	s.lines = make([]*Line, width)
	for x := 0; x < width; x++ {
		s.lines[x] = NewLine(x, height, s.rng)
		col := make([]rune, height)
		for y := range col {
			col[y] = RandomGlyph(s.rng, s.fullAlphabet)
			r.OnCellUpdate(x, y, col[y], Clear)
		}
		s.grid[x] = col
	}
	return s, nil
}

// NewMono is New with a single colour triple.
func NewMono(width, height int, r CellRenderer, colors ColorTriple, opts ...Option) (*Simulation, error) {
	return New(width, height, r, []ColorTriple{colors}, opts...)
}

func (s *Simulation) Width() int           { return s.width }
func (s *Simulation) Height() int          { return s.height }
func (s *Simulation) Current() ColorTriple { return s.current }
func (s *Simulation) Ticks() uint64        { return s.ticks }

// Palette returns a copy of the palette.
func (s *Simulation) Palette() []ColorTriple {
	return append([]ColorTriple(nil), s.palette...)
}

// Glyph returns the character stored at (x, y).
func (s *Simulation) Glyph(x, y int) rune { return s.grid[x][y] }

// Lines returns copies of the per-column trails.
func (s *Simulation) Lines() []Line {
	out := make([]Line, len(s.lines))
	for i, l := range s.lines {
		out[i] = *l
	}
	return out
}

// Step runs a single tick.
func (s *Simulation) Step() {
	for x, line := range s.lines {
		col := s.grid[x]
		lo := clamp(line.End, 0, s.height)
		hi := clamp(line.Start, 0, s.height)
		for y := lo; y < hi; y++ {
			if s.rng.IntN(s.scrambleOdds) != s.scrambleOdds-1 {
				continue
			}
			ch := RandomGlyph(s.rng, s.fullAlphabet)
			col[y] = ch
			line.Substitute(y, ch, s.current, s.renderer)
		}
		line.Advance(func(y int) rune { return col[y] }, s.height, s.current, s.rng, s.renderer)
	}

	if n := len(s.palette); n > 1 {
		// the draw doubles as the palette index when it lands below n
		if i := s.rng.IntN(s.switchFactor * n); i < n {
			s.current = s.palette[i]
		}
	}

	s.ticks++
	if fr, ok := s.renderer.(FrameRenderer); ok {
		fr.EndFrame()
	}
}

// Play runs ticks until ctx is done, waiting delay between ticks. It returns
// ctx.Err() once cancelled; no callbacks fire after cancellation is seen.
func (s *Simulation) Play(ctx context.Context, delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalidArgument, delay)
	}

	var timer *time.Timer
	if delay > 0 {
		timer = time.NewTimer(delay)
		defer timer.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step()

		if timer == nil {
			continue
		}
		timer.Reset(delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
