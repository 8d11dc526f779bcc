package rain

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Simulation", func() {
	var (
		rec    *recorder
		green  ColorTriple
		single []ColorTriple
	)

	BeforeEach(func() {
		rec = &recorder{}
		green = ColorTriple{Head: 9, Fade: 2, Tail: 10}
		single = []ColorTriple{green}
	})

	Describe("New", func() {
		It("rejects an empty palette before touching the renderer", func() {
			sim, err := New(10, 10, rec, nil)
			Expect(err).To(MatchError(ErrInvalidArgument))
			Expect(sim).To(BeNil())
			Expect(rec.events).To(BeEmpty())
		})

		DescribeTable("rejects unusable arguments",
			func(width, height int, r CellRenderer) {
				_, err := New(width, height, r, single)
				Expect(err).To(MatchError(ErrInvalidArgument))
			},
			Entry("zero width", 0, 10, &recorder{}),
			Entry("negative height", 10, -1, &recorder{}),
			Entry("nil renderer", 10, 10, nil),
		)

		It("rejects odds below one", func() {
			_, err := New(4, 4, rec, single, WithScrambleOdds(0))
			Expect(err).To(MatchError(ErrInvalidArgument))
			_, err = New(4, 4, rec, single, WithSwitchFactor(-3))
			Expect(err).To(MatchError(ErrInvalidArgument))
		})

		It("reports every cell once with the clear colour", func() {
			sim, err := New(1, 10, rec, single, WithSeed(1))
			Expect(err).NotTo(HaveOccurred())

			Expect(rec.events).To(HaveLen(10))
			for y, e := range rec.events {
				Expect(e.X).To(Equal(0))
				Expect(e.Y).To(Equal(y))
				Expect(e.Color).To(Equal(Clear))
				Expect(e.Ch).To(Equal(sim.Glyph(0, y)))
			}
			Expect(sim.Current()).To(Equal(green))
		})

		It("builds one line per column in column order", func() {
			sim, err := New(12, 8, rec, single, WithSeed(2))
			Expect(err).NotTo(HaveOccurred())

			lines := sim.Lines()
			Expect(lines).To(HaveLen(12))
			for x, l := range lines {
				Expect(l.X).To(Equal(x))
				Expect(l.Start).To(BeNumerically("<=", 0))
			}
		})

		It("draws glyphs from the alphabet without its last symbol", func() {
			sim, err := New(40, 40, rec, single, WithSeed(3))
			Expect(err).NotTo(HaveOccurred())

			for x := 0; x < sim.Width(); x++ {
				for y := 0; y < sim.Height(); y++ {
					ch := sim.Glyph(x, y)
					Expect(strings.ContainsRune(Alphabet[:len(Alphabet)-1], ch)).To(BeTrue())
				}
			}
		})

		It("can draw the full alphabet", func() {
			sim, err := New(40, 40, rec, single, WithSeed(3), WithFullAlphabet())
			Expect(err).NotTo(HaveOccurred())

			seen := false
			for x := 0; x < sim.Width(); x++ {
				for y := 0; y < sim.Height(); y++ {
					if sim.Glyph(x, y) == '&' {
						seen = true
					}
				}
			}
			Expect(seen).To(BeTrue())
		})

		It("copies the palette", func() {
			palette := []ColorTriple{green, {Head: 15, Fade: 9, Tail: 1}}
			sim, err := New(2, 2, rec, palette)
			Expect(err).NotTo(HaveOccurred())

			palette[0] = ColorTriple{}
			Expect(sim.Palette()[0]).To(Equal(green))
		})
	})

	Describe("RendererFunc", func() {
		It("receives the initial updates", func() {
			count := 0
			_, err := New(3, 4, RendererFunc(func(x, y int, ch rune, color int) {
				Expect(color).To(Equal(Clear))
				count++
			}), single)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(12))
		})
	})

	Describe("NewMono", func() {
		It("uses the single triple as the palette", func() {
			sim, err := NewMono(3, 3, rec, green)
			Expect(err).NotTo(HaveOccurred())
			Expect(sim.Palette()).To(Equal(single))
		})
	})

	Describe("Step", func() {
		It("stays silent while a fresh line is above the grid", func() {
			checked := 0
			for seed := int64(1); seed <= 40; seed++ {
				rec = &recorder{}
				sim, err := New(1, 10, rec, single, WithSeed(seed))
				Expect(err).NotTo(HaveOccurred())

				before := sim.Lines()[0]
				rec.reset()
				sim.Step()
				if before.Start+1 < 0 {
					Expect(rec.events).To(BeEmpty())
					checked++
				}
			}
			Expect(checked).To(BeNumerically(">", 0))
		})

		It("advances or resets every line and keeps the trail ordered", func() {
			sim, err := New(20, 15, rec, single, WithSeed(4))
			Expect(err).NotTo(HaveOccurred())

			for tick := 0; tick < 500; tick++ {
				before := sim.Lines()
				sim.Step()
				after := sim.Lines()
				for x := range after {
					b, a := before[x], after[x]
					Expect(a.X).To(Equal(x))
					Expect(a.End).To(BeNumerically("<=", a.Middle))
					Expect(a.Middle).To(BeNumerically("<=", a.Start))
					if b.End+1 >= sim.Height() {
						Expect(a.Start).To(BeNumerically("<=", 0))
						continue
					}
					Expect(a).To(Equal(Line{X: x, Start: b.Start + 1, Middle: b.Middle + 1, End: b.End + 1}))
				}
			}
			Expect(sim.Ticks()).To(BeEquivalentTo(500))
		})

		It("reports the grid character in every update", func() {
			var sim *Simulation
			rec.onCell = func(e event) {
				if sim != nil {
					Expect(e.Ch).To(Equal(sim.Glyph(e.X, e.Y)))
				}
			}
			var err error
			sim, err = New(16, 12, rec, single, WithSeed(5))
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 300; i++ {
				sim.Step()
			}
		})

		It("emits scramble updates before the advance, inside the trail body", func() {
			sim, err := New(1, 12, rec, single, WithSeed(6), WithScrambleOdds(1))
			Expect(err).NotTo(HaveOccurred())

			scrambled := 0
			for i := 0; i < 200; i++ {
				before := sim.Lines()[0]
				rec.reset()
				sim.Step()

				var want []event
				for y := clamp(before.End, 0, 12); y < clamp(before.Start, 0, 12); y++ {
					if y <= before.End {
						continue
					}
					color := green.Tail
					if y >= before.Middle {
						color = green.Fade
					}
					want = append(want, event{X: 0, Y: y, Ch: sim.Glyph(0, y), Color: color})
				}
				if len(want) == 0 {
					continue
				}
				Expect(len(rec.events)).To(BeNumerically(">=", len(want)))
				Expect(rec.events[:len(want)]).To(Equal(want))
				scrambled += len(want)
			}
			Expect(scrambled).To(BeNumerically(">", 0))
		})

		It("never switches a single-entry palette", func() {
			sim, err := New(4, 6, rec, single, WithSeed(7), WithSwitchFactor(1))
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 1000; i++ {
				sim.Step()
				Expect(sim.Current()).To(Equal(green))
			}
		})

		It("switches between palette entries", func() {
			red := ColorTriple{Head: 15, Fade: 12, Tail: 4}
			sim, err := New(4, 6, rec, []ColorTriple{green, red}, WithSeed(8), WithSwitchFactor(1))
			Expect(err).NotTo(HaveOccurred())

			seen := map[ColorTriple]bool{}
			for i := 0; i < 100; i++ {
				sim.Step()
				seen[sim.Current()] = true
			}
			Expect(seen).To(HaveKey(green))
			Expect(seen).To(HaveKey(red))
		})

		It("ends every tick with a frame", func() {
			sim, err := New(3, 3, rec, single)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 7; i++ {
				sim.Step()
			}
			Expect(rec.frames).To(Equal(7))
		})
	})

	Describe("Play", func() {
		It("rejects a negative delay", func() {
			sim, err := New(3, 3, rec, single)
			Expect(err).NotTo(HaveOccurred())

			err = sim.Play(context.Background(), -time.Millisecond)
			Expect(err).To(MatchError(ErrInvalidArgument))
			Expect(sim.Ticks()).To(BeZero())
		})

		It("does nothing once the context is already done", func() {
			sim, err := New(3, 3, rec, single)
			Expect(err).NotTo(HaveOccurred())
			rec.reset()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(sim.Play(ctx, 0)).To(MatchError(context.Canceled))
			Expect(rec.events).To(BeEmpty())
			Expect(sim.Ticks()).To(BeZero())
		})

		It("stops after the tick that observed cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			rec.onEnd = func(frames int) {
				if frames == 5 {
					cancel()
				}
			}
			sim, err := New(5, 5, rec, single)
			Expect(err).NotTo(HaveOccurred())

			Expect(sim.Play(ctx, 0)).To(MatchError(context.Canceled))
			Expect(sim.Ticks()).To(BeEquivalentTo(5))
		})

		It("waits between ticks", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
			defer cancel()
			sim, err := New(2, 2, rec, single)
			Expect(err).NotTo(HaveOccurred())

			Expect(sim.Play(ctx, 20*time.Millisecond)).To(MatchError(context.DeadlineExceeded))
			Expect(sim.Ticks()).To(BeNumerically(">=", 1))
			Expect(sim.Ticks()).To(BeNumerically("<=", 4))
		})
	})
})
