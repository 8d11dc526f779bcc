package rain

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Line", func() {
	var (
		rng    *rand.Rand
		rec    *recorder
		colors ColorTriple
		column []rune
		glyph  func(y int) rune
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewPCG(7, 0))
		rec = &recorder{}
		colors = ColorTriple{Head: 15, Fade: 10, Tail: 2}
		column = []rune("abcdefghij")
		glyph = func(y int) rune { return column[y] }
	})

	Describe("NewLine", func() {
		It("spawns above the top with ordered positions", func() {
			for _, height := range []int{1, 4, 7, 10, 24, 60} {
				for i := 0; i < 200; i++ {
					l := NewLine(3, height, rng)
					Expect(l.X).To(Equal(3))
					Expect(l.End).To(BeNumerically("<=", l.Middle))
					Expect(l.Middle).To(BeNumerically("<=", l.Start))
					Expect(l.Start).To(BeNumerically("<=", 0))
					Expect(l.Start).To(BeNumerically(">", -height))

					length := l.Start - l.Middle
					Expect(l.Middle - l.End).To(Equal(length))
					Expect(length).To(BeNumerically(">=", minTrailLength))
					if height/2 > minTrailLength {
						Expect(length).To(BeNumerically("<", height/2))
					} else {
						Expect(length).To(Equal(minTrailLength))
					}
				}
			}
		})
	})

	Describe("Advance", func() {
		It("recolours the head and the cell behind it", func() {
			l := &Line{X: 0, Start: 0, Middle: -3, End: -6}
			l.Advance(glyph, 10, colors, rng, rec)

			Expect(*l).To(Equal(Line{X: 0, Start: 1, Middle: -2, End: -5}))
			Expect(rec.events).To(Equal([]event{
				{X: 0, Y: 1, Ch: 'b', Color: 15},
				{X: 0, Y: 0, Ch: 'a', Color: 10},
			}))
		})

		It("emits nothing while the head is above the grid", func() {
			l := &Line{X: 2, Start: -5, Middle: -8, End: -11}
			l.Advance(glyph, 10, colors, rng, rec)

			Expect(l.Start).To(Equal(-4))
			Expect(rec.events).To(BeEmpty())
		})

		It("emits all four zones once the trail is on screen", func() {
			l := &Line{X: 4, Start: 5, Middle: 3, End: 1}
			l.Advance(glyph, 10, colors, rng, rec)

			Expect(rec.events).To(Equal([]event{
				{X: 4, Y: 6, Ch: 'g', Color: 15},
				{X: 4, Y: 5, Ch: 'f', Color: 10},
				{X: 4, Y: 4, Ch: 'e', Color: 2},
				{X: 4, Y: 2, Ch: 'c', Color: Clear},
			}))
		})

		It("skips the end once the middle is still above the grid", func() {
			l := &Line{X: 0, Start: 2, Middle: -2, End: -6}
			l.Advance(glyph, 10, colors, rng, rec)
			Expect(rec.events).To(HaveLen(2))

			rec.reset()
			l = &Line{X: 0, Start: 3, Middle: -1, End: -5}
			l.Advance(glyph, 10, colors, rng, rec)
			Expect(rec.events).To(Equal([]event{
				{X: 0, Y: 4, Ch: 'e', Color: 15},
				{X: 0, Y: 3, Ch: 'd', Color: 10},
				{X: 0, Y: 0, Ch: 'a', Color: 2},
			}))
		})

		It("only fades the last row when the head sits on the bottom edge", func() {
			l := &Line{X: 0, Start: 9, Middle: 6, End: 3}
			l.Advance(glyph, 10, colors, rng, rec)

			Expect(rec.events).To(Equal([]event{
				{X: 0, Y: 9, Ch: 'j', Color: 10},
				{X: 0, Y: 7, Ch: 'h', Color: 2},
				{X: 0, Y: 4, Ch: 'e', Color: Clear},
			}))
		})

		It("keeps clearing after the head has left the grid", func() {
			l := &Line{X: 0, Start: 11, Middle: 8, End: 5}
			l.Advance(glyph, 10, colors, rng, rec)

			Expect(rec.events).To(Equal([]event{
				{X: 0, Y: 9, Ch: 'j', Color: 2},
				{X: 0, Y: 6, Ch: 'g', Color: Clear},
			}))
		})

		It("re-spawns right above the top once the end leaves the grid", func() {
			l := &Line{X: 1, Start: 15, Middle: 12, End: 9}
			l.Advance(glyph, 10, colors, rng, rec)

			Expect(rec.events).To(BeEmpty())
			Expect(l.X).To(Equal(1))
			Expect(l.Start).To(Equal(0))
			Expect(l.End).To(BeNumerically("<=", l.Middle))
			Expect(l.Middle).To(BeNumerically("<=", l.Start))
		})

		It("moves every position by exactly one per call until it resets", func() {
			l := NewLine(0, 10, rng)
			for i := 0; i < 100; i++ {
				before := *l
				l.Advance(glyph, 10, colors, rng, rec)
				if before.End+1 >= 10 {
					Expect(l.Start).To(BeNumerically("<=", 0))
					continue
				}
				Expect(l.Start).To(Equal(before.Start + 1))
				Expect(l.Middle).To(Equal(before.Middle + 1))
				Expect(l.End).To(Equal(before.End + 1))
			}
		})

		It("never changes the reported characters", func() {
			l := &Line{X: 0, Start: 5, Middle: 3, End: 1}
			for i := 0; i < 20; i++ {
				l.Advance(glyph, 10, colors, rng, rec)
			}
			for _, e := range rec.events {
				Expect(e.Ch).To(Equal(column[e.Y]))
			}
			Expect(string(column)).To(Equal("abcdefghij"))
		})
	})

	Describe("Substitute", func() {
		var l *Line

		BeforeEach(func() {
			l = &Line{X: 5, Start: 8, Middle: 5, End: 2}
		})

		DescribeTable("rows outside the trail body are ignored",
			func(y int) {
				l.Substitute(y, 'Z', colors, rec)
				Expect(rec.events).To(BeEmpty())
			},
			Entry("head", 8),
			Entry("below head", 9),
			Entry("end", 2),
			Entry("behind end", 1),
		)

		DescribeTable("rows inside the trail body use the zone colour",
			func(y, want int) {
				l.Substitute(y, 'Z', colors, rec)
				Expect(rec.events).To(Equal([]event{{X: 5, Y: y, Ch: 'Z', Color: want}}))
			},
			Entry("behind head", 7, 10),
			Entry("middle", 5, 10),
			Entry("past middle", 4, 2),
			Entry("before end", 3, 2),
		)
	})
})
