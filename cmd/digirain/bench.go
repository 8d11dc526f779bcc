package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/digirain/internal/metrics"
	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/rain"
)

const benchPlotWidth = 80

func bench(cmd *cobra.Command, args []string) error {
	if ticks < 1 {
		return fmt.Errorf("ticks must be positive, got %d", ticks)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	colors, err := cfg.Palette()
	if err != nil {
		return err
	}
	w, h := cfg.Size(0, 0)

	counter := metrics.NewCounter(nil)
	sim, err := rain.New(w, h, counter, colors, cfg.Options()...)
	if err != nil {
		return err
	}
	initial := counter.Updates()
	counter.Reset()

	switches := 0
	last := sim.Current()
	start := time.Now()
	for i := 0; i < ticks; i++ {
		sim.Step()
		if cur := sim.Current(); cur != last {
			switches++
			last = cur
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("benchmarking %dx%d for %d ticks\n\n", w, h, ticks)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	fmt.Fprintf(tw, "initial updates\t%d\n", initial)
	fmt.Fprintf(tw, "frames\t%d\n", counter.Frames())
	fmt.Fprintf(tw, "updates\t%d\n", counter.Updates())
	fmt.Fprintf(tw, "%s\t%.2f\n", counter.Name(), counter.Value())
	fmt.Fprintf(tw, "peak per tick\t%.0f\n", counter.Peak())
	fmt.Fprintf(tw, "palette switches\t%d\n", switches)
	fmt.Fprintf(tw, "time\t%v\n", elapsed)
	fmt.Fprintf(tw, "ticks/sec\t%.0f\n", float64(ticks)/elapsed.Seconds())
	if len(colors) == 1 {
		share := counter.ZoneShare(colors[0])
		fmt.Fprintf(tw, "head/fade/tail/clear\t%.2f / %.2f / %.2f / %.2f\n", share[0], share[1], share[2], share[3])
	} else {
		for id := rain.Clear; id < 16; id++ {
			if n := counter.ByColor(id); n > 0 {
				fmt.Fprintf(tw, "updates %s\t%d\n", palette.Name(id), n)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	data := counter.History()
	if len(data) > benchPlotWidth {
		data = downsample(data, benchPlotWidth)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(benchPlotWidth),
		asciigraph.Caption("updates per tick"),
	)
	fmt.Println()
	fmt.Println(graph)
	return nil
}

// downsample averages data into n buckets.
func downsample(data []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		lo := i * len(data) / n
		hi := (i + 1) * len(data) / n
		sum := 0.0
		for _, v := range data[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
