package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/digirain/internal/config"
	"github.com/san-kum/digirain/internal/gui"
	"github.com/san-kum/digirain/internal/rain"
	"github.com/san-kum/digirain/internal/viz"
)

func play(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	colors, err := cfg.Palette()
	if err != nil {
		return err
	}

	build := func(w, h int, r rain.CellRenderer) (*rain.Simulation, error) {
		log.Printf("starting renderer=%s size=%dx%d palettes=%d seed=%d delay=%s",
			cfg.Renderer, w, h, len(colors), cfg.Seed, cfg.Delay())
		return rain.New(w, h, r, colors, cfg.Options()...)
	}

	switch cfg.Renderer {
	case "ansi":
		return playANSI(cfg, build)
	case "tcell":
		return playTcell(cfg, build)
	case "tui":
		m, err := viz.RunTUI(build, cfg.Width, cfg.Height, cfg.Delay())
		if sim := m.Simulation(); sim != nil {
			log.Printf("stopped after %d ticks", sim.Ticks())
		}
		return err
	case "gui":
		w, h := cfg.Size(0, 0)
		return gui.Run(build, w, h, cfg.Delay())
	}
	return fmt.Errorf("unknown renderer: %s", cfg.Renderer)
}

func playANSI(cfg *config.Config, build viz.Builder) error {
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Printf("terminal size unavailable: %v", err)
	}
	w, h := cfg.Size(tw, th)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := viz.NewANSI(os.Stdout)
	if err := out.Start(); err != nil {
		return err
	}
	defer out.Stop()

	sim, err := build(w, h, out)
	if err != nil {
		return err
	}
	return finish(sim, sim.Play(ctx, cfg.Delay()), out.Err())
}

func playTcell(cfg *config.Config, build viz.Builder) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	w, h := cfg.Size(screen.Size())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if viz.Quit(ev) {
				cancel()
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		}
	}()

	sim, err := build(w, h, viz.NewScreen(screen))
	if err != nil {
		return err
	}
	return finish(sim, sim.Play(ctx, cfg.Delay()), nil)
}

// finish treats cancellation as a normal exit.
func finish(sim *rain.Simulation, playErr, renderErr error) error {
	log.Printf("stopped after %d ticks", sim.Ticks())
	if playErr != nil && !errors.Is(playErr, context.Canceled) {
		return playErr
	}
	return renderErr
}
