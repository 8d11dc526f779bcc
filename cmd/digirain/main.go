package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/digirain/internal/config"
	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/viz"
)

var (
	configFile   string
	preset       string
	logFile      string
	width        int
	height       int
	delayMS      int
	seed         int64
	renderer     string
	palettes     []string
	fullAlphabet bool
	scrambleOdds int
	switchFactor int
	// bench
	ticks int
	// config
	outFile string

	logOut *os.File
)

// main runs the root command and exits with status 1 on error.
func main() {
	err := newRootCmd().Execute()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags; with no subcommand the root
// plays the rain with the configured renderer.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "digirain",
		Short:             "falling code in your terminal",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              play,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "append log output to this file")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "grid width (0 = terminal width)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "grid height (0 = terminal height)")
	rootCmd.PersistentFlags().IntVar(&delayMS, "delay", config.DefaultDelayMS, "delay between ticks in milliseconds")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&renderer, "renderer", config.DefaultRenderer, "renderer: ansi, tcell, tui, gui")
	rootCmd.PersistentFlags().StringSliceVar(&palettes, "palette", nil, "colour sets to cycle through")
	rootCmd.PersistentFlags().BoolVar(&fullAlphabet, "full-alphabet", false, "allow every glyph of the alphabet")
	rootCmd.PersistentFlags().IntVar(&scrambleOdds, "scramble-odds", 0, "1-in-N chance per tick to rescramble a glowing cell")
	rootCmd.PersistentFlags().IntVar(&switchFactor, "switch-factor", 0, "1-in-N chance per tick to switch colour set")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play the rain",
		RunE:  play,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run headless and report update statistics",
		RunE:  bench,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks to run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRENDERER\tDELAY\tPALETTES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				sets := fmt.Sprint(p.Palettes)
				if len(p.Colors) > 0 {
					sets = fmt.Sprintf("%d custom", len(p.Colors))
				}
				fmt.Fprintf(w, "%s\t%s\t%dms\t%s\n", name, p.Renderer, p.DelayMS, sets)
			}
			return w.Flush()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list colour sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHEAD\tFADE\tTAIL")
			for _, name := range palette.Names() {
				c, _ := palette.Set(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, swatch(c.Head), swatch(c.Fade), swatch(c.Tail))
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if outFile != "" {
				if err := config.Save(outFile, cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Printf("wrote %s\n", outFile)
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
	configCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(playCmd, benchCmd, presetsCmd, palettesCmd, configCmd)
	return rootCmd
}

// swatch shows a colour id by name and hex value, drawn in that colour.
func swatch(id int) string {
	return viz.Swatch(id, fmt.Sprintf("%s %s", palette.Name(id), palette.Hex(id)))
}

// setupLogging sends log output to --log; the screen belongs to the
// renderer, so logs are discarded otherwise.
func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if logFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	logOut = f
	return nil
}

// closeLog closes the --log file, if one was opened.
func closeLog() error {
	if logOut == nil {
		return nil
	}
	log.SetOutput(io.Discard)
	err := logOut.Close()
	logOut = nil
	return err
}

// resolveConfig layers the configuration: defaults, then preset, then
// config file, then any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("renderer") {
		cfg.Renderer = renderer
	}
	if flags.Changed("palette") {
		cfg.Palettes = palettes
		cfg.Colors = nil
	}
	if flags.Changed("full-alphabet") {
		cfg.FullAlphabet = fullAlphabet
	}
	if flags.Changed("scramble-odds") {
		cfg.ScrambleOdds = scrambleOdds
	}
	if flags.Changed("switch-factor") {
		cfg.SwitchFactor = switchFactor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
