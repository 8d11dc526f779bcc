package config

import (
	"sort"

	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/rain"
)

var Presets = map[string]*Config{
	"classic": {
		DelayMS: 10, Renderer: DefaultRenderer, Palettes: []string{"green"},
		ScrambleOdds: rain.DefaultScrambleOdds, SwitchFactor: rain.DefaultSwitchFactor,
	},
	"mutations": {
		Width: DefaultWidth, Height: DefaultHeight,
		DelayMS: 10, Renderer: DefaultRenderer, Palettes: palette.MutationNames(),
		ScrambleOdds: rain.DefaultScrambleOdds, SwitchFactor: rain.DefaultSwitchFactor,
	},
	"storm": {
		DelayMS: 0, Renderer: DefaultRenderer, Palettes: []string{"cyan", "blue"},
		ScrambleOdds: 10, SwitchFactor: 50,
	},
	"slow": {
		DelayMS: 80, Renderer: DefaultRenderer, Palettes: []string{"green"},
		ScrambleOdds: 100, SwitchFactor: rain.DefaultSwitchFactor,
	},
	"mono": {
		DelayMS: 20, Renderer: "ansi",
		Colors:       []ColorSpec{{Head: palette.White, Fade: palette.Gray, Tail: palette.DarkGray}},
		ScrambleOdds: rain.DefaultScrambleOdds, SwitchFactor: rain.DefaultSwitchFactor,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
