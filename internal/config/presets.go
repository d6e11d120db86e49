package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"minute": {
		Seconds: 60, TickInterval: DefaultTickInterval, Period: DefaultPeriod,
		FPS: DefaultFPS, Easing: DefaultEasing, Theme: DefaultTheme,
	},
	"tea": {
		Seconds: 180, TickInterval: DefaultTickInterval, Period: DefaultPeriod,
		FPS: DefaultFPS, Easing: DefaultEasing, Theme: "sunset",
	},
	"plank": {
		Seconds: 90, TickInterval: DefaultTickInterval, Period: DefaultPeriod,
		FPS: DefaultFPS, Easing: "linear", Theme: "retro",
	},
	"pomodoro": {
		Seconds: 25 * 60, TickInterval: DefaultTickInterval, Period: 4 * time.Second,
		FPS: 15, Easing: "ease-in-out", Theme: "ocean", Record: true,
	},
	"sprint": {
		Seconds: 10, TickInterval: DefaultTickInterval, Period: time.Second,
		FPS: 60, Easing: DefaultEasing, Theme: "cyberpunk", ResetOnStop: true,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
