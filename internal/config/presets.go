package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"slow": with(func(c *Config) {
		c.RotationSpeed = 0.004
	}),
	"fast": with(func(c *Config) {
		c.RotationSpeed = 0.03
	}),
	"wide": with(func(c *Config) {
		c.ProjectionDistance = 8
		c.Scale = 220
	}),
	"small": with(func(c *Config) {
		c.WindowSize = 400
		c.Scale = 75
		c.LineWidth = 1
	}),
	"amber": with(func(c *Config) {
		c.Background = RGB{20, 12, 0}
		c.LineColor = RGB{255, 176, 0}
		c.Theme = "amber"
	}),
}

func with(f func(*Config)) *Config {
	c := DefaultConfig()
	f(c)
	return c
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

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
