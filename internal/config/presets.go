package config

import (
	"sort"

	"github.com/san-kum/swingby/internal/physics"
)

const (
	leoRadius = 7.0e6
	geoRadius = 4.2164e7
)

var Presets = map[string]*Config{
	// the reference flyby: 7000 km, 7.7 km/s, 20000 s at dt = 0.1
	"swingby": DefaultConfig(),
	"leo_circular": {
		Mu: ptr(physics.MuEarth), Dt: 1.0, Steps: 6000,
		Initial: InitStateConfig{X: leoRadius, VY: physics.CircularSpeed(physics.MuEarth, leoRadius)},
		Output:  "leo_circular.csv", Format: FormatCSV,
	},
	"geo": {
		Mu: ptr(physics.MuEarth), Dt: 10.0, Steps: 8700,
		Initial: InitStateConfig{X: geoRadius, VY: physics.CircularSpeed(physics.MuEarth, geoRadius)},
		Output:  "geo.csv", Format: FormatCSV,
	},
	"elliptic": {
		Mu: ptr(physics.MuEarth), Dt: 1.0, Steps: 20000,
		Initial: InitStateConfig{X: leoRadius, VY: 9.0e3},
		Output:  "elliptic.csv", Format: FormatCSV,
	},
	"escape": {
		Mu: ptr(physics.MuEarth), Dt: 1.0, Steps: 20000,
		Initial: InitStateConfig{X: leoRadius, VY: 1.05 * physics.EscapeSpeed(physics.MuEarth, leoRadius)},
		Output:  "escape.csv", Format: FormatCSV,
	},
	"flyby": {
		Mu: ptr(physics.MuEarth), Dt: 1.0, Steps: 40000,
		Initial: InitStateConfig{X: -1.0e8, Y: 1.0e7, VX: 4.0e3},
		Output:  "flyby.csv", Format: FormatCSV,
	},
	"linear": {
		Mu: ptr(0), Dt: 0.1, Steps: 1000,
		Initial: InitStateConfig{X: leoRadius, VY: 7.7e3},
		Output:  "linear.csv", Format: FormatCSV,
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

func ptr(v float64) *float64 { return &v }
