package config

import "slices"

// Presets holds named parameter sets per experiment ID.
var Presets = map[string]map[string]map[string]float64{
	"simple-pendulum": {
		"short":    {"length": 0.25},
		"long":     {"length": 2},
		"undamped": {"damping": 0},
		"moon":     {"gravity": 1.6},
		"wide":     {"angle": 30, "damping": 0.05},
	},
	"free-fall": {
		"moon":  {"gravity": 1.6},
		"tower": {"height": 200},
		"short": {"height": 10},
	},
	"projectile": {
		"max-range": {"angle": 45},
		"cliff":     {"angle": 30, "height": 50},
		"lob":       {"angle": 75, "velocity": 30},
		"moon":      {"gravity": 1.6},
	},
	"diode": {
		"off":     {"voltage": 0.3},
		"forward": {"voltage": 0.75},
		"reverse": {"voltage": -2},
	},
	"circuit": {
		"usb": {"voltage": 5, "resistance": 100},
		"car": {"voltage": 12, "resistance": 50},
		"dim": {"voltage": 3, "resistance": 1000},
	},
	"titration": {
		"start":       {"volume": 0},
		"equivalence": {"volume": 25},
		"excess":      {"volume": 40},
		"strong-base": {"concentration": 0.5},
	},
	"energy-gap": {
		"cold": {"temperature": 250},
		"hot":  {"temperature": 400},
	},
}

func GetPreset(experiment, preset string) map[string]float64 {
	expPresets, ok := Presets[experiment]
	if !ok {
		return nil
	}
	values, ok := expPresets[preset]
	if !ok {
		return nil
	}
	return values
}

func ListPresets(experiment string) []string {
	expPresets, ok := Presets[experiment]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(expPresets))
	for name := range expPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
