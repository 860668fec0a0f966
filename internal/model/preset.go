package model

import "fmt"

// Preset is a named board configuration
type Preset struct {
	Name   string
	Config GameConfig
}

// Preset names
const (
	PresetBeginner     = "beginner"
	PresetIntermediate = "intermediate"
	PresetExpert       = "expert"
)

// Presets returns the built-in presets, smallest first
func Presets() []Preset {
	return []Preset{
		{Name: PresetBeginner, Config: GameConfig{Rows: 9, Cols: 9, Mines: 10}},
		{Name: PresetIntermediate, Config: GameConfig{Rows: 16, Cols: 16, Mines: 40}},
		{Name: PresetExpert, Config: GameConfig{Rows: 16, Cols: 30, Mines: 99}},
	}
}

// DefaultGameConfig returns the configuration used when nothing is specified
func DefaultGameConfig() GameConfig {
	return Presets()[0].Config
}

// LookupPreset finds a preset by name
func LookupPreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
