// Package config loads the recognized decoder options of spec.md §6 from a
// YAML file, matching the teacher's own configuration style (config.go,
// decoder_config.go): a fixed, yaml-tagged struct with a Default
// constructor rather than dynamic key lookup (spec.md §9 "Dynamic
// configuration").
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwsl/notecore/internal/decode"
)

// Config is the top-level configuration file shape for cmd/notecore.
type Config struct {
	Decoder DecoderConfig `yaml:"decoder"`
}

// DecoderConfig mirrors decode.Options with YAML tags and pointer fields
// for the two nullable frequency bounds (spec.md §6: "null = unconstrained").
type DecoderConfig struct {
	OnsetThresh     float64  `yaml:"onset_thresh"`
	FrameThresh     float64  `yaml:"frame_thresh"`
	MinNoteLen      int      `yaml:"min_note_len"`
	InferOnsets     bool     `yaml:"infer_onsets"`
	MaxFreqHz       *float64 `yaml:"max_freq_hz,omitempty"`
	MinFreqHz       *float64 `yaml:"min_freq_hz,omitempty"`
	MelodiaTrick    bool     `yaml:"melodia_trick"`
	EnergyTolerance int      `yaml:"energy_tolerance"`
}

// Default returns the config wrapping decode.DefaultOptions().
func Default() Config {
	d := decode.DefaultOptions()
	return Config{Decoder: DecoderConfig{
		OnsetThresh:     d.OnsetThresh,
		FrameThresh:     d.FrameThresh,
		MinNoteLen:      d.MinNoteLen,
		InferOnsets:     d.InferOnsets,
		MelodiaTrick:    d.MelodiaTrick,
		EnergyTolerance: d.EnergyTolerance,
	}}
}

// Load reads and parses a YAML config file, applying Default() first so
// the file only needs to override what it cares about.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("notecore: failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("notecore: failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts DecoderConfig back into decode.Options.
func (c Config) Options() decode.Options {
	d := c.Decoder
	return decode.Options{
		OnsetThresh:     d.OnsetThresh,
		FrameThresh:     d.FrameThresh,
		MinNoteLen:      d.MinNoteLen,
		InferOnsets:     d.InferOnsets,
		MaxFreqHz:       d.MaxFreqHz,
		MinFreqHz:       d.MinFreqHz,
		MelodiaTrick:    d.MelodiaTrick,
		EnergyTolerance: d.EnergyTolerance,
	}
}
