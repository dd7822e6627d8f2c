package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetTiming holds the gravity curve of each preset. Fixed keeps the
// configured base interval and disables progression.
var presetTiming = map[DifficultyPreset]TimingConfig{
	DifficultyEasy:   {BaseIntervalMs: 800, IntervalStepMs: 50, MinIntervalMs: 150},
	DifficultyNormal: {BaseIntervalMs: 500, IntervalStepMs: 100, MinIntervalMs: 50},
	DifficultyHard:   {BaseIntervalMs: 300, IntervalStepMs: 100, MinIntervalMs: 30},
}

// Presets lists the supported presets in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset resolves a case-insensitive preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlockfallPreset rewrites the gravity curve for a preset. The fast
// drop divisor is left untouched.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	if IsFixedPreset(preset) {
		cfg.Timing.IntervalStepMs = 0
		cfg.Timing.MinIntervalMs = cfg.Timing.BaseIntervalMs
		return
	}

	t, ok := presetTiming[preset]
	if !ok {
		return
	}
	cfg.Timing.BaseIntervalMs = t.BaseIntervalMs
	cfg.Timing.IntervalStepMs = t.IntervalStepMs
	cfg.Timing.MinIntervalMs = t.MinIntervalMs
}
