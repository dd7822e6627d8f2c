package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration used when the
// embedded YAML cannot be parsed.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows:     20,
			Columns:  10,
			CellSize: 2,
		},
		Timing: TimingConfig{
			BaseIntervalMs:  500,
			IntervalStepMs:  100,
			MinIntervalMs:   50,
			FastDropDivisor: 40,
		},
		Spawn: SpawnConfig{
			X: 3,
			Y: 0,
		},
		Catalog:       "classic",
		RotationGuard: true,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall":
		return defaultBlockfallYAML
	default:
		return nil
	}
}
