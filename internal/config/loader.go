package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blockfallFile = "blockfall.yaml"

// LoadBlockfall loads and validates the blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml ->
// ./configs/blockfall.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	cfg, err := loadBlockfall(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBlockfall(customPath string) (BlockfallConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlockfallConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBlockfall(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(blockfallFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBlockfall(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", blockfallFile)); err == nil {
		if cfg, err := ParseBlockfall(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseBlockfall(defaultBlockfallYAML)
	if err != nil {
		return DefaultBlockfallConfig(), nil
	}
	return cfg, nil
}

// ParseBlockfall decodes YAML over the built-in defaults. Unknown keys are
// rejected. A difficulty preset named in the document replaces the timing
// section.
func ParseBlockfall(data []byte) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultBlockfallConfig(), err
	}

	if cfg.Difficulty.Preset != "" {
		preset, err := ParsePreset(string(cfg.Difficulty.Preset))
		if err != nil {
			return cfg, err
		}
		ApplyBlockfallPreset(&cfg, preset)
	}
	return cfg, nil
}

// MarshalBlockfall renders a configuration as YAML.
func MarshalBlockfall(cfg BlockfallConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
