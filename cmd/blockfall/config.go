package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the way "play" does and prints it as YAML.

Search order:
  --config path
  ~/.blockfall/configs/blockfall.yaml
  ./configs/blockfall.yaml
  built-in defaults

Use --defaults to print the built-in file instead, as a starting point for
your own.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	addConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML(blockfall.GameID))
		return err
	}

	if err := applyConfigFlags(); err != nil {
		return err
	}
	cfg, err := blockfall.LoadConfig()
	if err != nil {
		return err
	}

	ec, err := blockfall.EngineConfig(cfg, flagSeed)
	if err != nil {
		return err
	}
	if _, err := engine.New(ec); err != nil {
		return fmt.Errorf("config rejected by engine: %w", err)
	}

	data, err := config.MarshalBlockfall(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
