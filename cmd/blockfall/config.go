package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mdanilov/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Resolve the configuration the same way the game does and print it as
YAML. Useful as a starting point for a custom config file:

  blockfall config > ~/.blockfall/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatal("could not render config", "error", err)
	}
	fmt.Print(string(out))
}
