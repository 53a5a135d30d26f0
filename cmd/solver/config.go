package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/t2048-solver/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search order and command-line flags
are applied. With --defaults, print the built-in config file instead; it is a
good starting point for ~/.solver2048/config.yaml.

Examples:
  solver config
  solver config --depth 4
  solver config --defaults > ~/.solver2048/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config file")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fatalf("Error: %v\n", err)
	}
	fmt.Print(string(out))
}
